package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deartime/deartime-BE/internal/event"
	"github.com/gin-gonic/gin"
)

// @Summary		Stream notifications via Server-Sent Events
// @Description	Establishes an SSE connection to receive the caller's notifications in real time
// @Tags			notifications
// @Security		accessToken
// @Produce		text/event-stream
// @Success		200	{string}	string	"Event stream. Data will be sent as SSE events with format: 'event: {eventType}\ndata: {jsonData}'"
// @Router			/v1/notifications/stream [get]
func (server *Server) streamNotifications(c *gin.Context) {
	userID, err := authenticatedUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	topic := event.UserTopic(userID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientChan := make(chan event.Event)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	for {
		select {
		case ev := <-clientChan:
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
