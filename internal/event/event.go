package event

import "fmt"

// Event represents one message on the live-push bus.
type Event struct {
	Topic string      // e.g. "user:42"
	Type  string      // event type sent to the client, e.g. "notification"
	Data  interface{} // payload, serialized as JSON by the transport
}

const (
	EventTypeNotification = "notification"
)

// UserTopic returns the per-recipient topic used for notification pushes.
func UserTopic(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// EventSender is the live-push capability handed to the notifier. Delivery is
// best effort: a send to a topic with no connected clients is a no-op, and a
// slow client never blocks the sender.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event) error
	Run()
}
