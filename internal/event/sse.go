package event

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	broadcastBuffer = 256
	clientSendWait  = 2 * time.Second
)

var ErrBusOverloaded = errors.New("event bus queue is full")

type SSEServer struct {
	clients map[string]map[chan Event]bool
	events  chan Event
	mu      sync.Mutex
}

func NewSSEServer() EventSender {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, broadcastBuffer),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	total := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("New client registered to topic %s. Total clients: %d", topic, total)
}

// Unregister removes a client channel from a topic. The channel is left open
// for the subscriber to drain; an in-flight send in Run times out instead of
// panicking on a closed channel.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	if clients, ok := s.clients[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(s.clients, topic)
		}
	}
	remaining := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("Client unregistered from topic %s. Remaining clients: %d", topic, remaining)
}

// Broadcast queues an event for all clients of its topic. It never blocks the
// caller: when the queue is full the event is dropped and an error returned.
func (s *SSEServer) Broadcast(event Event) error {
	select {
	case s.events <- event:
		return nil
	default:
		return ErrBusOverloaded
	}
}

// Run processes the event stream. Intended to be started once as a goroutine.
func (s *SSEServer) Run() {
	for event := range s.events {
		s.mu.Lock()
		clients := make([]chan Event, 0, len(s.clients[event.Topic]))
		for client := range s.clients[event.Topic] {
			clients = append(clients, client)
		}
		s.mu.Unlock()

		var wg sync.WaitGroup
		for _, client := range clients {
			wg.Add(1)
			go func(c chan Event) {
				defer wg.Done()
				select {
				case c <- event:
				case <-time.After(clientSendWait):
					log.Warn().Str("topic", event.Topic).Msg("dropped event for slow client")
				}
			}(client)
		}
		wg.Wait()
	}
}
