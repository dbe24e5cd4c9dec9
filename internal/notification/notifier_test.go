package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/event"
	"github.com/stretchr/testify/require"
)

type fakeRecordStore struct {
	mu      sync.Mutex
	nextID  int64
	saved   []db.Notification
	saveErr error
}

func (s *fakeRecordStore) CreateNotification(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return db.Notification{}, s.saveErr
	}
	s.nextID++
	saved := db.Notification{
		ID:             s.nextID,
		UserID:         arg.UserID,
		Type:           arg.Type,
		Content:        arg.Content,
		ContentTitle:   arg.ContentTitle,
		SenderNickname: arg.SenderNickname,
		TargetID:       arg.TargetID,
	}
	s.saved = append(s.saved, saved)
	return saved, nil
}

func (s *fakeRecordStore) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeEventSender struct {
	mu           sync.Mutex
	broadcast    []event.Event
	broadcastErr error

	// savedAtBroadcast records how many rows existed when each push arrived,
	// which pins down the persist-then-push ordering.
	store            *fakeRecordStore
	savedAtBroadcast []int
}

func (f *fakeEventSender) Register(string, chan event.Event)   {}
func (f *fakeEventSender) Unregister(string, chan event.Event) {}
func (f *fakeEventSender) Run()                                {}

func (f *fakeEventSender) Broadcast(ev event.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broadcastErr != nil {
		return f.broadcastErr
	}
	f.broadcast = append(f.broadcast, ev)
	if f.store != nil {
		f.savedAtBroadcast = append(f.savedAtBroadcast, f.store.savedCount())
	}
	return nil
}

func TestNotifyPersistsThenPushes(t *testing.T) {
	store := &fakeRecordStore{}
	events := &fakeEventSender{store: store}
	notifier := NewNotifier(store, events)

	title := "타임캡슐"
	targetID := int64(7)
	saved, err := notifier.Notify(context.Background(), 42, db.NotificationTypeCapsuleOpened, "지민", &title, &targetID)
	require.NoError(t, err)

	require.Equal(t, int64(42), saved.UserID)
	require.Equal(t, db.NotificationTypeCapsuleOpened, saved.Type)
	require.Equal(t, "지민님이 타임캡슐을 열어볼 수 있습니다.", saved.Content)

	require.Len(t, events.broadcast, 1)
	require.Equal(t, event.UserTopic(42), events.broadcast[0].Topic)
	require.Equal(t, event.EventTypeNotification, events.broadcast[0].Type)

	// The durable row existed before the push went out.
	require.Equal(t, []int{1}, events.savedAtBroadcast)

	pushed, ok := events.broadcast[0].Data.(db.Notification)
	require.True(t, ok)
	require.Equal(t, saved.ID, pushed.ID)
}

func TestNotifyPushFailureNotPropagated(t *testing.T) {
	store := &fakeRecordStore{}
	events := &fakeEventSender{broadcastErr: errors.New("bus overloaded")}
	notifier := NewNotifier(store, events)

	err := notifier.NotifyFriendRequest(context.Background(), 42, 7, "지민")
	require.NoError(t, err)
	require.Equal(t, 1, store.savedCount())
}

func TestNotifyPersistFailurePropagated(t *testing.T) {
	store := &fakeRecordStore{saveErr: errors.New("database unavailable")}
	events := &fakeEventSender{}
	notifier := NewNotifier(store, events)

	err := notifier.NotifyLetterReceived(context.Background(), 42, 7, "지민", "안부 편지")
	require.Error(t, err)

	// No push without a durable record.
	require.Empty(t, events.broadcast)
}

func TestNotifyCapsuleReceivedHidesTitle(t *testing.T) {
	store := &fakeRecordStore{}
	events := &fakeEventSender{}
	notifier := NewNotifier(store, events)

	err := notifier.NotifyCapsuleReceived(context.Background(), 42, 7, "지민")
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	require.Nil(t, store.saved[0].ContentTitle)
	require.Equal(t, "지민님이 타임캡슐을 보냈습니다.", store.saved[0].Content)
}

func TestBuildContent(t *testing.T) {
	testCases := []struct {
		notificationType db.NotificationType
		expected         string
	}{
		{db.NotificationTypeLetterReceived, "지민님이 편지를 보냈습니다."},
		{db.NotificationTypeCapsuleReceived, "지민님이 타임캡슐을 보냈습니다."},
		{db.NotificationTypeCapsuleOpened, "지민님이 타임캡슐을 열어볼 수 있습니다."},
		{db.NotificationTypeFriendRequest, "지민님이 친구 요청을 보냈습니다."},
		{db.NotificationTypeFriendAccept, "지민님이 친구 요청을 수락했습니다."},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, BuildContent(tc.notificationType, "지민"))
	}
}
