package capsuletracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/stretchr/testify/require"
)

// fakeCapsuleStore mimics the store's conditional-update claim with an
// in-process mutex standing in for the database's single-row atomicity.
type fakeCapsuleStore struct {
	mu       sync.Mutex
	capsules map[int64]*db.TimeCapsule
	users    map[int64]db.User

	listErr  error
	claimErr map[int64]error
}

func newFakeCapsuleStore() *fakeCapsuleStore {
	return &fakeCapsuleStore{
		capsules: make(map[int64]*db.TimeCapsule),
		users:    make(map[int64]db.User),
		claimErr: make(map[int64]error),
	}
}

func (s *fakeCapsuleStore) addUser(id int64, nickname string) {
	s.users[id] = db.User{ID: id, Nickname: nickname}
}

func (s *fakeCapsuleStore) addCapsule(id, senderID, receiverID int64, title string, openAt time.Time) {
	s.capsules[id] = &db.TimeCapsule{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Title:      title,
		OpenAt:     openAt,
	}
}

func (s *fakeCapsuleStore) ListDueCapsules(_ context.Context, openAt time.Time) ([]db.TimeCapsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var due []db.TimeCapsule
	for _, capsule := range s.capsules {
		if !capsule.IsNotified && !capsule.OpenAt.After(openAt) {
			due = append(due, *capsule)
		}
	}
	return due, nil
}

func (s *fakeCapsuleStore) MarkCapsuleNotified(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.claimErr[id]; err != nil {
		return 0, err
	}
	capsule, ok := s.capsules[id]
	if !ok || capsule.IsNotified {
		return 0, nil
	}
	capsule.IsNotified = true
	return 1, nil
}

func (s *fakeCapsuleStore) GetTimeCapsuleByID(_ context.Context, id int64) (db.TimeCapsule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	capsule, ok := s.capsules[id]
	if !ok {
		return db.TimeCapsule{}, db.ErrRecordNotFound
	}
	return *capsule, nil
}

func (s *fakeCapsuleStore) GetUserByID(_ context.Context, id int64) (db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return db.User{}, db.ErrRecordNotFound
	}
	return user, nil
}

type deliveredNotification struct {
	recipientID    int64
	capsuleID      int64
	senderNickname string
	capsuleTitle   string
}

type fakeNotifier struct {
	mu        sync.Mutex
	delivered []deliveredNotification
	failFor   map[int64]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{failFor: make(map[int64]error)}
}

func (n *fakeNotifier) NotifyCapsuleOpened(_ context.Context, recipientID, capsuleID int64, senderNickname, capsuleTitle string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.failFor[capsuleID]; err != nil {
		return err
	}
	n.delivered = append(n.delivered, deliveredNotification{
		recipientID:    recipientID,
		capsuleID:      capsuleID,
		senderNickname: senderNickname,
		capsuleTitle:   capsuleTitle,
	})
	return nil
}

func (n *fakeNotifier) deliveredFor(capsuleID int64) []deliveredNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []deliveredNotification
	for _, d := range n.delivered {
		if d.capsuleID == capsuleID {
			out = append(out, d)
		}
	}
	return out
}

type fakeAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *fakeAlerter) Send(message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return nil
}

func newTestTracker(t *testing.T, store CapsuleStore, notifier OpenedNotifier, alerter Alerter) *CapsuleTracker {
	t.Helper()
	tracker, err := NewCapsuleTracker(store, notifier, alerter)
	require.NoError(t, err)
	return tracker
}

func TestClaimAtMostOnce(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	store.addCapsule(100, 1, 2, "2년 뒤의 나에게", time.Now().Add(-time.Minute))

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.processDueCapsule(context.Background(), 100)
		}()
	}
	wg.Wait()

	require.Len(t, notifier.deliveredFor(100), 1)
	capsule, err := store.GetTimeCapsuleByID(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, capsule.IsNotified)
}

func TestRecheckProducesNoDuplicates(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	store.addCapsule(100, 1, 2, "첫 번째", time.Now().Add(-time.Hour))
	store.addCapsule(101, 1, 3, "두 번째", time.Now().Add(-time.Hour))

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	tracker.checkDueCapsules()
	tracker.checkDueCapsules()

	require.Len(t, notifier.delivered, 2)
	require.Len(t, notifier.deliveredFor(100), 1)
	require.Len(t, notifier.deliveredFor(101), 1)
}

func TestPartialFailureIsolation(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	for id := int64(100); id <= 102; id++ {
		store.addCapsule(id, 1, id, "캡슐", time.Now().Add(-time.Minute))
	}

	notifier := newFakeNotifier()
	notifier.failFor[101] = errors.New("push gateway down")
	alerter := &fakeAlerter{}
	tracker := newTestTracker(t, store, notifier, alerter)

	tracker.checkDueCapsules()

	require.Len(t, notifier.deliveredFor(100), 1)
	require.Empty(t, notifier.deliveredFor(101))
	require.Len(t, notifier.deliveredFor(102), 1)

	// All three claims are committed, including the failed delivery: the
	// claim is never reverted and the capsule is not retried.
	for id := int64(100); id <= 102; id++ {
		capsule, err := store.GetTimeCapsuleByID(context.Background(), id)
		require.NoError(t, err)
		require.True(t, capsule.IsNotified)
	}
	require.Len(t, alerter.messages, 1)

	tracker.checkDueCapsules()
	require.Empty(t, notifier.deliveredFor(101))
}

func TestDueTimeBoundary(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	now := time.Now()
	store.addCapsule(100, 1, 2, "지금", now)
	store.addCapsule(101, 1, 2, "나중에", now.Add(time.Hour))

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	tracker.checkDueCapsules()

	require.Len(t, notifier.deliveredFor(100), 1)
	require.Empty(t, notifier.deliveredFor(101))

	capsule, err := store.GetTimeCapsuleByID(context.Background(), 101)
	require.NoError(t, err)
	require.False(t, capsule.IsNotified)
}

func TestClaimInfrastructureErrorRetriedNextTick(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	store.addCapsule(100, 1, 2, "캡슐", time.Now().Add(-time.Minute))
	store.claimErr[100] = errors.New("connection reset")

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	tracker.checkDueCapsules()

	// Infrastructure failure is not a lost race: nothing was committed and
	// nothing was delivered.
	require.Empty(t, notifier.delivered)
	capsule, err := store.GetTimeCapsuleByID(context.Background(), 100)
	require.NoError(t, err)
	require.False(t, capsule.IsNotified)

	delete(store.claimErr, 100)
	tracker.checkDueCapsules()

	require.Len(t, notifier.deliveredFor(100), 1)
}

func TestListFailureAbortsTick(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	store.addCapsule(100, 1, 2, "캡슐", time.Now().Add(-time.Minute))
	store.listErr = errors.New("database unavailable")

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	tracker.checkDueCapsules()
	require.Empty(t, notifier.delivered)

	store.listErr = nil
	tracker.checkDueCapsules()
	require.Len(t, notifier.delivered, 1)
}

func TestOpenScenario(t *testing.T) {
	store := newFakeCapsuleStore()
	store.addUser(1, "지민")
	openAt := time.Now()
	store.addCapsule(100, 1, 2, "타임캡슐", openAt)

	notifier := newFakeNotifier()
	tracker := newTestTracker(t, store, notifier, nil)

	due, err := store.ListDueCapsules(context.Background(), openAt)
	require.NoError(t, err)
	require.Len(t, due, 1)

	tracker.processDueCapsule(context.Background(), 100)

	delivered := notifier.deliveredFor(100)
	require.Len(t, delivered, 1)
	require.Equal(t, int64(2), delivered[0].recipientID)
	require.Equal(t, "지민", delivered[0].senderNickname)
	require.Equal(t, "타임캡슐", delivered[0].capsuleTitle)

	// A competing claim issued immediately afterwards loses.
	rowsAffected, err := store.MarkCapsuleNotified(context.Background(), 100)
	require.NoError(t, err)
	require.Zero(t, rowsAffected)
}
