package api

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/kv"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
)

func newTestWatcher() (*SessionWatcher, *session.Store) {
	sess := session.New(kv.NewMemStore(), zerolog.Nop())
	return NewSessionWatcher(sess, zerolog.Nop()), sess
}

func TestNotifyExpiredClearsSession(t *testing.T) {
	watcher, sess := newTestWatcher()
	_, err := sess.Save(&session.Credential{AccessToken: "A", RefreshToken: "R"})
	require.NoError(t, err)

	watcher.NotifyExpired(context.Background())

	cred, err := sess.Load()
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestNotifyExpiredWithoutHandler(t *testing.T) {
	watcher, _ := newTestWatcher()

	// No notice, no handler: the flow is just the clear.
	watcher.NotifyExpired(context.Background())
}

func TestNotifyExpiredRunsNoticeBeforeHandler(t *testing.T) {
	watcher, _ := newTestWatcher()

	var order []string
	watcher.RegisterExpiryNotice(func(ctx context.Context) {
		order = append(order, "notice")
	})
	watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		order = append(order, "logout")
		return nil
	})

	watcher.NotifyExpired(context.Background())
	assert.Equal(t, []string{"notice", "logout"}, order)
}

func TestHandlerFailureResetsFlag(t *testing.T) {
	watcher, _ := newTestWatcher()

	calls := int32(0)
	watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("provider sign-out failed")
	})

	// A failing handler must not wedge the flag: the next expiry event
	// runs the flow again.
	watcher.NotifyExpired(context.Background())
	watcher.NotifyExpired(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConcurrentNotifiesCollapse(t *testing.T) {
	watcher, _ := newTestWatcher()

	calls := int32(0)
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.NotifyExpired(context.Background())
	}()

	// Wait until the first flow is inside the handler, then fire more
	// triggers. All of them must be dropped.
	<-entered
	for range 5 {
		watcher.NotifyExpired(context.Background())
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegisterLogoutHandlerReplaces(t *testing.T) {
	watcher, _ := newTestWatcher()

	firstCalls, secondCalls := int32(0), int32(0)
	watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		atomic.AddInt32(&firstCalls, 1)
		return nil
	})
	watcher.RegisterLogoutHandler(func(ctx context.Context) error {
		atomic.AddInt32(&secondCalls, 1)
		return nil
	})

	watcher.NotifyExpired(context.Background())

	assert.Equal(t, int32(0), atomic.LoadInt32(&firstCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&secondCalls))
}
