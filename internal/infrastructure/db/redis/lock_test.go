package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func newTestLocker(t *testing.T) (*Locker, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	l := NewLocker(client, time.Second)
	l.retry = time.Millisecond
	l.newToken = func() string { return "token-1" }
	return l, mock
}

func TestLocker_LockAndRelease(t *testing.T) {
	l, mock := newTestLocker(t)

	mock.ExpectSetNX("lock:clients", "token-1", time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"lock:clients"}, "token-1").SetVal(int64(1))

	unlock, err := l.Lock(context.Background(), "clients")
	if err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}
	unlock()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLocker_RetriesWhileHeld(t *testing.T) {
	l, mock := newTestLocker(t)

	mock.ExpectSetNX("lock:users", "token-1", time.Second).SetVal(false)
	mock.ExpectSetNX("lock:users", "token-1", time.Second).SetVal(true)

	if _, err := l.Lock(context.Background(), "users"); err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLocker_ContextDone(t *testing.T) {
	l, mock := newTestLocker(t)
	l.retry = time.Hour

	mock.ExpectSetNX("lock:users", "token-1", time.Second).SetVal(false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := l.Lock(ctx, "users")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestLocker_RedisError(t *testing.T) {
	l, mock := newTestLocker(t)

	mock.ExpectSetNX("lock:users", "token-1", time.Second).SetErr(errors.New("connection refused"))

	if _, err := l.Lock(context.Background(), "users"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLocker_ReleaseFailureLeavesKeyToTTL(t *testing.T) {
	l, mock := newTestLocker(t)

	mock.ExpectSetNX("lock:case_files", "token-1", time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"lock:case_files"}, "token-1").SetErr(errors.New("connection reset"))

	unlock, err := l.Lock(context.Background(), "case_files")
	if err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(releaseTimeout + time.Second):
		t.Fatalf("release did not return")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
