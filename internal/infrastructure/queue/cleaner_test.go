package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeleter struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (d *recordingDeleter) Delete(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleted = append(d.deleted, id)
	return d.err
}

func TestCleaner_DrainsOnStop(t *testing.T) {
	store := &recordingDeleter{}
	c := NewCleaner(3, store, zerolog.Nop())
	c.Start(context.Background())

	for _, id := range []string{"f-1", "f-2", "f-3", "f-4"} {
		require.NoError(t, c.Remove(context.Background(), id))
	}
	c.Stop()

	assert.ElementsMatch(t, []string{"f-1", "f-2", "f-3", "f-4"}, store.deleted)
}

func TestCleaner_FailuresAreSwallowed(t *testing.T) {
	store := &recordingDeleter{err: errors.New("403 forbidden")}
	c := NewCleaner(1, store, zerolog.Nop())
	c.Start(context.Background())

	require.NoError(t, c.Remove(context.Background(), "f-1"))
	c.Stop()

	assert.Equal(t, []string{"f-1"}, store.deleted)
}

func TestCleaner_QueueFull(t *testing.T) {
	c := NewCleaner(1, &recordingDeleter{}, zerolog.Nop())
	// Not started: nothing drains the queue.
	for i := 0; i < channelBuffer; i++ {
		require.NoError(t, c.Remove(context.Background(), "f"))
	}
	assert.ErrorIs(t, c.Remove(context.Background(), "f"), ErrQueueFull)
}

func TestCleaner_ShardIndexIsStable(t *testing.T) {
	c := NewCleaner(8, &recordingDeleter{}, zerolog.Nop())
	first := c.shardIndex("folder-abc")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.shardIndex("folder-abc"))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 8)
}
