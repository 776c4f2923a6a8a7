package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	deleteTimeout  = 30 * time.Second
)

// ErrQueueFull is returned by Remove when the target worker has no room left.
var ErrQueueFull = errors.New("folder cleanup queue full")

// FolderDeleter is the part of the folder store the cleaner needs.
type FolderDeleter interface {
	Delete(ctx context.Context, fileID string) error
}

// Cleaner deletes storage folders in the background. Folder IDs are sharded
// across a fixed set of workers by hash, so requests for the same folder are
// handled in order by one worker.
type Cleaner struct {
	workers []chan string
	store   FolderDeleter
	log     zerolog.Logger
	wg      sync.WaitGroup
}

var _ ports.FolderRemover = (*Cleaner)(nil)

// NewCleaner creates a Cleaner with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewCleaner(numWorkers int, store FolderDeleter, log zerolog.Logger) *Cleaner {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	c := &Cleaner{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range c.workers {
		c.workers[i] = make(chan string, channelBuffer)
	}
	return c
}

// Start launches all worker goroutines. Workers exit when ctx is cancelled or
// after Stop has drained their queue.
func (c *Cleaner) Start(ctx context.Context) {
	for i, ch := range c.workers {
		c.wg.Add(1)
		go c.runWorker(ctx, i, ch)
	}
}

// Stop closes the queues and waits for the workers to finish pending folders.
// Remove must not be called afterwards.
func (c *Cleaner) Stop() {
	for _, ch := range c.workers {
		close(ch)
	}
	c.wg.Wait()
}

// Remove queues folderID for deletion without waiting for the provider.
func (c *Cleaner) Remove(_ context.Context, folderID string) error {
	select {
	case c.workers[c.shardIndex(folderID)] <- folderID:
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a folder ID deterministically to a worker index.
func (c *Cleaner) shardIndex(folderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(folderID))
	return int(h.Sum32() % uint32(len(c.workers)))
}

func (c *Cleaner) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case folderID, ok := <-ch:
			if !ok {
				return
			}
			c.delete(ctx, id, folderID)
		}
	}
}

func (c *Cleaner) delete(ctx context.Context, worker int, folderID string) {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := c.store.Delete(ctx, folderID); err != nil {
		c.log.Warn().Err(err).
			Str("folder_id", folderID).
			Int("worker_id", worker).
			Msg("folder cleanup failed")
		return
	}
	c.log.Info().Str("folder_id", folderID).Msg("folder removed")
}
