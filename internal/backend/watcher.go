package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/skygen-app/skygen/internal/logging/events"
)

// Event conveys one URL read from the inbox, or an error from a poll.
type Event struct {
	URL string
	Err error
}

// Watcher polls the inbox file at a fixed interval and publishes one event
// per appended line. Lines present before the watcher started are skipped.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	offset int64
}

// NewWatcher creates a watcher that polls path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	if info, err := os.Stat(path); err == nil {
		w.offset = info.Size()
	}

	w.startInboxPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of inbox events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startInboxPoller() {
	throttle := newThrottle(w.interval / 2)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) ([]string, error) {
		throttle.wait()
		return w.readNew()
	})
}

func (w *Watcher) poll(fetch func(context.Context) ([]string, error)) {
	defer w.wg.Done()

	send := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	emit := func() bool {
		urls, err := fetch(w.ctx)
		if err != nil {
			events.Inbox.Error(w.path, err)
			return send(Event{Err: err})
		}
		for _, url := range urls {
			if !send(Event{URL: url}) {
				return false
			}
		}
		return true
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// readNew returns the complete lines appended since the last read. A trailing
// line without a newline is left for the next poll.
func (w *Watcher) readNew() ([]string, error) {
	f, err := os.Open(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		w.offset = 0
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open inbox: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat inbox: %w", err)
	}
	if info.Size() < w.offset {
		events.Inbox.Truncated(w.path, info.Size(), w.offset)
		w.offset = 0
	}
	if info.Size() == w.offset {
		return nil, nil
	}
	if _, err := f.Seek(w.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek inbox: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil, nil
	}
	complete := data[:end+1]
	w.offset += int64(len(complete))

	var urls []string
	for _, raw := range bytes.Split(complete, []byte{'\n'}) {
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	events.Inbox.Read(w.path, len(urls), w.offset)
	return urls, nil
}
