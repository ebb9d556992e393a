// Package watcher tails the Teams log file and raises a notification
// whenever the embedded badge count changes.
//
// The tail loop is poll-based with an explicit cursor: record the current
// offset, attempt to read one complete line, and rewind to the recorded
// offset when the file ends mid-line so a partial append is re-read intact
// once the writer finishes it. Only content appended after the session
// starts is ever considered.
package watcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"teamswatch/internal/badge"
)

// DefaultPollInterval is how long the watcher waits before re-checking the
// log when no complete line is available.
const DefaultPollInterval = 2 * time.Second

// notificationTitle heads every notification raised by a watch session.
const notificationTitle = "Teams notification"

// Notifier receives user-facing notifications from the watcher. Dispatch is
// fire and forget; implementations own their failure handling and must be
// safe for use by concurrent sessions.
type Notifier interface {
	Notify(title, message string)
}

// NotFoundError reports that the log file was missing when the watch
// session started.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Teams log file not found at %q. Make sure Microsoft Teams is installed and has run at least once.", e.Path)
}

// Options configures a watch session.
type Options struct {
	// PollInterval is the wait between checks for new data.
	// Zero or negative means DefaultPollInterval.
	PollInterval time.Duration

	// QuietReset suppresses the "cleared" notification when the badge
	// count returns to zero.
	QuietReset bool

	// Extractor overrides the badge pattern list. Nil means badge.Default().
	Extractor *badge.Extractor
}

// Watcher owns one watch session over a single log file. All session state
// is mutated only by Run's goroutine; Stop is the sole external signal and
// may be called from anywhere. A Watcher is single-use: once Run returns,
// construct a new one to watch again.
type Watcher struct {
	path       string
	notifier   Notifier
	extractor  *badge.Extractor
	interval   time.Duration
	quietReset bool

	// last observed badge count; lastSet distinguishes "never seen" from zero.
	last    int
	lastSet bool

	ready     chan struct{}
	readyOnce sync.Once
	stop      chan struct{}
	stopOnce  sync.Once
}

// New creates a watch session for the log file at path. Notifications go to
// notifier; opts tune polling and dispatch behavior.
func New(path string, notifier Notifier, opts Options) *Watcher {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = badge.Default()
	}
	return &Watcher{
		path:       path,
		notifier:   notifier,
		extractor:  extractor,
		interval:   interval,
		quietReset: opts.QuietReset,
		ready:      make(chan struct{}),
		stop:       make(chan struct{}),
	}
}

// Ready is closed once the session has opened the log and is tailing from
// end-of-file. Callers that append to the log (supervisors, tests) can use
// it to sequence writes so nothing lands before the cursor is positioned.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Stop requests a cooperative shutdown. The run loop exits after at most
// one poll interval; an in-progress read or notification is not
// interrupted. Safe to call from any goroutine, any number of times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Run tails the log until Stop is called or an I/O error occurs. Returns
// *NotFoundError if the file is missing at start, nil on a clean stop, and
// the underlying error on a mid-run I/O failure. The session does not retry
// internally; the caller decides whether to construct a new one.
func (w *Watcher) Run() error {
	f, err := os.Open(w.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &NotFoundError{Path: w.path}
		}
		return fmt.Errorf("open %s: %w", w.path, err)
	}
	defer f.Close()

	// Only entries appended after this point are considered.
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek %s: %w", w.path, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })

	for {
		select {
		case <-w.stop:
			return nil
		default:
		}

		line, ok, err := readLine(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", w.path, err)
		}
		if !ok {
			// No complete line yet; the cursor has been rewound past any
			// partial tail. Wait for the writer, but stay stoppable.
			select {
			case <-w.stop:
				return nil
			case <-time.After(w.interval):
			}
			continue
		}

		w.processLine(line)
	}
}

// readLine attempts to consume the next complete line from f. When the file
// ends before a newline is found, the cursor is restored to where it was so
// the partial tail is read again, whole, on a later attempt.
func readLine(f *os.File) (string, bool, error) {
	start, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", false, err
	}

	var line []byte
	buf := make([]byte, 4096)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
				line = append(line, buf[:i]...)
				consumed := int64(len(line)) + 1
				if _, err := f.Seek(start+consumed, io.SeekStart); err != nil {
					return "", false, err
				}
				return string(trimCR(line)), true, nil
			}
			line = append(line, buf[:n]...)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				if _, err := f.Seek(start, io.SeekStart); err != nil {
					return "", false, err
				}
				return "", false, nil
			}
			return "", false, rerr
		}
	}
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

// processLine runs extraction and the edge-triggered dispatch policy. Lines
// without a badge count never alter session state; repeated equal values
// update nothing and stay silent.
func (w *Watcher) processLine(line string) {
	count, ok := w.extractor.Extract(line)
	if !ok {
		return
	}

	prev, prevSet := w.last, w.lastSet
	w.last, w.lastSet = count, true
	if prevSet && prev == count {
		return
	}

	switch {
	case count > 0:
		plural := "s"
		if count == 1 {
			plural = ""
		}
		w.notifier.Notify(notificationTitle, fmt.Sprintf("You have %d unread item%s.", count, plural))
	case prevSet && prev > 0 && !w.quietReset:
		// A reset from "never observed" stays silent, same as from zero.
		w.notifier.Notify(notificationTitle, "All Teams notifications have been cleared.")
	}
}
