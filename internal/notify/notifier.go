package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// dispatchTimeout bounds how long a single sound/toast dispatch may take.
// Long enough for the alert sound to finish, short enough that a wedged
// backend never stalls the watch loop.
const dispatchTimeout = 5 * time.Second

// Notifier presents notifications to the user. The console line is always
// written; sound and toast are optional extras controlled by Config and by
// what the platform Sender reports as available.
type Notifier struct {
	config Config
	sender Sender
	out    io.Writer
	now    func() time.Time
}

// New creates a Notifier using the platform sender. If toasts were
// requested but the platform cannot deliver them, a warning is logged once
// and the notifier degrades to console plus sound.
func New(config Config) *Notifier {
	return NewWithSender(config, NewSender())
}

// NewWithSender creates a Notifier with a custom sender (for testing).
func NewWithSender(config Config, sender Sender) *Notifier {
	if config.UseToast && !sender.ToastAvailable() {
		log.Printf("[notify] warning: toast notifications unavailable on this platform, falling back to console output")
		config.UseToast = false
	}
	return &Notifier{
		config: config,
		sender: sender,
		out:    os.Stdout,
		now:    time.Now,
	}
}

// SetOutput redirects the console notification line (for testing).
func (n *Notifier) SetOutput(w io.Writer) {
	n.out = w
}

// Config returns the effective configuration after capability degradation.
func (n *Notifier) Config() Config {
	return n.config
}

// Notify presents one notification. The timestamped console line is written
// synchronously; sound and toast run in a goroutine bounded by
// dispatchTimeout so a slow backend cannot block the caller indefinitely.
// Backend failures are logged and never propagated.
func (n *Notifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "[%s] %s: %s\n", n.now().Format("15:04:05"), title, message)

	if !n.config.UseSound && !n.config.UseToast {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		n.send(Notification{Title: title, Message: message})
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("[notify] warning: notification dispatch timed out after %s", dispatchTimeout)
	}
}

// send runs the configured backends, sound before toast.
func (n *Notifier) send(note Notification) {
	if n.config.UseSound {
		if err := n.sender.SendSound(); err != nil {
			log.Printf("[notify] warning: failed to play alert sound: %v", err)
		}
	}
	if n.config.UseToast {
		if err := n.sender.SendToast(note, n.config.ToastDuration); err != nil {
			log.Printf("[notify] warning: failed to show toast notification: %v", err)
		}
	}
}
