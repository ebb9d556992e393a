package notify

import (
	"os/exec"
	"runtime"
)

// Sender is a platform-specific notification backend.
type Sender interface {
	// SendToast raises a transient on-screen notification that stays
	// visible for roughly the given number of seconds.
	SendToast(n Notification, seconds int) error

	// SendSound plays the platform alert sound.
	SendSound() error

	// ToastAvailable returns true if toast notifications are supported.
	ToastAvailable() bool

	// SoundAvailable returns true if sound notifications are supported.
	SoundAvailable() bool
}

// NewSender creates a platform-specific notification sender based on the
// current OS. Capabilities are probed here, once, rather than at each call
// site. For unsupported platforms it returns a no-op sender.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &noopSender{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH.
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopSender is a sender that does nothing (for unsupported platforms).
type noopSender struct{}

func (s *noopSender) SendToast(_ Notification, _ int) error { return nil }
func (s *noopSender) SendSound() error                      { return nil }
func (s *noopSender) ToastAvailable() bool                  { return false }
func (s *noopSender) SoundAvailable() bool                  { return false }
