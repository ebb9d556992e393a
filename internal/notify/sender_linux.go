//go:build linux

package notify

import (
	"fmt"
	"os"
	"os/exec"
)

// defaultLinuxSound is the freedesktop alert sound shipped by most distros.
const defaultLinuxSound = "/usr/share/sounds/freedesktop/stereo/message.oga"

// linuxSender implements Sender for Linux using notify-send and paplay.
type linuxSender struct {
	toastAvailable bool
	soundAvailable bool
}

// newLinuxSender creates a new Linux notification sender.
func newLinuxSender() Sender {
	return &linuxSender{
		toastAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable: toolAvailable("paplay"),
	}
}

// newDarwinSender returns a no-op sender on linux.
func newDarwinSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on linux.
func newWindowsSender() Sender {
	return &noopSender{}
}

// hasDisplay checks if a display environment is available.
func hasDisplay() bool {
	// Check for X11 display
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	// Check for Wayland display
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// SendToast shows a desktop notification using notify-send. The visible
// duration maps to notify-send's expire timeout in milliseconds.
func (s *linuxSender) SendToast(n Notification, seconds int) error {
	if !s.toastAvailable {
		return nil // graceful degradation
	}

	args := []string{"-u", "normal"}
	if seconds > 0 {
		args = append(args, "-t", fmt.Sprintf("%d", seconds*1000))
	}
	args = append(args, n.Title, n.Message)

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SendSound plays the alert sound using paplay.
func (s *linuxSender) SendSound() error {
	if !s.soundAvailable {
		return nil // graceful degradation
	}

	if _, err := os.Stat(defaultLinuxSound); err != nil {
		return nil // no stock sound on this distro, skip silently
	}

	cmd := exec.Command("paplay", defaultLinuxSound)
	return cmd.Run()
}

// ToastAvailable returns true if notify-send is available and a display is present.
func (s *linuxSender) ToastAvailable() bool {
	return s.toastAvailable
}

// SoundAvailable returns true if paplay is available.
func (s *linuxSender) SoundAvailable() bool {
	return s.soundAvailable
}
