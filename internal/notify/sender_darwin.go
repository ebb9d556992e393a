//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

const (
	// defaultMacOSSound is the alert sound played for badge changes on macOS.
	defaultMacOSSound = "/System/Library/Sounds/Glass.aiff"
)

// darwinSender implements Sender for macOS using osascript and afplay.
// macOS has no per-notification duration control; Notification Center owns
// how long banners stay visible, so the seconds argument is ignored.
type darwinSender struct {
	toastAvailable bool
	soundAvailable bool
}

// newDarwinSender creates a new macOS notification sender.
func newDarwinSender() Sender {
	return &darwinSender{
		toastAvailable: toolAvailable("osascript"),
		soundAvailable: toolAvailable("afplay"),
	}
}

// newLinuxSender returns a no-op sender on darwin.
func newLinuxSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on darwin.
func newWindowsSender() Sender {
	return &noopSender{}
}

// SendToast shows a Notification Center banner using osascript.
func (s *darwinSender) SendToast(n Notification, _ int) error {
	if !s.toastAvailable {
		return nil // graceful degradation
	}

	script := fmt.Sprintf(`display notification %q with title %q`, n.Message, n.Title)

	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

// SendSound plays the alert sound using afplay.
func (s *darwinSender) SendSound() error {
	if !s.soundAvailable {
		return nil // graceful degradation
	}

	cmd := exec.Command("afplay", defaultMacOSSound)
	return cmd.Run()
}

// ToastAvailable returns true if osascript is available.
func (s *darwinSender) ToastAvailable() bool {
	return s.toastAvailable
}

// SoundAvailable returns true if afplay is available.
func (s *darwinSender) SoundAvailable() bool {
	return s.soundAvailable
}
