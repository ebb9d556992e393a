//go:build windows

package notify

import (
	"fmt"
	"os/exec"
)

// windowsSender implements Sender for Windows using PowerShell.
type windowsSender struct {
	toastAvailable bool
	soundAvailable bool
}

// newWindowsSender creates a new Windows notification sender.
func newWindowsSender() Sender {
	return &windowsSender{
		toastAvailable: toolAvailable("powershell"),
		soundAvailable: toolAvailable("powershell"),
	}
}

// newDarwinSender returns a no-op sender on windows.
func newDarwinSender() Sender {
	return &noopSender{}
}

// newLinuxSender returns a no-op sender on windows.
func newLinuxSender() Sender {
	return &noopSender{}
}

// SendToast shows a toast notification using the WinRT toast API via
// PowerShell. The visible duration is applied through the toast's
// ExpirationTime; the shell still clamps very long values.
func (s *windowsSender) SendToast(n Notification, seconds int) error {
	if !s.toastAvailable {
		return nil // graceful degradation
	}

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
$toast.ExpirationTime = [DateTimeOffset]::Now.AddSeconds(%d)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('teamswatch').Show($toast)
`, escapeForPowerShell(n.Title), escapeForPowerShell(n.Message), seconds)

	cmd := exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
	return cmd.Run()
}

// SendSound plays the exclamation beep using PowerShell.
func (s *windowsSender) SendSound() error {
	if !s.soundAvailable {
		return nil // graceful degradation
	}

	cmd := exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command",
		"[System.Media.SystemSounds]::Exclamation.Play(); Start-Sleep -Milliseconds 500")
	return cmd.Run()
}

// ToastAvailable returns true if PowerShell is available.
func (s *windowsSender) ToastAvailable() bool {
	return s.toastAvailable
}

// SoundAvailable returns true if PowerShell is available.
func (s *windowsSender) SoundAvailable() bool {
	return s.soundAvailable
}

// escapeForPowerShell escapes special characters for PowerShell strings.
func escapeForPowerShell(s string) string {
	result := ""
	for _, c := range s {
		if c == '\'' {
			result += "''"
		} else if c == '`' || c == '$' {
			result += "`" + string(c)
		} else {
			result += string(c)
		}
	}
	return result
}
