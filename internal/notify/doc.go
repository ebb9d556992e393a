// Package notify presents badge-count notifications to the user.
//
// A Notifier always writes a timestamped line to its console writer; sound
// and toast delivery are best-effort extras handled by a platform Sender.
// Platform capabilities (osascript/afplay on macOS, notify-send/paplay on
// Linux, PowerShell on Windows) are probed once at construction, never at
// call sites. Sender failures are logged and swallowed so a broken
// notification backend can never take down the watch loop.
package notify
