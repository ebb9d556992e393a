// Package notify_test provides mock implementations for notification sender testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import "sync"

// MockSender is a mock implementation of Sender for testing. It records all
// method calls and allows configuring availability and returned errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	ToastError     error
	SoundError     error
	toastAvailable bool
	soundAvailable bool
	ToastFunc      func(Notification, int) error
	SoundFunc      func() error

	// Call tracking
	ToastCalls       []Notification
	ToastDurations   []int
	SoundCallCount   int
	LastNotification Notification
}

// NewMockSender creates a mock sender with default behavior (all available, no errors).
func NewMockSender() *MockSender {
	return &MockSender{
		toastAvailable: true,
		soundAvailable: true,
		ToastCalls:     make([]Notification, 0),
	}
}

// WithToastError configures the mock to return an error on SendToast.
func (m *MockSender) WithToastError(err error) *MockSender {
	m.ToastError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound.
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// WithToastAvailable configures whether toast notifications are available.
func (m *MockSender) WithToastAvailable(available bool) *MockSender {
	m.toastAvailable = available
	return m
}

// WithSoundAvailable configures whether sound notifications are available.
func (m *MockSender) WithSoundAvailable(available bool) *MockSender {
	m.soundAvailable = available
	return m
}

// WithToastFunc configures a custom toast function.
func (m *MockSender) WithToastFunc(fn func(Notification, int) error) *MockSender {
	m.ToastFunc = fn
	return m
}

// WithSoundFunc configures a custom sound function.
func (m *MockSender) WithSoundFunc(fn func() error) *MockSender {
	m.SoundFunc = fn
	return m
}

// SendToast records the call and returns the configured error.
func (m *MockSender) SendToast(n Notification, seconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToastCalls = append(m.ToastCalls, n)
	m.ToastDurations = append(m.ToastDurations, seconds)
	m.LastNotification = n
	if m.ToastFunc != nil {
		return m.ToastFunc(n, seconds)
	}
	return m.ToastError
}

// SendSound records the call and returns the configured error.
func (m *MockSender) SendSound() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SoundCallCount++
	if m.SoundFunc != nil {
		return m.SoundFunc()
	}
	return m.SoundError
}

// ToastAvailable returns the configured availability.
func (m *MockSender) ToastAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.toastAvailable
}

// SoundAvailable returns the configured availability.
func (m *MockSender) SoundAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.soundAvailable
}

// ToastCount returns the number of toast calls recorded.
func (m *MockSender) ToastCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ToastCalls)
}

// SoundCount returns the number of sound calls recorded.
func (m *MockSender) SoundCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SoundCallCount
}
