package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.True(t, cfg.UseToast)
	assert.True(t, cfg.UseSound)
	assert.False(t, cfg.QuietReset)
	assert.Equal(t, 5, cfg.ToastDuration)
}

func TestNewSender_ReturnsNonNil(t *testing.T) {
	t.Parallel()

	sender := NewSender()
	assert.NotNil(t, sender)
}

func TestToolAvailable(t *testing.T) {
	t.Parallel()

	assert.False(t, toolAvailable("definitely-not-a-real-tool-xyz-123"))
}

func TestNoopSender(t *testing.T) {
	t.Parallel()

	s := &noopSender{}
	assert.NoError(t, s.SendToast(Notification{Title: "t", Message: "m"}, 5))
	assert.NoError(t, s.SendSound())
	assert.False(t, s.ToastAvailable())
	assert.False(t, s.SoundAvailable())
}
