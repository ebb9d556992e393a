package notify

// Config holds user preferences for how notifications are presented.
// Loaded from the config hierarchy (flags > env > local > global > defaults).
type Config struct {
	// UseToast enables transient on-screen notifications where the platform
	// supports them. Unsupported platforms degrade to console output.
	UseToast bool `koanf:"use_toast" json:"use_toast"`

	// UseSound enables the audible alert.
	UseSound bool `koanf:"use_sound" json:"use_sound"`

	// QuietReset suppresses the "cleared" notification when the badge count
	// returns to zero.
	QuietReset bool `koanf:"quiet_reset" json:"quiet_reset"`

	// ToastDuration is how long a toast stays visible, in seconds.
	ToastDuration int `koanf:"toast_duration" json:"toast_duration"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		UseToast:      true,
		UseSound:      true,
		QuietReset:    false,
		ToastDuration: 5,
	}
}

// Notification is a single event to present to the user. It is consumed
// once by the sender and never persisted.
type Notification struct {
	Title   string
	Message string
}
