// Package cli provides the cobra commands for teamswatch: the root watch
// command and the version command.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"teamswatch/internal/config"
	"teamswatch/internal/notify"
	"teamswatch/internal/watcher"
)

var rootCmd = &cobra.Command{
	Use:   "teamswatch",
	Short: "Watch the Microsoft Teams log for badge count changes",
	Long: `teamswatch tails the Microsoft Teams log file and raises a local
notification whenever the unread badge count changes: an alert when new
activity arrives, and a short note when everything has been read.

Only log content appended after startup is considered; nothing is replayed.`,
	Example: `  # Watch the default Teams log location
  teamswatch

  # Watch a specific file, checking twice per second
  teamswatch --log-path /tmp/teams-logs.txt --poll-interval 0.5

  # Console output only
  teamswatch --no-toast --no-sound

  # Skip the "all cleared" notification
  teamswatch --quiet-reset`,
	SilenceUsage: true,
	RunE:         runWatch,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerWatchFlags(rootCmd)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (JSON)")
	rootCmd.AddCommand(versionCmd)
}

// registerWatchFlags declares the watch flags; split out so tests can build
// an identical flag set on a throwaway command.
func registerWatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-path", "", "Path to the Teams logs.txt file (default: platform Teams location)")
	cmd.Flags().Float64("poll-interval", 0, "Seconds to wait before checking for new log entries")
	cmd.Flags().Bool("no-toast", false, "Disable toast notifications (console output still shown)")
	cmd.Flags().Bool("no-sound", false, "Disable the audible notification")
	cmd.Flags().Bool("quiet-reset", false, "Do not notify when the badge count returns to zero")
	cmd.Flags().Int("toast-duration", 0, "Seconds a toast notification should remain visible")
}

// applyFlags overlays explicitly set flags onto the loaded configuration.
// Flags sit above env and config files in the precedence order.
func applyFlags(cfg *config.Configuration, flags *pflag.FlagSet) error {
	if flags.Changed("log-path") {
		cfg.LogPath, _ = flags.GetString("log-path")
	}
	if flags.Changed("poll-interval") {
		v, _ := flags.GetFloat64("poll-interval")
		if v <= 0 {
			return fmt.Errorf("--poll-interval must be greater than zero, got %v", v)
		}
		cfg.PollInterval = v
	}
	if flags.Changed("no-toast") {
		cfg.UseToast = false
	}
	if flags.Changed("no-sound") {
		cfg.UseSound = false
	}
	if flags.Changed("quiet-reset") {
		cfg.QuietReset = true
	}
	if flags.Changed("toast-duration") {
		v, _ := flags.GetInt("toast-duration")
		if v < 1 {
			return fmt.Errorf("--toast-duration must be at least 1 second, got %d", v)
		}
		cfg.ToastDuration = v
	}
	return nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cfg, cmd.Flags()); err != nil {
		return err
	}

	if cfg.LogPath == "" {
		path, err := config.DefaultLogPath()
		if err != nil {
			return err
		}
		cfg.LogPath = path
	}

	notifier := notify.New(notify.Config{
		UseToast:      cfg.UseToast,
		UseSound:      cfg.UseSound,
		QuietReset:    cfg.QuietReset,
		ToastDuration: cfg.ToastDuration,
	})

	w := watcher.New(cfg.LogPath, notifier, watcher.Options{
		PollInterval: cfg.PollDuration(),
		QuietReset:   cfg.QuietReset,
	})

	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(cmd.ErrOrStderr(), dim(fmt.Sprintf(
		"Watching %s (polling every %.1fs). Press Ctrl+C to stop.", cfg.LogPath, cfg.PollInterval)))

	// Spinner on stderr when interactive; notification lines keep stdout.
	var sp *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = os.Stderr
		sp.Suffix = " watching for badge changes"
		sp.Start()
		defer sp.Stop()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var interrupted atomic.Bool
	go func() {
		<-sigCh
		interrupted.Store(true)
		w.Stop()
	}()

	if err := w.Run(); err != nil {
		return err
	}

	if sp != nil {
		sp.Stop()
	}
	if interrupted.Load() {
		fmt.Fprintln(cmd.OutOrStdout(), "Stopped by user.")
	}
	return nil
}
