package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"teamswatch/internal/config"
	"teamswatch/internal/notify"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and notification backends",
	Long: `Verify that teamswatch can run on this machine: the configuration
loads, the Teams log file is present, and the platform notification
backends (toast, sound) are available.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		out := cmd.OutOrStdout()

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(out, "%s config: %v\n", red("✗"), err)
			return fmt.Errorf("configuration is not usable")
		}
		fmt.Fprintf(out, "%s config loaded (poll every %.1fs)\n", green("✓"), cfg.PollInterval)

		logPath := cfg.LogPath
		if logPath == "" {
			logPath, err = config.DefaultLogPath()
			if err != nil {
				fmt.Fprintf(out, "%s log path: %v\n", red("✗"), err)
				return fmt.Errorf("no usable log path")
			}
		}
		if _, err := os.Stat(logPath); err != nil {
			fmt.Fprintf(out, "%s log file missing: %s\n", yellow("!"), logPath)
			fmt.Fprintln(out, "  Make sure Microsoft Teams is installed and has run at least once.")
		} else {
			fmt.Fprintf(out, "%s log file found: %s\n", green("✓"), logPath)
		}

		sender := notify.NewSender()
		if sender.ToastAvailable() {
			fmt.Fprintf(out, "%s toast notifications available\n", green("✓"))
		} else {
			fmt.Fprintf(out, "%s toast notifications unavailable (console output will be used)\n", yellow("!"))
		}
		if sender.SoundAvailable() {
			fmt.Fprintf(out, "%s sound notifications available\n", green("✓"))
		} else {
			fmt.Fprintf(out, "%s sound notifications unavailable\n", yellow("!"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
