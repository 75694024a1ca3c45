// Package animctl implements the operator CLI for a running animd
// daemon. Every command is one HTTP call against the control API with
// the resulting status printed as JSON.
package animctl

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// Config carries the CLI settings resolved from flags and environment.
type Config struct {
	Addr string
}

func defaultAddr() string {
	if v := os.Getenv("ANIMCTL_ADDR"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}

// buildRootCmd constructs the Cobra command tree wired to the HTTP actions.
func buildRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "animctl",
		Short:         "Control a running animd animation daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("addr", cfg.Addr, "Base URL of the animd API (defaults ANIMCTL_ADDR or http://127.0.0.1:8080)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("addr"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.Addr = v
			}
		}
	}

	statusCmd := &cobra.Command{Use: "status", Short: "Print the animator status", RunE: func(cmd *cobra.Command, args []string) error {
		return fnGet(cfg, "/status")
	}}
	startCmd := &cobra.Command{Use: "start", Short: "Start the animation loop", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/start", "")
	}}
	pauseCmd := &cobra.Command{Use: "pause", Short: "Pause the animation loop", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/pause", "")
	}}
	resumeCmd := &cobra.Command{Use: "resume", Short: "Resume a paused loop", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/resume", "")
	}}
	stopCmd := &cobra.Command{Use: "stop", Short: "Stop the animation loop", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/stop", "")
	}}

	rateCmd := &cobra.Command{Use: "rate <fps>", Short: "Set the target frame rate", Example: "  animctl rate 30\n  animctl rate max", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "max" {
			return fnPut(cfg, "/rate", `{"ignore_cap":true}`)
		}
		fps, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("rate must be a number or 'max': %w", err)
		}
		return fnPut(cfg, "/rate", fmt.Sprintf(`{"fps":%g}`, fps))
	}}

	hideCmd := &cobra.Command{Use: "hide", Short: "Broadcast a became-hidden event", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/visibility", `{"hidden":true}`)
	}}
	showCmd := &cobra.Command{Use: "show", Short: "Broadcast a became-visible event", RunE: func(cmd *cobra.Command, args []string) error {
		return fnPost(cfg, "/visibility", `{"hidden":false}`)
	}}

	policyCmd := &cobra.Command{Use: "policy", Short: "Update visibility policies", Example: "  animctl policy --pause-on-hidden=false"}
	var pauseOnHidden, resumeOnShown bool
	policyCmd.Flags().BoolVar(&pauseOnHidden, "pause-on-hidden", true, "Pause when the surface hides")
	policyCmd.Flags().BoolVar(&resumeOnShown, "resume-on-shown", true, "Resume when the surface shows")
	policyCmd.RunE = func(cmd *cobra.Command, args []string) error {
		body := "{"
		sep := ""
		if cmd.Flags().Changed("pause-on-hidden") {
			body += fmt.Sprintf(`%s"pause_on_hidden":%t`, sep, pauseOnHidden)
			sep = ","
		}
		if cmd.Flags().Changed("resume-on-shown") {
			body += fmt.Sprintf(`%s"resume_on_shown":%t`, sep, resumeOnShown)
			sep = ","
		}
		body += "}"
		if body == "{}" {
			return fmt.Errorf("policy requires --pause-on-hidden and/or --resume-on-shown")
		}
		return fnPut(cfg, "/policy", body)
	}

	root.AddCommand(statusCmd, startCmd, pauseCmd, resumeCmd, stopCmd, rateCmd, hideCmd, showCmd, policyCmd)
	return root
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	cfg := &Config{Addr: defaultAddr()}
	root := buildRootCmd(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
