package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devup/internal/artifacts"
	"devup/internal/installer"
	"devup/internal/profile"
	"devup/internal/report"
	"devup/internal/settings"
	"devup/internal/system"
	"devup/internal/tools"
	"devup/internal/verify"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the declared tools and write config files",
	Long:  "Runs the full bootstrap: probe, install what is missing, write profile fragments and config artifacts, then verify.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

// runInstall is the orchestrator: prober → installer → configuration writer
// → verifier → reporter, strictly sequential.
func runInstall(cmd *cobra.Command) error {
	if err := installer.CheckPreconditions(); err != nil {
		return err
	}

	st, err := settings.Load()
	if err != nil {
		system.Logger.Warn("settings unreadable, using defaults", "err", err)
	}
	specs := st.Select(tools.Tools)

	records := installer.Run(cmd.Context(), specs)

	if err := writeConfigs(st); err != nil {
		// Config writes failing is a per-run failure, not a fatal one:
		// the install results above still stand.
		system.Logger.Error("configuration writer", "err", err)
	}

	rep := verify.Run(cmd.Context(), specs, st.IsRequired)

	fmt.Println()
	fmt.Print(report.RenderRecords(records))
	fmt.Println()
	fmt.Print(report.RenderReport(rep))
	fmt.Println()
	fmt.Print(report.RenderHints(report.Hints(records, rep)))
	return nil
}

// writeConfigs applies profile fragments (append mode) and artifacts
// (overwrite mode).
func writeConfigs(st settings.Settings) error {
	target, err := profile.DefaultProfile()
	if err != nil {
		return err
	}
	changed, err := profile.AppendAll(target, profile.Fragments(tools.BrewPrefix()))
	if err != nil {
		return fmt.Errorf("profile %s: %w", target, err)
	}
	if changed > 0 {
		system.Logger.Info("profile updated", "file", target, "fragments", changed)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	if err := artifacts.Apply(home, st.Workspace); err != nil {
		return err
	}
	return nil
}
