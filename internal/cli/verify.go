package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"devup/internal/report"
	"devup/internal/settings"
	"devup/internal/system"
	"devup/internal/tools"
	"devup/internal/verify"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-probe every declared tool and print a report",
	Long: "Checks each tool and runtime capability and prints a structured report. " +
		"The exit code is always 0: failures are advisory, so piping verify into a larger script never aborts it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			system.Logger.Warn("settings unreadable, using defaults", "err", err)
		}
		specs := st.Select(tools.Tools)
		rep := verify.Run(cmd.Context(), specs, st.IsRequired)
		fmt.Print(report.RenderReport(rep))
		fmt.Println()
		fmt.Print(report.RenderHints(report.Hints(nil, rep)))
		// Advisory contract: report, never escalate.
		return nil
	},
}
