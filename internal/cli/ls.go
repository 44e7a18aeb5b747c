package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devup/internal/settings"
	"devup/internal/tools"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List declared tools with their current status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _ := settings.Load()
		for _, t := range tools.Tools {
			var line strings.Builder
			line.WriteString(fmt.Sprintf("- %s: ", t.DisplayName))
			if !st.Enabled(t.ID) {
				line.WriteString("disabled")
				fmt.Println(line.String())
				continue
			}
			res := tools.Inspect(t)
			if !res.Installed {
				line.WriteString("not installed")
				if st.IsRequired(t) {
					line.WriteString(" (required)")
				}
				fmt.Println(line.String())
				continue
			}
			ver := strings.TrimSpace(res.Version)
			if ver == "" {
				ver = "?"
			}
			line.WriteString(ver)
			if strings.TrimSpace(res.Source) != "" {
				line.WriteString(fmt.Sprintf(" · via %s", res.Source))
			}
			fmt.Println(line.String())
		}
		return nil
	},
}
