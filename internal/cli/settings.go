package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"devup/internal/config"
	"devup/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSchemaCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit devup settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.RunForm()
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}
		p, _ := config.SettingsPath()
		fmt.Printf("# %s\n", p)
		b, err := yaml.Marshal(st)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for settings.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := settings.MarshalSchema(settings.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
