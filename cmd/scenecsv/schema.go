package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gekko3d/scenecsv"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CSV column names, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		for _, col := range scenecsv.Header(cfg.MaxActiveLights) {
			fmt.Fprintln(cmd.OutOrStdout(), col)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringP("config", "c", "", "YAML export configuration")
	schemaCmd.Flags().Int("max-lights", 0, "Override max_active_lights")
}
