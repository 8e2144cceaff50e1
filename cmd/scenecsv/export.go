package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gekko3d/scenecsv"
	"github.com/gekko3d/scenecsv/scenedoc"
)

var exportCmd = &cobra.Command{
	Use:   "export <scene.yaml>",
	Short: "Write one CSV row per lighting setup, frame and shape",
	Long: `Iterate every lighting setup and frame of the scene document, record camera
and brightest-light metadata, and write one row per shape with the expected
dataset image path. A relative output path is resolved next to the scene file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("config", "c", "", "YAML export configuration")
	exportCmd.Flags().StringP("output", "o", "", "Output CSV path (default from config)")
	exportCmd.Flags().String("sqlite", "", "Also write rows to this SQLite database")
	exportCmd.Flags().String("dataset-root", "", "Dataset root for image existence checks")
	exportCmd.Flags().Bool("no-check", false, "Skip image existence checks")
	exportCmd.Flags().Bool("verify-images", false, "Count an image as present only if it decodes")
	exportCmd.Flags().Int("max-lights", 0, "Override max_active_lights")
	exportCmd.Flags().Bool("debug", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command) (scenecsv.Config, error) {
	cfg := scenecsv.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = scenecsv.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if n, _ := cmd.Flags().GetInt("max-lights"); cmd.Flags().Changed("max-lights") {
		cfg.MaxActiveLights = n
	}
	return cfg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	scenePath := args[0]
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if v, _ := flags.GetString("output"); v != "" {
		cfg.Output = v
	}
	if v, _ := flags.GetString("sqlite"); v != "" {
		cfg.SQLite = v
	}
	if flags.Changed("dataset-root") {
		cfg.DatasetRoot, _ = flags.GetString("dataset-root")
	}
	if noCheck, _ := flags.GetBool("no-check"); noCheck {
		cfg.DatasetRoot = ""
	}
	if verify, _ := flags.GetBool("verify-images"); verify {
		cfg.VerifyImages = true
	}
	debug, _ := flags.GetBool("debug")
	log := scenecsv.NewLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), "scenecsv", debug)

	scene, err := scenedoc.Open(scenePath)
	if err != nil {
		return err
	}
	exporter, err := scenecsv.NewExporter(cfg, scenecsv.WithLogger(log.Named("export")))
	if err != nil {
		return err
	}

	out := scenecsv.ResolveOutputPath(scenePath, cfg.Output)
	sink, err := openSinks(out, cfg.SQLite, exporter.RunID())
	if err != nil {
		return err
	}
	stats, err := exporter.Run(scene, sink)
	if err != nil {
		return err
	}
	log.Infof("wrote %s: %d rows, %d setups, %d frames, %d degraded fields", out, stats.Rows, stats.Setups, stats.Frames, stats.DegradedFields)
	return nil
}

func openSinks(csvPath, sqlitePath, runID string) (scenecsv.RowSink, error) {
	csvSink, err := scenecsv.CreateCSV(csvPath)
	if err != nil {
		return nil, err
	}
	if sqlitePath == "" {
		return csvSink, nil
	}
	db, err := scenecsv.OpenSQLiteSink(sqlitePath, runID)
	if err != nil {
		csvSink.Close()
		return nil, fmt.Errorf("open sqlite sink: %w", err)
	}
	return scenecsv.Tee(csvSink, db), nil
}
