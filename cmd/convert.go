package cmd

import (
	"fmt"

	"logbook-manager/core/logger"
	"logbook-manager/feature/logbook"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertOutput           string
	convertMode             string
	convertDropCallsignOnly bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Merge contest logs into a single CSL file",
	Long: `Loads one or more contest logs (.csl, .edi, .adi, .adif, .minos),
reconciles them under the selected merge policy, and writes the combined
record list as a CSL file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		mode, err := logbook.ParseMergeMode(convertMode)
		if err != nil {
			return err
		}

		manager := logbook.NewManager(logg)
		manager.SetMergeMode(mode)
		manager.SetDropCallsignOnly(convertDropCallsignOnly)

		for _, path := range args {
			summary, err := manager.Load(path, nil)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}
			logg.Info("Loaded file",
				zap.String("path", path),
				zap.Int("scanned", summary.Scanned),
				zap.Int("added", summary.Added),
				zap.Int("duplicates", summary.Duplicates),
			)
		}

		if err := manager.Save(convertOutput); err != nil {
			return err
		}
		logg.Info("Wrote combined logbook",
			zap.String("path", convertOutput),
			zap.Int("records", manager.Count()),
		)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "logbook.csl", "output CSL file")
	convertCmd.Flags().StringVar(&convertMode, "mode", "keep-all", "merge policy: keep-all, keep-recent, smart-merge")
	convertCmd.Flags().BoolVar(&convertDropCallsignOnly, "drop-callsign-only", false, "drop records with no data beyond the callsign")
	RootCmd.AddCommand(convertCmd)
}
