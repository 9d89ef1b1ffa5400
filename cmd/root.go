package cmd

import (
	"fmt"
	"os"

	"logbook-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "logbook-manager",
	Short: "Contest Logbook Manager",
	Long: `Logbook Manager ingests amateur radio contest logs (CSL, EDI, ADIF,
Minos) and reconciles them into a single de-duplicated record list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with "debug" level so CLI users get readable
		// ISO8601 timestamps instead of epoch floats.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
