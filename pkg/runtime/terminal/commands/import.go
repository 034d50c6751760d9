package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

func NewImportCmd(svc ledger.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a Bolt or Uber trip report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer file.Close()

			outcome, err := svc.ImportTrips(cmd.Context(), filepath.Base(path), file)
			if err != nil {
				return err
			}

			cmd.Printf("Imported %d %s trips", outcome.TripCount, outcome.Platform)
			if outcome.Skipped > 0 {
				cmd.Printf(" (%d malformed lines skipped)", outcome.Skipped)
			}
			cmd.Println()
			return nil
		},
	}
}
