package commands

import (
	"github.com/spf13/cobra"

	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

func NewPartnersCmd(svc ledger.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Manage partner billing profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available partner profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			partners, err := svc.Partners(ctx)
			if err != nil {
				return err
			}
			selected, err := svc.SelectedPartner(ctx)
			if err != nil {
				return err
			}

			for _, p := range partners {
				marker := " "
				if p.ID == selected.ID {
					marker = "*"
				}
				cmd.Printf("%s %-24s %s\n", marker, p.ID, p.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "select <id>",
		Short: "Choose the active partner profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.SelectPartner(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Active partner set to %s\n", args[0])
			return nil
		},
	})

	return cmd
}
