// Package cli is the console delivery layer: a cobra command surface
// wrapping an interactive text menu. It formats entity output and maps
// domain errors to messages; all validation rules stay in the domain
// constructors.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roomreserve/internal/domain"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

// NewRoot returns the root command. Running it without a subcommand starts
// the interactive menu.
func NewRoot(svc domain.ReservationService, log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "roomreserve",
		Short:        "Room reservations for an institution",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	root.AddCommand(newMenuCmd(svc, log))
	root.AddCommand(newVersionCmd())

	return root
}

func newMenuCmd(svc domain.ReservationService, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive reservation menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roomreserve %s (%s)\n", Version, CommitSHA)
		},
	}
}
