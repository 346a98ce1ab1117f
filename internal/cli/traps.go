package cli

import (
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/exploration"
	"github.com/spf13/cobra"
)

type trapListing struct {
	Room string `json:"room"`
	DC   int    `json:"dc"`
	exploration.Trap
}

func newTrapsCmd() *cobra.Command {
	trapsCmd := &cobra.Command{
		Use:   "traps",
		Short: "Inspect the built-in room traps",
	}

	trapsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every trapped room with its trap and DC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := exploration.DefaultTrapTable()

			listing := make([]trapListing, 0, table.Len())
			for _, room := range table.Rooms() {
				trap, _ := table.Lookup(room)
				listing = append(listing, trapListing{Room: room, DC: trap.DC(), Trap: trap})
			}

			return writeJSON(cmd.OutOrStdout(), listing)
		},
	})

	return trapsCmd
}
