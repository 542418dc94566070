package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/atlasdev/atlas/internal/cli"
	"github.com/atlasdev/atlas/internal/rank"
	"github.com/spf13/cobra"
)

func rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [total-xp]",
		Short: "Show the rank ladder, or the standing for a given XP total",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				printLadder()
				return nil
			}

			total, err := strconv.ParseFloat(args[0], 64)
			if err != nil || total < 0 {
				return fmt.Errorf("invalid XP total: %s", args[0])
			}

			standing := rank.For(total)
			fmt.Println(cli.TitleStyle.Render(standing.Rank))
			fmt.Printf("Total XP:  %.0f (rank floor %.0f)\n", total, standing.MinXP)
			fmt.Printf("Next rank: %s at %.0f XP\n", standing.NextRankName, standing.NextRankMinXP)
			return nil
		},
	}

	return cmd
}

func printLadder() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Rank\tMin XP\n")
	fmt.Fprintf(w, "----\t------\n")
	for _, t := range rank.Thresholds() {
		fmt.Fprintf(w, "%s\t%.0f\n", t.Name, t.MinXP)
	}
	fmt.Fprintf(w, "%s\t(past %s)\n", rank.TerminalRankName, rank.Thresholds()[len(rank.Thresholds())-1].Name)
}
