package main

import (
	"fmt"
	"strconv"

	"github.com/atlasdev/atlas/internal/cli"
	"github.com/atlasdev/atlas/internal/model"
	"github.com/atlasdev/atlas/internal/rank"
	"github.com/atlasdev/atlas/internal/xp"
	"github.com/spf13/cobra"
)

func xpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Award, remove, and inspect experience points",
	}

	cmd.AddCommand(addXPCmd())
	cmd.AddCommand(removeXPCmd())
	cmd.AddCommand(showXPCmd())

	return cmd
}

func addXPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id> <attribute> <score>",
		Short: "Credit score points to an attribute",
		Long: `Credit score points to one of a user's attributes (FISICO, DISCIPLINA,
MENTAL, INTELECTO, PRODUTIVIDADE, FINANCEIRO). Anything else lands in
PRODUTIVIDADE.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXPMutation(cmd, args, false)
		},
	}
}

func removeXPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <user-id> <attribute> <score>",
		Short: "Remove previously credited score points",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXPMutation(cmd, args, true)
		},
	}
}

func runXPMutation(cmd *cobra.Command, args []string, remove bool) error {
	ctx := cmd.Context()

	score, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid score %q: %w", args[2], err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	ledger := xp.NewLedger(store)

	var result *xp.Result
	if remove {
		result, err = ledger.RemoveXP(ctx, args[0], args[1], score)
	} else {
		result, err = ledger.AddXP(ctx, args[0], args[1], score)
	}
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println(cli.WarningStyle.Render("User not found; nothing changed."))
		return nil
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Rank %s — total %.0f XP", result.Rank, result.NewTotal)))
	return nil
}

func showXPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a user's XP breakdown and rank progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.GetUser(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load user: %w", err)
			}
			if user == nil {
				fmt.Println(cli.WarningStyle.Render("User not found."))
				return nil
			}

			standing := rank.For(user.CurrentXP)

			fmt.Println(cli.TitleStyle.Render(user.Name))
			fmt.Printf("  Rank:      %s\n", cli.SuccessStyle.Render(standing.Rank))
			fmt.Printf("  Total XP:  %.0f\n", user.CurrentXP)
			fmt.Printf("  Next rank: %s at %.0f XP\n", standing.NextRankName, standing.NextRankMinXP)
			fmt.Println()

			for _, attr := range model.AllAttributes() {
				value, attrErr := user.AttributeXP(attr)
				if attrErr != nil {
					return attrErr
				}
				fmt.Printf("  %-14s %.0f\n", attr, value)
			}
			return nil
		},
	}
}
