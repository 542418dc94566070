package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atlasdev/atlas/internal/cli"
	"github.com/atlasdev/atlas/internal/rank"
	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(addUserCmd())
	cmd.AddCommand(listUsersCmd())
	cmd.AddCommand(activityCmd())

	return cmd
}

func addUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.CreateUser(ctx, args[0], rank.Initial())
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created user %s (%s) — rank %s", user.Name, user.ID, user.Rank)))
			return nil
		},
	}
}

func activityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity <user-id>",
		Short: "Show a user's activity feed, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.ListActivity(ctx, args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to list activity: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No activity yet."))
				return nil
			}

			for _, entry := range entries {
				fmt.Printf("%s  %-20s %s\n",
					cli.SubtleStyle.Render(entry.CreatedAt.Format("2006-01-02 15:04")),
					entry.Type, entry.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show (0 for all)")
	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			users, err := store.ListUsers(ctx)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if len(users) == 0 {
				fmt.Println(cli.InfoStyle.Render("No users found. Use 'atlas users add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "ID\tName\tRank\tTotal XP\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 16),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8))

			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\n", user.ID, user.Name, user.Rank, user.CurrentXP)
			}
			return nil
		},
	}
}
