package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atlasdev/atlas/internal/cli"
	"github.com/atlasdev/atlas/internal/model"
	"github.com/atlasdev/atlas/internal/xp"
	"github.com/spf13/cobra"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Inspect and remove stored transactions",
	}

	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func listTxCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns, err := store.ListTransactions(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "ID\tDate\tType\tCategory\tAmount\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 10),
				strings.Repeat("-", 7),
				strings.Repeat("-", 14),
				strings.Repeat("-", 10))

			for _, txn := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\tR$ %.2f\n",
					txn.ID, txn.Date.Format("2006-01-02"), txn.Type, txn.Category, txn.Amount)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum transactions to show (0 for all)")
	return cmd
}

func deleteTxCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction, reversing any XP it awarded",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := store.GetTransaction(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load transaction: %w", err)
			}
			if txn == nil {
				fmt.Println(cli.WarningStyle.Render("Transaction not found."))
				return nil
			}

			if err := store.DeleteTransaction(ctx, txn.ID); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted transaction %s", txn.ID)))

			if userID == "" {
				return nil
			}

			if err := store.LogActivity(ctx, userID, model.ActivityTransactionRemoved,
				fmt.Sprintf("Transação de R$ %.2f em %s removida", txn.Amount, txn.Category)); err != nil {
				return err
			}

			if !xp.IsInvestmentIncome(txn.Type, txn.Category) {
				return nil
			}

			ledger := xp.NewLedger(store)
			result, err := ledger.RemoveXP(ctx, userID, string(model.AttributeFinancial), xp.TransactionXP)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("User %s not found; no XP reversed.", userID)))
				return nil
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("-%.0f FINANCEIRO XP — rank %s, total %.0f",
				xp.TransactionXP, result.Rank, result.NewTotal)))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&userID, "user", "", "user to reverse XP for")
	return cmd
}
