package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/atlasdev/atlas/internal/cli"
	"github.com/atlasdev/atlas/internal/model"
	"github.com/atlasdev/atlas/internal/receipt"
	"github.com/atlasdev/atlas/internal/service"
	"github.com/atlasdev/atlas/internal/xp"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var (
		dirPath    string
		saveUserID string
		txType     string
		amountFlag float64
		dateFlag   string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse receipt text into a structured transaction",
		Long: `Run the extraction pipeline over receipt text (from a file or stdin) and
print the inferred amount, date, and merchant classification. With --save the
result is stored as a transaction; qualifying investment income awards
FINANCEIRO XP.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if dirPath != "" {
				return parseDirectory(dirPath)
			}

			text, err := readInput(args)
			if err != nil {
				return err
			}

			parsed := receipt.Parse(text)
			printParsed(parsed)

			if !save {
				return nil
			}
			return saveParsed(ctx, parsed, saveUserID, txType, amountFlag, dateFlag)
		},
	}

	cmd.Flags().StringVar(&dirPath, "dir", "", "batch-parse every .txt file in a directory")
	cmd.Flags().BoolVar(&save, "save", false, "persist the parsed result as a transaction")
	cmd.Flags().StringVar(&saveUserID, "user", "", "user to credit XP to when saving")
	cmd.Flags().StringVar(&txType, "type", model.TransactionExpense, "transaction type (entrada, saida)")
	cmd.Flags().Float64Var(&amountFlag, "amount", 0, "amount to use when extraction found none")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD) to use when extraction found none")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printParsed(parsed model.ParsedReceipt) {
	fmt.Println(cli.TitleStyle.Render("Parsed receipt"))

	if parsed.Amount != nil {
		fmt.Printf("  Amount:        %s\n", cli.SuccessStyle.Render(fmt.Sprintf("R$ %.2f", *parsed.Amount)))
	} else {
		fmt.Printf("  Amount:        %s\n", cli.WarningStyle.Render("not found — confirm manually"))
	}

	if parsed.Date != nil {
		fmt.Printf("  Date:          %s\n", cli.SuccessStyle.Render(parsed.Date.Format("2006-01-02")))
	} else {
		fmt.Printf("  Date:          %s\n", cli.WarningStyle.Render("not found — confirm manually"))
	}

	if parsed.Establishment != nil {
		fmt.Printf("  Establishment: %s\n", *parsed.Establishment)
	} else {
		fmt.Printf("  Establishment: %s\n", cli.SubtleStyle.Render("(unknown)"))
	}

	fmt.Printf("  Category:      %s / %s (%s)\n", parsed.Category, parsed.Subcategory, parsed.CategoryType)
}

// parseDirectory batch-parses every .txt file under dir and prints a summary
// of how many receipts yielded a complete result.
func parseDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Println(cli.InfoStyle.Render("No .txt files found."))
		return nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing receipts..."),
	)

	var complete, missingAmount, missingDate, unclassified int
	for _, file := range files {
		data, readErr := os.ReadFile(file)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", file, readErr)
		}

		parsed := receipt.Parse(string(data))
		switch {
		case parsed.Amount == nil:
			missingAmount++
		case parsed.Date == nil:
			missingDate++
		case parsed.Establishment == nil:
			unclassified++
		default:
			complete++
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	fmt.Println(cli.TitleStyle.Render("Batch summary"))
	fmt.Printf("  Files parsed:    %d\n", len(files))
	fmt.Printf("  Complete:        %s\n", cli.SuccessStyle.Render(fmt.Sprintf("%d", complete)))
	fmt.Printf("  Missing amount:  %d\n", missingAmount)
	fmt.Printf("  Missing date:    %d\n", missingDate)
	fmt.Printf("  Unclassified:    %d\n", unclassified)
	return nil
}

// saveParsed confirms a parsed receipt into a stored transaction. Absent
// amount/date must be supplied by the caller; they are never defaulted.
func saveParsed(ctx context.Context, parsed model.ParsedReceipt, userID, txType string, amountFlag float64, dateFlag string) error {
	amount := amountFlag
	if parsed.Amount != nil {
		amount = *parsed.Amount
	}
	if amount <= 0 {
		return fmt.Errorf("no amount extracted; supply one with --amount")
	}

	var date time.Time
	switch {
	case parsed.Date != nil:
		date = *parsed.Date
	case dateFlag != "":
		var err error
		date, err = time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	default:
		return fmt.Errorf("no date extracted; supply one with --date")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	txn := &model.Transaction{
		ID:           uuid.New().String(),
		Date:         date,
		Type:         txType,
		Category:     parsed.Category,
		Subcategory:  parsed.Subcategory,
		CategoryType: parsed.CategoryType,
		Amount:       amount,
	}
	if parsed.Establishment != nil {
		txn.Establishment = *parsed.Establishment
	}
	if parsed.Description != nil {
		txn.Description = *parsed.Description
	}
	txn.Hash = txn.GenerateHash()

	saved, err := store.SaveTransaction(ctx, txn)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Println(cli.WarningStyle.Render("Duplicate receipt — transaction already recorded."))
		return nil
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved transaction %s", txn.ID)))

	if userID == "" {
		return nil
	}

	direction := "Saída"
	if txn.Type == model.TransactionIncome {
		direction = "Entrada"
	}
	if err := store.LogActivity(ctx, userID, model.ActivityTransactionAdded,
		fmt.Sprintf("%s de R$ %.2f em %s", direction, txn.Amount, txn.Category)); err != nil {
		return err
	}

	return awardTransactionXP(ctx, store, userID, txn)
}

// awardTransactionXP applies the investment-income rule for a newly saved
// transaction.
func awardTransactionXP(ctx context.Context, store service.Storage, userID string, txn *model.Transaction) error {
	if !xp.IsInvestmentIncome(txn.Type, txn.Category) {
		return nil
	}

	ledger := xp.NewLedger(store)
	result, err := ledger.AddXP(ctx, userID, string(model.AttributeFinancial), xp.TransactionXP)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("User %s not found; no XP awarded.", userID)))
		return nil
	}

	fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("+%.0f FINANCEIRO XP — rank %s, total %.0f",
		xp.TransactionXP, result.Rank, result.NewTotal)))
	return nil
}
