// Package categorize handles transaction categorization commands
package categorize

import (
	"github.com/spf13/cobra"

	"github.com/emirfredy/ynab-syncher-sub000/cmd/root"
	"github.com/emirfredy/ynab-syncher-sub000/internal/common"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Infer spending categories for imported transactions",
	Long: `Categorize imports a raw bank CSV export and infers a spending
category for every transaction, using learned mappings first and a
similarity match against the budget's categories as a fallback.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&root.Account, "account", "a", "", "Bank account id the rows belong to")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("account")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	rows, err := common.ReadRawRows(root.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	c := root.Wire()
	imported, err := c.Service().ImportTransactions(root.Account, rows)
	if err != nil {
		root.Log.Fatalf("Import rejected: %v", err)
	}

	ids := make([]string, 0, len(imported.Transactions))
	for _, tx := range imported.Transactions {
		ids = append(ids, tx.ID)
	}

	results, err := c.Service().CategorizeTransactions(ids)
	if err != nil {
		root.Log.Fatalf("Error categorizing transactions: %v", err)
	}

	for _, result := range results {
		root.Log.Infof("%s -> %s (confidence %.2f): %s",
			result.TransactionID, result.Category, result.Confidence, result.Reasoning)
	}
}
