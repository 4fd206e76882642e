// Package importcmd handles the import of raw bank transaction exports
package importcmd

import (
	"github.com/spf13/cobra"

	"github.com/emirfredy/ynab-syncher-sub000/cmd/root"
	"github.com/emirfredy/ynab-syncher-sub000/internal/common"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a raw bank transaction CSV export",
	Long: `Import parses a raw bank CSV export into normalized transactions,
rejecting malformed rows with line-numbered errors and skipping exact
duplicates within the batch.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Input, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&root.Account, "account", "a", "", "Bank account id the rows belong to")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("account")
}

func importFunc(cmd *cobra.Command, args []string) {
	rows, err := common.ReadRawRows(root.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	c := root.Wire()
	result, err := c.Service().ImportTransactions(root.Account, rows)
	if err != nil {
		root.Log.Fatalf("Import rejected: %v", err)
	}

	for _, message := range result.Errors {
		root.Log.Warn(message)
	}
	root.Log.Infof("Import %s: %d processed, %d imported, %d duplicates skipped, %d errored",
		result.Status, result.TotalProcessed, result.Imported, result.DuplicatesSkipped, result.Errored)
}
