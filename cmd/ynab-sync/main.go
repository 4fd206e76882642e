// ynab-sync reconciles raw bank exports against a YNAB budget: it imports
// CSV rows, infers categories from learned mappings, and pushes transactions
// the budget is missing.
package main

import (
	"os"

	"github.com/emirfredy/ynab-syncher-sub000/cmd/categorize"
	"github.com/emirfredy/ynab-syncher-sub000/cmd/importcmd"
	"github.com/emirfredy/ynab-syncher-sub000/cmd/reconcile"
	"github.com/emirfredy/ynab-syncher-sub000/cmd/root"
	"github.com/emirfredy/ynab-syncher-sub000/cmd/syncmissing"
)

func init() {
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
	root.Cmd.AddCommand(syncmissing.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
