// Command expense-tracker records personal expenses in a local SQLite file,
// compares category spending against advisor thresholds and exports reports.
//
// Run with no arguments for the interactive menu, or see --help for the
// scripted subcommands.
package main

import "expensetracker/internal/view"

func main() {
	view.Execute()
}
