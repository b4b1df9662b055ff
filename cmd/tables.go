package cmd

import (
	"fmt"
	"io"
	"os"

	"sql-diff/internal/dump"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [dump]",
	Short: "List tables found in a dump",
	Long: `Lists every table encountered via a CREATE TABLE statement, in file
order, duplicates included. Use - (or no argument) to read from
standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "-"
		if len(args) == 1 {
			source = args[0]
		}

		var r io.Reader = os.Stdin
		label := "STDIN"
		if source != "-" {
			f, err := dump.Open(source)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
			label = source
		}

		tables, err := dump.ListTables(r)
		if err != nil {
			return err
		}

		if len(tables) == 0 {
			fmt.Printf("No tables found in %s\n", label)
			return nil
		}

		fmt.Printf("Tables found in dump %s:\n", label)
		for _, t := range tables {
			fmt.Printf("- %s\n", t)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
