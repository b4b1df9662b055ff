package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"sql-diff/internal/dump"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var stripTables []string

var stripCmd = &cobra.Command{
	Use:   "strip [dump]",
	Short: "Copy a dump with row data removed for chosen tables",
	Long: `Produces a copy of the dump where INSERT lines for the requested tables
are omitted. Every other line, including those tables' CREATE TABLE
statements, is preserved verbatim.

Use - (or no argument) to read from standard input. Without -o, file
input writes to <input>_<tables>_no_data.sql and stdin input writes to
standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Table selection: flag > config.
		tables := stripTables
		if len(tables) == 0 {
			tables = viper.GetStringSlice("settings.tables")
		}
		if len(tables) == 0 {
			return fmt.Errorf("no tables given: use --table or settings.tables in the config")
		}

		source := "-"
		if len(args) == 1 {
			source = args[0]
		}
		fromFile := source != "-"

		var content []byte
		if fromFile {
			f, err := dump.Open(source)
			if err != nil {
				return err
			}
			var rerr error
			content, rerr = io.ReadAll(f)
			f.Close()
			if rerr != nil {
				return fmt.Errorf("failed to read %s: %w", source, rerr)
			}
		} else {
			var rerr error
			content, rerr = io.ReadAll(os.Stdin)
			if rerr != nil {
				return fmt.Errorf("failed to read stdin: %w", rerr)
			}
		}

		// Output selection: flag > config > derived name for file input.
		out := outputPath
		if out == "" {
			out = viper.GetString("output.path")
		}
		if out == "" && fromFile {
			out = defaultStripName(source, tables)
		}
		toFile := out != ""

		var w io.Writer = os.Stdout
		if toFile {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		var progress func()
		if toFile && fromFile {
			total := bytes.Count(content, []byte{'\n'}) + 1
			uiprogress.Start()
			bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Filtering: "
			})
			progress = func() { bar.Incr() }
		}

		res, err := dump.StripData(bytes.NewReader(content), w, tables, progress)
		if progress != nil {
			uiprogress.Stop()
		}
		if err != nil {
			return err
		}

		// Missing tables are a warning, never a failure.
		if len(res.NotFound) == 1 {
			fmt.Fprintf(os.Stderr, "Warning: table '%s' was not found in the dump.\n", res.NotFound[0])
		} else if len(res.NotFound) > 1 {
			fmt.Fprintf(os.Stderr, "Warning: the following tables were not found in the dump: %s\n",
				strings.Join(res.NotFound, ", "))
		}

		if toFile {
			fmt.Printf("Filtered dump written to '%s'.\n", out)
			if len(res.Found) == 1 {
				fmt.Printf("All tables were kept; data for table '%s' was removed.\n", res.Found[0])
			} else if len(res.Found) > 1 {
				fmt.Printf("All tables were kept; data for the following tables was removed: %s\n",
					strings.Join(res.Found, ", "))
			}
		}
		return nil
	},
}

// defaultStripName derives the output path for file input when no -o is
// given: input name minus extension, the targeted tables, and a _no_data
// suffix. Beyond three tables the list collapses to "<first>_and_N_others".
func defaultStripName(source string, tables []string) string {
	base := source
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	suffix := strings.Join(tables, "_")
	if len(tables) > 3 {
		suffix = fmt.Sprintf("%s_and_%d_others", tables[0], len(tables)-1)
	}
	return fmt.Sprintf("%s_%s_no_data.sql", base, suffix)
}

func init() {
	RootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringSliceVarP(&stripTables, "table", "t", []string{}, "table whose data should be removed (repeatable)")
}
