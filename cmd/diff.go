package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"sql-diff/internal/dialect"
	"sql-diff/internal/diff"
	"sql-diff/internal/dump"
	"sql-diff/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sourceDriver string
	targetDriver string
	sourceSchema string
	targetSchema string
)

var diffCmd = &cobra.Command{
	Use:   "diff <source> <target>",
	Short: "Compare the structure of two dumps or live databases",
	Long: `Compares two schemas and reports only structural differences: added,
removed and changed tables, columns and constraints, plus charset and
collation changes. Row data never participates.

Each side is a dump file by default. With --source-driver or
--target-driver set, that side's argument is treated as a DSN and the
schema is introspected from the live server instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		verboseOn := verbose || viper.GetBool("settings.verbose")

		if verboseOn {
			log.Printf("Analyzing %s...", args[0])
		}
		a, err := loadSide(args[0], sourceDriver, sourceSchema)
		if err != nil {
			return err
		}

		if verboseOn {
			log.Printf("Analyzing %s...", args[1])
		}
		b, err := loadSide(args[1], targetDriver, targetSchema)
		if err != nil {
			return err
		}

		if verboseOn {
			log.Println("Comparing structures...")
		}
		report := diff.Compare(a, b)

		out := outputPath
		if out == "" {
			out = viper.GetString("output.path")
		}
		if out != "" {
			if err := os.WriteFile(out, []byte(report+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if verboseOn {
				log.Printf("Report written to %s", out)
			}
			return nil
		}

		fmt.Println(report)
		return nil
	},
}

// loadSide builds a schema from a dump file, or from a live database when
// a driver name is given and the argument is treated as a DSN.
func loadSide(arg, driver, schemaName string) (*schema.Schema, error) {
	if driver == "" {
		return dump.ParseFile(arg)
	}

	db, err := sql.Open(driver, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	d := dialect.GetDialect(driver)
	if schemaName == "" && driver == "mysql" {
		var current sql.NullString
		if err := db.QueryRow("SELECT DATABASE()").Scan(&current); err != nil {
			return nil, fmt.Errorf("failed to get database name: %w", err)
		}
		if !current.Valid || current.String == "" {
			return nil, fmt.Errorf("no database selected in DSN")
		}
		schemaName = current.String
	}

	return schema.Load(db, d, schemaName)
}

func init() {
	RootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVar(&sourceDriver, "source-driver", "", "treat <source> as a DSN for this driver (mysql, postgres, sqlserver, oracle)")
	diffCmd.Flags().StringVar(&targetDriver, "target-driver", "", "treat <target> as a DSN for this driver")
	diffCmd.Flags().StringVar(&sourceSchema, "source-schema", "", "schema name for a live source (defaults per driver)")
	diffCmd.Flags().StringVar(&targetSchema, "target-schema", "", "schema name for a live target (defaults per driver)")
}
