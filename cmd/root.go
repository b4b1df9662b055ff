package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	outputPath string
	verbose    bool
)

var RootCmd = &cobra.Command{
	Use:   "sql-diff",
	Short: "Structural schema tools for MySQL dump files",
	Long: `sql-diff works on mysqldump output without touching a server: it
extracts the structural schema (tables, columns, constraints,
charset/collation) from dump text, compares two schemas, lists tables,
and strips row data for chosen tables. Either side of a diff can also
be a live database reached through a driver DSN.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sql-diff.yaml)")
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write output to a file instead of stdout")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output")

	viper.BindPFlag("output.path", RootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("settings.verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("sql-diff")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Report the config file only in verbose mode; stdout carries reports.
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("settings.verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
