package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extref",
	Short: "Track external data references of a modeling study",
	Long: `Track the external data files and archived repositories referenced by a
	modeling study. Local files are resolved against a catalog of DOI-archived
	repositories and printed as records a deposition writer can consume.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "extref.yml", "Path to config file")
}
