package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	Version      = "dev"
	outputFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hepecoctl",
		Short:         "Operator tools for the Hepeco Digital API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputJSON, "Output format (json, yaml)")

	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(qrCmd())

	return rootCmd
}
