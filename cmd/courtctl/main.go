// Command courtctl is a small operator client for the CourtLedger API
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagAPI  string
	flagJSON bool
)

func main() {
	// optional .env next to the binary, real env wins
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "courtctl",
		Short:         "Operate a CourtLedger deployment from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultAPI := os.Getenv("COURTLEDGER_API")
	if defaultAPI == "" {
		defaultAPI = "http://127.0.0.1:4000/api/v1"
	}
	root.PersistentFlags().StringVar(&flagAPI, "api", defaultAPI, "base URL of the CourtLedger API")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of formatted output")

	root.AddCommand(
		syncCmd(),
		remindersCmd(),
		exportCmd(),
		queryCmd(),
		trackCmd(),
		reportCmd(),
		fetchCaseCmd(),
		recentCmd(),
		transitionsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
