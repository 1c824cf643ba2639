// Command measurements-check probes the upstream data sources the API relays
// and prints one sample row from each, so credentials and connectivity can be
// verified without starting the server.
package main

import (
	"fmt"
	"os"

	"github.com/dayanaadylkhanova/measurements-api/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	config.LoadDotEnv()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "measurements-check",
		Short:         "Check connectivity to the OONI API and M-Lab BigQuery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level")
	root.AddCommand(ooniSubcommand(&logLevel))
	root.AddCommand(mlabSubcommand(&logLevel))
	return root
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
