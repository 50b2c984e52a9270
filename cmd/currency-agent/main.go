// Command currency-agent runs the currency conversion agent, either as an
// A2A server or as an interactive terminal chat.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "currency-agent",
	Short: "AI-powered currency conversion agent",
	Long: `currency-agent answers currency questions with a language model that
calls conversion tools. It can serve remote callers over the A2A protocol
or chat interactively on the terminal.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		// Missing .env is fine, the environment may already be set.
		_ = godotenv.Load()
	},
}

func main() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
