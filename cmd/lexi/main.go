package main

import (
	"fmt"
	"os"

	"github.com/lexihq/lexi/internal/cli"
	"github.com/lexihq/lexi/internal/cli/client"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexi",
		Short: "Lexi CLI - Legal question answering over your documents",
		Long: `Lexi CLI provides commands to query the legal assistant.

Environment variables:
  LEXI_API_TOKEN   API token for authentication (if the server requires one)
  LEXI_API_URL     API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().String("api-token", "", "API token for authentication (overrides env)")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.ChatCmd())
	rootCmd.AddCommand(client.AskCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
