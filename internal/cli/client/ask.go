package client

import (
	"strings"

	"github.com/spf13/cobra"
)

// AskCmd returns the one-shot query command.
func AskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the legal assistant a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	response, err := apiClient.Query(strings.Join(args, " "))
	if err != nil {
		return err
	}

	printRendered(response)
	return nil
}
