package client

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// ChatCmd returns the interactive chat command.
func ChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session with the legal assistant",
		Long:  "Start an interactive session. Type a question and press enter; 'quit' exits and 'clear' clears the screen.",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	apiClient, err := NewAPIClientWithCmd(cmd)
	if err != nil {
		return err
	}

	fmt.Println("Legal Assistant")
	fmt.Println("Type 'quit' to exit, 'clear' to clear the screen.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "quit"):
			return nil
		case strings.EqualFold(input, "clear"):
			fmt.Print("\033[H\033[2J")
			continue
		}

		response, err := apiClient.Query(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		printRendered(response)
	}

	return scanner.Err()
}

// printRendered renders the answer as markdown, falling back to plain text.
func printRendered(response string) {
	rendered, err := glamour.Render(response, "dark")
	if err != nil {
		fmt.Println(response)
		return
	}
	fmt.Print(rendered)
}
