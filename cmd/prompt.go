package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/prompt"
)

func init() {
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Prints the system prompt for LLM-driven composition",
	Long:  `Prints the system prompt for LLM-driven composition`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(prompt.SystemPrompt())
	},
}
