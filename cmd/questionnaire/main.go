package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "questionnaire",
	Short: "Fill in the Tina Digital web development questionnaire",
	Long: "Walks through the eleven questions in the terminal and sends the answers\n" +
		"to the send-email endpoint.",
	RunE: runQuestionnaire,
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

var (
	endpointFlag string
	logFileFlag  string
	jsonFlag     bool
)

func init() {
	rootCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "send-email endpoint URL (default from config client.endpoint)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "write logs to this file")
	questionsCmd.Flags().BoolVar(&jsonFlag, "json", false, "print as JSON")
	rootCmd.AddCommand(questionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
