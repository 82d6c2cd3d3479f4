package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinadigital/webquest/internal/client"
	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/questionnaire"
	"github.com/tinadigital/webquest/internal/tui"
)

func runQuestionnaire(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	endpoint := cfg.Client.Endpoint
	if endpointFlag != "" {
		endpoint = endpointFlag
	}

	// stdout belongs to the terminal UI
	log := logger.Nop()
	if logFileFlag != "" {
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log = logger.NewWithWriter(cfg.Log.Level, cfg.Log.Format, f)
	}
	log.Info().Str("endpoint", endpoint).Msg("starting questionnaire")

	c := client.New(client.Config{Endpoint: endpoint})
	model := tui.New(questionnaire.Catalog(), c, cfg.Client.Timeout, log)

	if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("questionnaire: %w", err)
	}
	return nil
}

func runQuestions(cmd *cobra.Command, args []string) error {
	questions := questionnaire.Catalog()
	out := cmd.OutOrStdout()

	if jsonFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	}

	required := make(map[string]bool, len(questionnaire.RequiredFields))
	for _, id := range questionnaire.RequiredFields {
		required[id] = true
	}

	for i, q := range questions {
		mark := ""
		if required[q.ID] {
			mark = " *"
		}
		fmt.Fprintf(out, "%2d. [%s] %s%s\n", i+1, q.Kind, q.Prompt, mark)
		for _, o := range q.Options {
			fmt.Fprintf(out, "      - %s: %s\n", o.Value, o.Label)
		}
	}
	fmt.Fprintln(out, "\n* obligatorio")
	return nil
}
