// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/agent"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/history"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <arxiv-url>",
	Short: "Summarize one arXiv paper from the terminal",
	Long: `Summarize validates the given arXiv link, sends the extracted
identifier to the remote summarization agent, and prints the returned
metadata and summary. A successful summary is recorded in the history
store unless --no-history is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().Bool("json", false, "output the settled state as JSON")
	summarizeCmd.Flags().Bool("no-history", false, "do not record the summary")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	var recorder summarize.Recorder
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}

	session := summarize.NewSession(agent.NewClient(cfg.Agent), cfg.Agent.AgentID, recorder)
	state, err := session.Submit(context.Background(), input)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	if state.Phase != summarize.PhaseSucceeded {
		return fmt.Errorf("%s", state.Error)
	}

	md := state.Metadata
	fmt.Println(md.Title)
	fmt.Println(strings.Join(md.Authors, ", "))
	if md.PublishedDate != "" {
		fmt.Println(md.PublishedDate)
	}
	if md.URL != "" {
		fmt.Println(md.URL)
	}
	fmt.Println()
	fmt.Println("Abstract:")
	fmt.Println(md.Abstract)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Println(state.Summary)
	return nil
}
