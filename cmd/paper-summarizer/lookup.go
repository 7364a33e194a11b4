// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/arxiv"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <arxiv-url-or-id>",
	Short: "Fetch paper metadata directly from arXiv",
	Long: `Lookup fetches title, authors, abstract, and publication date for one
paper from the arXiv Atom API. No summarization agent is involved.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output metadata as JSON")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(args[0])

	id := input
	if arxiv.Validate(input) {
		id = arxiv.ExtractID(input)
	}

	cfg := loadConfig()
	md, err := arxiv.Lookup(context.Background(), id, cfg.Lookup)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(md)
	}

	fmt.Println(md.Title)
	fmt.Println(strings.Join(md.Authors, ", "))
	if md.PublishedDate != "" {
		fmt.Println(md.PublishedDate)
	}
	fmt.Println(md.URL)
	fmt.Println()
	fmt.Println(md.Abstract)
	return nil
}
