// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded summaries (list, show, export)",
	Long: `History manages the local record of settled successful summaries.
Use subcommands to list recent entries, show one paper's summary, or
export the full record.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently recorded summaries",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <arxiv-id>",
	Short: "Show the recorded summary for one paper",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the summary history to YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyListCmd.Flags().Int("max-results", 0, "maximum number of entries (0 uses config default)")
	historyListCmd.Flags().Bool("json", false, "output entries as JSON")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func openStore() (*history.Store, error) {
	cfg := loadConfig()
	return history.NewStore(cfg.History)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("max-results")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No summaries recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-60s  %-20s  %s\n", "ID", "Title", "Authors", "Recorded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, e := range entries {
		title := e.Metadata.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		authors := formatAuthors(e.Metadata.Authors)
		fmt.Fprintf(os.Stdout, "%-14s  %-60s  %-20s  %s\n",
			e.ArxivID, title, authors, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	e, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(e.Metadata.Title)
	fmt.Println(strings.Join(e.Metadata.Authors, ", "))
	if e.Metadata.PublishedDate != "" {
		fmt.Println(e.Metadata.PublishedDate)
	}
	fmt.Println(e.Metadata.URL)
	fmt.Println()
	fmt.Println(e.Summary)
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "":
		return store.ExportYAML(context.Background(), os.Stdout)
	case "json":
		return store.ExportJSON(context.Background(), os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
