// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-summarizer CLI: a
// web form and command-line frontend over a remote arXiv
// summarization agent.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/secrets"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/summarize"
	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paper-summarizer CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-summarizer",
	Short: "Summarize arXiv papers through a remote AI agent",
	Long: `paper-summarizer validates arXiv paper links, forwards the extracted
identifier to a remote summarization agent, and renders the returned
title, authors, abstract, and AI-generated summary.

Run "serve" for the single-page web form, "summarize" for a one-shot
summary from the terminal, "lookup" for raw arXiv metadata without the
agent, and "history" to browse previously recorded summaries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-summarizer.yaml or ~/.config/paper-summarizer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-summarizer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-summarizer"))
		}
	}

	viper.SetEnvPrefix("PAPER_SUMMARIZER")
	viper.AutomaticEnv()

	viper.SetDefault("agent.agent_id", summarize.DefaultAgentID)
	viper.SetDefault("agent.user_agent", "paper-summarizer/"+version)
	viper.SetDefault("lookup.timeout", 15*time.Second)
	viper.SetDefault("lookup.user_agent", "paper-summarizer/"+version)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("history.path", filepath.Join("history", "summaries.db"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the typed configuration from viper and the
// secrets directory. The API key resolves in order: config file or
// environment, then .secrets/lyzr-api-key.
func loadConfig() types.Config {
	cfg := types.Config{
		Agent: types.AgentConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("agent.timeout"),
				UserAgent: viper.GetString("agent.user_agent"),
			},
			Endpoint: viper.GetString("agent.endpoint"),
			AgentID:  viper.GetString("agent.agent_id"),
			APIKey:   viper.GetString("agent.api_key"),
			UserID:   viper.GetString("agent.user_id"),
		},
		Lookup: types.LookupConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("lookup.timeout"),
				UserAgent: viper.GetString("lookup.user_agent"),
			},
			MaxRetries: viper.GetInt("lookup.max_retries"),
		},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			ReadTimeout:    viper.GetDuration("server.read_timeout"),
			WriteTimeout:   viper.GetDuration("server.write_timeout"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxResults: viper.GetInt("history.max_results"),
		},
	}
	if cfg.Agent.APIKey == "" {
		cfg.Agent.APIKey = loadedSecrets["lyzr-api-key"]
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
