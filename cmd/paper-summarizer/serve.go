// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/agent"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/history"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/summarize"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the single-page summarizer form",
	Long: `Serve starts an HTTP server with the summarizer form at / and a JSON
API under /api. Submissions are serialized: while one request is in
flight, a second submission is rejected with HTTP 409.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("no-history", false, "disable the summary history store")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	var store *history.Store
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		var err error
		store, err = history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var recorder summarize.Recorder
	if store != nil {
		recorder = store
	}
	session := summarize.NewSession(agent.NewClient(cfg.Agent), cfg.Agent.AgentID, recorder)
	handler := web.NewHandler(session, store)
	router := web.NewRouter(handler, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Serving on %s\n", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
