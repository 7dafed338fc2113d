package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/seqplan/seqplan/internal/config"
	"github.com/seqplan/seqplan/internal/web"
	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the web viewer",
	Long:  `Starts a local read-only web server with a plan list, plan detail views, and a live activity feed.`,
	RunE:  runWeb,
}

var webPort int

func init() {
	webCmd.Flags().IntVar(&webPort, "port", 0, "port to listen on (default from config)")
	rootCmd.AddCommand(webCmd)
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	port := webPort
	if port == 0 {
		port = cfg.Web.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg, port)
	return srv.ListenAndServe(ctx)
}
