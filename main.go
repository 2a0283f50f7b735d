package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nicodeveloper97/portfolio/internal/config"
	"github.com/nicodeveloper97/portfolio/internal/content"
	"github.com/nicodeveloper97/portfolio/internal/session"
	"github.com/nicodeveloper97/portfolio/internal/view"
	"github.com/nicodeveloper97/portfolio/internal/visits"
	"github.com/nicodeveloper97/portfolio/internal/web"
)

// Version is set at build time with -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve the portfolio site",
	Long: `Serves the portfolio page. Every page load mounts its own session with
a theme toggle and an auto-advancing project carousel.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check <content.toml>",
	Short: "Validate a content file without serving it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := content.LoadFile(args[0])
		if err != nil {
			return err
		}
		if _, err := content.NewMarkdown().RenderAll(c); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d projects, %d services, %d contacts)\n",
			args[0], len(c.Projects), len(c.Experience.Services), len(c.Contacts))
		return nil
	},
}

func init() {
	rootCmd.Flags().String("port", "", "port to listen on (overrides PORT)")
	rootCmd.Flags().String("content", "", "TOML content file (overrides CONTENT_FILE)")
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if file, _ := cmd.Flags().GetString("content"); file != "" {
		cfg.Content.File = file
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gin.SetMode(cfg.Server.GinMode)

	c := content.Default()
	if cfg.Content.File != "" {
		if c, err = content.LoadFile(cfg.Content.File); err != nil {
			return err
		}
		log.Printf("Loaded content from %s", cfg.Content.File)
	}
	site, err := view.NewSite(c, content.NewMarkdown())
	if err != nil {
		return fmt.Errorf("rendering content: %w", err)
	}

	sessions := session.NewManager(len(c.Projects), session.Config{
		Interval:    cfg.Carousel.Interval,
		IdleTTL:     cfg.Session.IdleTTL,
		Rate:        cfg.Session.Rate,
		Burst:       cfg.Session.Burst,
		MaxSessions: cfg.Session.MaxSessions,
	})
	defer sessions.Close()
	if cfg.Session.IdleTTL > 0 {
		if err := sessions.StartReaper(cfg.Session.ReapEvery); err != nil {
			return err
		}
	}

	var store *visits.Store
	if cfg.Visits.Enabled() {
		if store, err = visits.Open(cfg.Visits.DB); err != nil {
			return fmt.Errorf("opening visits database: %w", err)
		}
		defer store.Close()

		cleaner, err := visits.NewCleaner(store, cfg.Visits.CleanupSpec, cfg.Visits.Retention)
		if err != nil {
			return err
		}
		cleaner.Run()
		cleaner.Start()
		defer cleaner.Stop()
		log.Printf("Visitor tracking enabled (%s)", cfg.Visits.DB)
	} else {
		log.Printf("Visitor tracking disabled")
	}

	srv, err := web.New(web.Options{
		Site:          site,
		Sessions:      sessions,
		Visits:        store,
		AdminToken:    cfg.Admin.Token,
		ImagesDir:     cfg.Server.ImagesDir,
		Version:       Version,
		RetentionDays: int(cfg.Visits.Retention / (24 * time.Hour)),
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("portfolio %s listening on :%s", Version, cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
