// Package cli implements the lowerthird command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/datadash/lowerthird/internal/config"
	"github.com/datadash/lowerthird/internal/engine"
	"github.com/datadash/lowerthird/internal/palette"
	"github.com/datadash/lowerthird/internal/server"
	"github.com/datadash/lowerthird/internal/system"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lowerthird",
		Short:        "Lowerthird renders animated title-card videos",
		Long:         `Lowerthird renders broadcast-style animated title cards (logo, title, subtitle on a branded panel) to MP4, either as a one-shot CLI render or as an HTTP service.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())

	return root
}

func (c *CLI) newEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	system.InitResourceLimits(c.Logger)
	eng, err := engine.New(cfg, c.Logger)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := c.newEngine()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			return c.serve(cmd.Context(), cfg.ListenAddr, server.New(eng, c.Logger))
		},
	}

	cmd.Flags().StringVarP(&addr, "listen", "l", "", "bind address (default from LISTEN_ADDR or :5000)")
	return cmd
}

func (c *CLI) serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (c *CLI) renderCommand() *cobra.Command {
	req := engine.Request{
		MainTitle:  "DataDash",
		Subtitle:   "Fortinet Community Insights",
		OutputName: "lowerthird",
		Style:      palette.DefaultStyle,
		Duration:   4.0,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single clip and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := c.newEngine()
			if err != nil {
				return err
			}
			out, err := eng.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.MainTitle, "title", "t", req.MainTitle, "main title text")
	cmd.Flags().StringVarP(&req.Subtitle, "subtitle", "s", req.Subtitle, "subtitle text")
	cmd.Flags().StringVarP(&req.OutputName, "output", "o", req.OutputName, "output file stem")
	cmd.Flags().StringVar(&req.Style, "style", req.Style, "color style (see 'styles')")
	cmd.Flags().StringVar(&req.BadgeURL, "badge-url", "", "optional URL rendered as a QR badge")
	cmd.Flags().Float64VarP(&req.Duration, "duration", "d", req.Duration, "clip duration in seconds")

	return cmd
}

func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List available color styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range palette.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
