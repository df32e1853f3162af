// Command formview presents forms built with go-formview in a terminal, as
// line prompts, or as HTML.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formview/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// globals are the flags shared by every subcommand. They start from the
// environment.
type globals struct {
	cfg    config.Config
	mode   string
	output string
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	env, envErr := config.Load()
	if envErr == nil {
		g.cfg = env
	}

	root := &cobra.Command{
		Use:           "formview",
		Short:         "Render declarative forms",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return setupLogging(g.cfg.Debug)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.mode, "mode", modeTerminal, fmt.Sprintf("presentation mode (%s, %s, %s)", modeTerminal, modePrompt, modeHTML))
	flags.StringVar(&g.output, "output", "", "html output file (stdout if empty)")
	flags.StringVar(&g.cfg.LayoutFile, "layout", g.cfg.LayoutFile, "layout config file (JSON or YAML)")
	flags.IntVar(&g.cfg.Width, "width", g.cfg.Width, "initial terminal width")
	flags.BoolVar(&g.cfg.Debug, "debug", g.cfg.Debug, "development logging")
	flags.BoolVar(&g.cfg.Strict, "strict", g.cfg.Strict, "panic on rows naming unknown elements")
	flags.StringVar(&g.cfg.ThemeBrand, "brand", g.cfg.ThemeBrand, "brand colour")
	flags.StringVar(&g.cfg.Addr, "addr", g.cfg.Addr, "listen address for --serve")

	root.AddCommand(
		newDemoCmd(g),
		newOpenAPICmd(g),
		newLayoutCmd(g),
	)
	return root
}
