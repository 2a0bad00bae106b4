// Package main provides the CLI entry point for watermark.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/user/watermark/pkg/adapters/ggrenderer"
	"github.com/user/watermark/pkg/adapters/logger"
	"github.com/user/watermark/pkg/adapters/osfilesystem"
	"github.com/user/watermark/pkg/config"
	"github.com/user/watermark/pkg/fonts"
	"github.com/user/watermark/pkg/ports"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		// A second signal terminates the process the default way.
		signal.Stop(sigCh)
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "watermark",
		Usage:       l10n.T("Overlay text watermarks on images"),
		Description: l10n.T("watermark previews a rotated, semi-transparent text overlay on a 640px preview and exports it at full resolution."),
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML file with tool settings"),
				Category: l10n.T("Settings"),
			},
			&cli.StringFlag{
				Name:     "font",
				Aliases:  []string{"f"},
				Usage:    l10n.T("TrueType font file (default: built-in Go Bold)"),
				Category: l10n.T("Settings"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Commands: []*cli.Command{
			sessionCommand(),
			applyCommand(),
			colorsCommand(),
			versionCommand(),
		},
	}
}

// env holds the collaborators shared by the commands.
type env struct {
	cfg      config.Config
	log      ports.Logger
	fonts    *fonts.Library
	fs       *osfilesystem.FileSystem
	renderer *ggrenderer.Renderer
}

// setup loads the config file, applies flag overrides and builds the
// logger and font. Any failure here aborts the command.
func setup(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, cli.Exit(l10n.F("Failed to load config: %s", err), 1)
		}
		cfg = loaded
	}
	if c.IsSet("font") {
		cfg.FontPath = c.String("font")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = ports.LevelQuiet.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}

	log := newLogger(c, ports.ParseLogLevel(cfg.LogLevel))

	lib, err := fonts.Load(cfg.FontPath)
	if err != nil {
		return nil, cli.Exit(l10n.F("Failed to load font: %s", err), 1)
	}

	return &env{
		cfg:      cfg,
		log:      log,
		fonts:    lib,
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(lib),
	}, nil
}

func newLogger(c *cli.Context, level ports.LogLevel) ports.Logger {
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsoleWriter(level, c.App.Writer, c.App.ErrWriter, isTerminal(c.App.ErrWriter))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
