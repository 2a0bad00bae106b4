package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/watermark/pkg/adapters/filedisplay"
	"github.com/user/watermark/pkg/adapters/nulldisplay"
	"github.com/user/watermark/pkg/adapters/promptdialog"
	"github.com/user/watermark/pkg/baseimage"
	"github.com/user/watermark/pkg/ports"
	"github.com/user/watermark/pkg/session"
	"github.com/user/watermark/pkg/style"
)

const consoleHelp = `Commands:
  open [path]                 open an image (asks when no path)
  text [words]                set the watermark text
  size <n>                    font size (10, 14, ... 198)
  color <name>                white, black, blue, yellow, green, red, purple, orange, brown
  opacity up|down             change opacity by 5
  rotate left|right           rotate by 5 degrees
  move up|down|left|right     move by 10 pixels
  export [path]               save at full resolution (asks when no path)
  show                        redraw the preview
  quit                        leave`

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: l10n.T("Edit a watermark interactively or from a script"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "script",
				Aliases: []string{"s"},
				Usage:   l10n.T("Read commands from a file instead of the terminal"),
			},
			&cli.StringFlag{
				Name:    "preview-dir",
				Aliases: []string{"p"},
				Usage:   l10n.T("Directory the preview PNG is written to"),
			},
			&cli.BoolFlag{
				Name:  "history",
				Usage: l10n.T("Keep a numbered copy of every preview"),
			},
		},
		Action: runSession,
	}
}

func runSession(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	in := c.App.Reader
	interactive := true
	if path := c.String("script"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cli.Exit(l10n.F("Failed to open script: %s", err), 1)
		}
		defer f.Close()
		in = f
		interactive = false
	}
	reader := bufio.NewReader(in)

	previewDir := e.cfg.PreviewDir
	if c.IsSet("preview-dir") {
		previewDir = c.String("preview-dir")
	}
	display := filedisplay.New(previewDir, e.fs, e.renderer, e.log)
	if c.Bool("history") || e.cfg.PreviewHistory {
		display.WithHistory()
	}

	sess := session.New(
		e.cfg.ToSessionConfig(),
		e.renderer,
		e.fs,
		promptdialog.New(reader, c.App.Writer),
		display,
		e.log,
	)

	e.log.Info("Session started (font: %s)", e.fonts.Name())
	if interactive && isTerminal(c.App.ErrWriter) {
		fmt.Fprintln(c.App.Writer, consoleHelp)
	}

	err = sess.Run(c.Context, reader)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func applyCommand() *cli.Command {
	defaults := style.Default()
	return &cli.Command{
		Name:  "apply",
		Usage: l10n.T("Watermark one image and export it"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    l10n.T("Image to watermark"),
				Category: l10n.T("Files"),
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    l10n.T("Export path; the extension selects the format"),
				Category: l10n.T("Files"),
			},
			&cli.StringFlag{
				Name:     "preview",
				Usage:    l10n.T("Also write the 640px preview PNG to this path"),
				Category: l10n.T("Files"),
			},
			&cli.StringFlag{
				Name:     "text",
				Aliases:  []string{"t"},
				Usage:    l10n.T("Watermark text"),
				Category: l10n.T("Style"),
			},
			&cli.IntFlag{
				Name:     "size",
				Value:    defaults.FontSize,
				Usage:    l10n.T("Font size in preview pixels"),
				Category: l10n.T("Style"),
			},
			&cli.StringFlag{
				Name:     "color",
				Value:    style.DefaultColor,
				Usage:    l10n.T("Text color name"),
				Category: l10n.T("Style"),
			},
			&cli.IntFlag{
				Name:     "opacity",
				Value:    defaults.Opacity,
				Usage:    l10n.T("Opacity (0-255)"),
				Category: l10n.T("Style"),
			},
			&cli.IntFlag{
				Name:     "rotation",
				Usage:    l10n.T("Clockwise rotation in degrees"),
				Category: l10n.T("Style"),
			},
			&cli.IntFlag{
				Name:     "x",
				Value:    defaults.Anchor.X,
				Usage:    l10n.T("Text left edge in preview pixels"),
				Category: l10n.T("Style"),
			},
			&cli.IntFlag{
				Name:     "y",
				Value:    defaults.Anchor.Y,
				Usage:    l10n.T("Text top edge in preview pixels"),
				Category: l10n.T("Style"),
			},
		},
		Action: runApply,
	}
}

func runApply(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}

	sess := session.New(
		e.cfg.ToSessionConfig(),
		e.renderer,
		e.fs,
		promptdialog.New(bufio.NewReader(c.App.Reader), c.App.Writer),
		nulldisplay.New(),
		e.log,
	)

	if err := sess.Open(c.String("input")); err != nil {
		var invalid *baseimage.InvalidImageError
		if errors.As(err, &invalid) {
			return cli.Exit(l10n.F("Invalid image: %s", invalid.Path), 1)
		}
		return err
	}

	st, err := styleFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := sess.SetStyle(st); err != nil {
		return err
	}

	if path := c.String("preview"); path != "" {
		data, err := e.renderer.EncodeImage(sess.Preview(), ports.FormatPNG, 0)
		if err != nil {
			return fmt.Errorf("encode preview: %w", err)
		}
		if err := e.fs.WriteFile(path, data); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		e.log.Info("Preview written to %s", path)
	}

	if _, err := sess.Export(c.String("output")); err != nil {
		return cli.Exit(l10n.F("Export failed: %s", err), 1)
	}
	return nil
}

func styleFromFlags(c *cli.Context) (style.Style, error) {
	st := style.Default()
	st.SetText(c.String("text"))
	if err := st.SetFontSize(c.Int("size")); err != nil {
		return st, err
	}
	if err := st.SetColor(c.String("color")); err != nil {
		return st, err
	}
	st.SetOpacity(c.Int("opacity"))
	st.SetRotation(c.Int("rotation"))
	st.SetAnchor(c.Int("x"), c.Int("y"))
	return st, nil
}

func colorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "colors",
		Usage: l10n.T("List the color names and font sizes"),
		Action: func(c *cli.Context) error {
			printChoices(c.App.Writer)
			return nil
		},
	}
}

func printChoices(w io.Writer) {
	fmt.Fprintln(w, l10n.T("Colors:"))
	for _, name := range style.ColorNames {
		rgb, _ := style.LookupColor(name)
		fmt.Fprintf(w, "  %-8s #%02x%02x%02x\n", name, rgb.R, rgb.G, rgb.B)
	}

	sizes := style.FontSizeOptions()
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	fmt.Fprintln(w, l10n.F("Font sizes: %s", strings.Join(parts, " ")))
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("watermark version %s", version))
			return nil
		},
	}
}
