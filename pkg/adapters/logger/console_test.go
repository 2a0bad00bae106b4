package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/watermark/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &out, &errOut, false)

	log.Debug("hidden %d", 1)
	log.Info("Opened %s", "photo.png")
	log.Warn("careful")
	log.Error("broken")

	if strings.Contains(out.String(), "hidden") {
		t.Error("expected debug message to be filtered")
	}
	if !strings.Contains(out.String(), "Opened photo.png") {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "careful") || !strings.Contains(errOut.String(), "broken") {
		t.Errorf("expected warn and error on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &out, &errOut, false)

	log.Error("nothing")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Error("expected no output at quiet level")
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &out, false)

	log.WithComponent("session").Info("ready")
	log.Info("plain")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "[session] ready" {
		t.Errorf("unexpected component line %q", lines[0])
	}
	if lines[1] != "plain" {
		t.Errorf("expected parent logger to stay unprefixed, got %q", lines[1])
	}
}

func TestConsoleLogger_Color(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut, true)

	log.Warn("colored")

	if !strings.HasPrefix(errOut.String(), colorYellow) {
		t.Errorf("expected yellow warning, got %q", errOut.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("ignored")
	if log.WithComponent("x") != ports.Logger(log) {
		t.Error("expected WithComponent to return the same logger")
	}
}
