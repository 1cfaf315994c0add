// Package logging builds the structured logger shared by the server.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/config"
)

// New returns a slog.Logger writing to w. Format "text" selects the text
// handler; anything else gets JSON. Unknown levels fall back to info.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
