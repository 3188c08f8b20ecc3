package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

var (
	levelDebug = color.New(color.FgYellow)
	levelInfo  = color.New(color.FgGreen)
	levelWarn  = color.New(color.FgMagenta)
	levelError = color.New(color.FgRed)
)

// colorHandler prints one short coloured line per record.
// Level filtering is left to the wrapped handler.
type colorHandler struct {
	slog.Handler
	w io.Writer

	// attrs from With, keys already qualified by group
	attrs  []slog.Attr
	prefix string
}

func (h *colorHandler) level(rec slog.Record) string {
	switch {
	case rec.Level >= slog.LevelError:
		return levelError.Sprint("ERROR")
	case rec.Level >= slog.LevelWarn:
		return levelWarn.Sprintf("%5s", "WARN")
	case rec.Level >= slog.LevelInfo:
		return levelInfo.Sprintf("%5s", "INFO")
	default:
		return levelDebug.Sprint("DEBUG")
	}
}

func (h *colorHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder

	sb.WriteString(color.MagentaString(rec.Time.Format("15:04:05")))
	sb.WriteByte(' ')
	sb.WriteString(h.level(rec))
	sb.WriteByte(' ')
	sb.WriteString(rec.Message)

	writeAttr := func(a slog.Attr) {
		fmt.Fprintf(&sb, " %s=%s",
			color.CyanString(a.Key),
			color.YellowString(a.Value.String()))
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		writeAttr(a)
		return true
	})
	sb.WriteByte('\n')

	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	all = append(all, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		all = append(all, a)
	}

	return &colorHandler{
		Handler: h.Handler.WithAttrs(attrs),
		w:       h.w,
		attrs:   all,
		prefix:  h.prefix,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &colorHandler{
		Handler: h.Handler.WithGroup(name),
		w:       h.w,
		attrs:   h.attrs,
		prefix:  h.prefix + name + ".",
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(&colorHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
		w: w,
	})
}
