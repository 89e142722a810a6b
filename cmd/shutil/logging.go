package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// SlogManager is a [slog.Handler] passing records on to any number of named
// handlers, which can be added and removed at runtime.
type SlogManager struct {
	sync.RWMutex
	handlers map[string]slog.Handler
	derives  []deriveOp
}

// deriveOp is one WithAttrs (group empty) or WithGroup call, replayed in
// order on handlers added later.
type deriveOp struct {
	attrs []slog.Attr
	group string
}

func (op deriveOp) apply(h slog.Handler) slog.Handler {
	if op.group != "" {
		return h.WithGroup(op.group)
	}

	return h.WithAttrs(op.attrs)
}

func (m *SlogManager) derive(op deriveOp) *SlogManager {
	m.RLock()
	defer m.RUnlock()

	derived := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		derives:  append(append([]deriveOp{}, m.derives...), op),
	}

	for name, h := range m.handlers {
		derived.handlers[name] = op.apply(h)
	}

	return derived
}

// NewSlogManager returns a pointer to a new, empty [SlogManager].
func NewSlogManager() *SlogManager {
	return &SlogManager{
		handlers: make(map[string]slog.Handler),
	}
}

// Enabled reports whether any of the handlers handles records at level.
func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle passes r on to every handler that is enabled for its level. The
// errors of all handlers are joined.
func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.RLock()
	defer m.RUnlock()

	var errs []error
	for name, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, fmt.Errorf("(log-%s) %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// WithAttrs implements [slog.Handler].
func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return m
	}

	return m.derive(deriveOp{attrs: append([]slog.Attr{}, attrs...)})
}

// WithGroup implements [slog.Handler].
func (m *SlogManager) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}

	return m.derive(deriveOp{group: name})
}

// AddHandler adds (or replaces) the handler called name. The attributes and
// groups the manager was derived with are applied to it in their original
// order.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.Lock()
	defer m.Unlock()

	h := handler
	for _, op := range m.derives {
		h = op.apply(h)
	}

	m.handlers[name] = h
}

// RemoveHandler removes the handler called name, if it exists.
func (m *SlogManager) RemoveHandler(name string) {
	m.Lock()
	defer m.Unlock()

	delete(m.handlers, name)
}

// newTerminalHandler returns the colored handler for w. Colors are only
// used when w is a terminal.
func newTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

// newFileHandler returns a JSON handler appending to the file at path.
func newFileHandler(path string, level slog.Leveler) (slog.Handler, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:mnd
	if err != nil {
		return nil, nil, fmt.Errorf("(log-file) failed to open %s: %w", path, err)
	}

	return slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}), f, nil
}
