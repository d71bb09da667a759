package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// DefaultRecorderCapacity bounds the number of entries a run keeps.
const DefaultRecorderCapacity = 1000

// Recorder is a slog.Handler that keeps the most recent formatted entries
// in a bounded ring so a run can hand its log back to the caller.
type Recorder struct {
	state *ringState
	attrs []slog.Attr
	group string
	level slog.Leveler
}

type ringState struct {
	mu      sync.Mutex
	entries []string
	next    int
	full    bool
}

// NewRecorder returns a Recorder holding at most capacity entries.
func NewRecorder(capacity int, level slog.Leveler) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &Recorder{
		state: &ringState{entries: make([]string, capacity)},
		level: level,
	}
}

// Enabled implements slog.Handler.
func (r *Recorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level.Level()
}

// Handle implements slog.Handler.
func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(rec.Level.String())
	b.WriteByte(' ')
	b.WriteString(rec.Message)

	for _, a := range r.attrs {
		writeAttr(&b, r.group, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, r.group, a)
		return true
	})

	r.state.push(b.String())
	return nil
}

// WithAttrs implements slog.Handler.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *r
	clone.attrs = append(append([]slog.Attr(nil), r.attrs...), attrs...)
	return &clone
}

// WithGroup implements slog.Handler.
func (r *Recorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}
	clone := *r
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// Entries returns the recorded lines, oldest first.
func (r *Recorder) Entries() []string {
	return r.state.snapshot()
}

// Reset drops every recorded entry.
func (r *Recorder) Reset() {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	clear(r.state.entries)
	r.state.next = 0
	r.state.full = false
}

func (s *ringState) push(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.next] = entry
	s.next++
	if s.next == len(s.entries) {
		s.next = 0
		s.full = true
	}
}

func (s *ringState) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		return append([]string(nil), s.entries[:s.next]...)
	}
	out := make([]string, 0, len(s.entries))
	out = append(out, s.entries[s.next:]...)
	return append(out, s.entries[:s.next]...)
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}

// Tee fans every record out to all handlers.
func Tee(handlers ...slog.Handler) slog.Handler {
	return teeHandler(handlers)
}

type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, rec.Level) {
			if err := h.Handle(ctx, rec.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
