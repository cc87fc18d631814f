package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// prettyHandler writes one line per record for a terminal that also shows
// song output:
//
//	15:04:05 WARN  songcache: song cache read failed song_key=hallelujah-1a2b3c error=boom
//	         hint: run 'chordstage cache clear' if the problem persists
//
// The component becomes a prefix and an error hint gets its own line.
type prettyHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     *slog.LevelVar
	color     bool
	addSource bool
	fields    []field
	group     string
}

type field struct {
	key   string
	value slog.Value
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: forcedColor(color.FgHiBlack),
	slog.LevelInfo:  forcedColor(color.FgCyan),
	slog.LevelWarn:  forcedColor(color.FgYellow, color.Bold),
	slog.LevelError: forcedColor(color.FgRed, color.Bold),
}

// forcedColor ignores color.NoColor; the handler decides per writer.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) *prettyHandler {
	return &prettyHandler{mu: &sync.Mutex{}, w: w, level: lvl, addSource: addSource}
}

func (h *prettyHandler) withColor(enabled bool) *prettyHandler {
	next := *h
	next.color = enabled
	return &next
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	fields := append([]field(nil), h.fields...)
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendField(fields, h.group, attr)
		return true
	})

	var component, hint string
	var b strings.Builder
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ts.Local().Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(h.levelTag(record.Level))
	b.WriteByte(' ')

	rest := fields[:0]
	for _, f := range fields {
		switch f.key {
		case FieldComponent:
			if component == "" {
				component = f.value.String()
			}
		case FieldErrorHint:
			hint = f.value.String()
		default:
			rest = append(rest, f)
		}
	}
	if component != "" {
		b.WriteString(component)
		b.WriteString(": ")
	}
	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}
	b.WriteString(msg)

	if h.addSource {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&b, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	for _, f := range rest {
		b.WriteByte(' ')
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(formatValue(f.value))
	}
	if hint != "" {
		b.WriteString("\n         hint: ")
		b.WriteString(hint)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.fields = append([]field(nil), h.fields...)
	for _, attr := range attrs {
		next.fields = appendField(next.fields, h.group, attr)
	}
	return &next
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = joinKey(h.group, name)
	return &next
}

func (h *prettyHandler) levelTag(level slog.Level) string {
	label := fmt.Sprintf("%-5s", levelLabel(level))
	if !h.color {
		return label
	}
	c, ok := levelColors[level]
	if !ok {
		return label
	}
	return c.Sprint(label)
}

// appendField flattens attr, and any groups inside it, into dotted keys.
func appendField(dst []field, prefix string, attr slog.Attr) []field {
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	v := attr.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return append(dst, field{key: joinKey(prefix, attr.Key), value: v})
	}
	if attr.Key != "" {
		prefix = joinKey(prefix, attr.Key)
	}
	for _, inner := range v.Group() {
		dst = appendField(dst, prefix, inner)
	}
	return dst
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
