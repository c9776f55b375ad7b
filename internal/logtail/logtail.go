package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines. maxLines <= 0 returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()
	return Tail(file, maxLines)
}

// Tail returns at most maxLines trailing lines of r, keeping a ring of the
// newest lines while scanning.
func Tail(r io.Reader, maxLines int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	start := 0
	for scanner.Scan() {
		if maxLines <= 0 || len(lines) < maxLines {
			lines = append(lines, scanner.Text())
			continue
		}
		lines[start] = scanner.Text()
		start = (start + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if start == 0 {
		return lines, nil
	}
	ordered := make([]string, 0, len(lines))
	ordered = append(ordered, lines[start:]...)
	return append(ordered, lines[:start]...), nil
}

// Entry is one decoded line of the JSON log.
type Entry struct {
	Time    time.Time
	Level   string
	Logger  string
	Message string
	Fields  map[string]any
}

// reserved keys written by the production encoder.
var reserved = map[string]struct{}{
	"ts": {}, "level": {}, "logger": {}, "msg": {}, "caller": {}, "stacktrace": {},
}

// Parse decodes a JSON log line. ok is false for lines that are not JSON
// objects.
func Parse(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	e := Entry{Fields: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case "ts":
			e.Time = parseTime(v)
		case "level":
			e.Level, _ = v.(string)
		case "logger":
			e.Logger, _ = v.(string)
		case "msg":
			e.Message, _ = v.(string)
		default:
			if _, skip := reserved[k]; !skip {
				e.Fields[k] = v
			}
		}
	}
	return e, true
}

// timeLayouts are the string timestamp encodings zap can emit.
var timeLayouts = []string{
	"2006-01-02T15:04:05.000Z0700",
	time.RFC3339Nano,
}

func parseTime(v any) time.Time {
	switch ts := v.(type) {
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, ts); err == nil {
				return t
			}
		}
	case float64:
		sec := int64(ts)
		return time.Unix(sec, int64((ts-float64(sec))*1e9))
	}
	return time.Time{}
}

// Format renders a log line for a terminal. Lines that are not JSON pass
// through unchanged.
func Format(line string) string {
	e, ok := Parse(line)
	if !ok {
		return line
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05.000"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%-5s", strings.ToUpper(e.Level))
	if e.Logger != "" {
		b.WriteString(" [" + e.Logger + "]")
	}
	b.WriteString(" " + e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}
