// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// Options configures a DefaultLogger.
type Options struct {
	// Level sets the minimum level to output. Defaults to LevelInfo.
	Level Level
	// Format selects text or JSON output. Defaults to FormatText.
	Format Format
	// Output sets the destination writer. Defaults to os.Stdout.
	Output io.Writer
	// ShowLevel prefixes text lines with the level, e.g. [WARN].
	ShowLevel bool
}

// DefaultLogger is the built-in Logger implementation. It is safe for use
// from multiple goroutines, although the CLI itself is single-threaded.
type DefaultLogger struct {
	mu     sync.Mutex
	level  Level
	format Format
	out    io.Writer
	show   bool
	fields map[string]any
}

// NewLogger creates a DefaultLogger from the given options.
func NewLogger(opts Options) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return &DefaultLogger{
		level:  opts.Level,
		format: opts.Format,
		out:    out,
		show:   opts.ShowLevel,
	}
}

// WithField returns a Logger that attaches the key-value pair to every entry.
// The receiver is not modified.
func (l *DefaultLogger) WithField(key string, value any) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		merged[k] = v
	}
	merged[key] = value

	return &DefaultLogger{
		level:  l.level,
		format: l.format,
		out:    l.out,
		show:   l.show,
		fields: merged,
	}
}

// GetLevel returns the minimum level that produces output.
func (l *DefaultLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput redirects log output to w.
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Debug logs a message at debug level.
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs a message at info level.
func (l *DefaultLogger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a message at warn level.
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs a message at error level.
func (l *DefaultLogger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *DefaultLogger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)

	var line []byte
	if l.format == FormatJSON {
		line = l.formatJSON(level, msg)
	} else {
		line = l.formatText(level, msg)
	}
	_, _ = l.out.Write(line)
}

func (l *DefaultLogger) formatText(level Level, msg string) []byte {
	var b strings.Builder
	if l.show {
		fmt.Fprintf(&b, "[%s] ", strings.ToUpper(level.String()))
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, l.fields[k]))
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(parts, ", "))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func (l *DefaultLogger) formatJSON(level Level, msg string) []byte {
	entry := struct {
		Timestamp string         `json:"timestamp"`
		Level     string         `json:"level"`
		Message   string         `json:"message"`
		Fields    map[string]any `json:"fields,omitempty"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Fields:    l.fields,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Fields carried an unmarshalable value; keep the message.
		data = []byte(fmt.Sprintf(`{"level":%q,"message":%q}`, level.String(), msg))
	}
	return append(data, '\n')
}
