// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package logging provides the leveled, structured logging interface used by
// the crTool CLI. It defines a small Logger interface plus a default
// implementation with text and JSON output formats.
package logging

import "strings"

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is used for general progress messages.
	LevelInfo
	// LevelWarn indicates a potential issue that does not stop processing.
	LevelWarn
	// LevelError indicates a failure.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the string representation of a level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unrecognized strings map to
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Format represents the output format for log messages.
type Format int

const (
	// FormatText outputs human-readable text lines.
	FormatText Format = iota
	// FormatJSON outputs one JSON object per line.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unrecognized strings map to
// FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the leveled logging interface used throughout the CLI.
//
// Commands receive a Logger built from the root options; packages accept a
// Logger instead of writing to stdout directly so that output redirection
// and the silent level work uniformly.
type Logger interface {
	// Debug logs a message at debug level with printf-style formatting.
	Debug(format string, args ...any)
	// Info logs a message at info level with printf-style formatting.
	Info(format string, args ...any)
	// Warn logs a message at warn level with printf-style formatting.
	Warn(format string, args ...any)
	// Error logs a message at error level with printf-style formatting.
	Error(format string, args ...any)

	// GetLevel returns the minimum level that produces output.
	GetLevel() Level

	// WithField returns a Logger that attaches the key-value pair to every
	// entry it emits.
	WithField(key string, value any) Logger
}

// Default returns an info-level text logger writing to stdout.
func Default() Logger {
	return NewLogger(Options{})
}

// Ensure returns l if non-nil, otherwise a default logger. Packages use it
// as a fallback when callers pass a nil Logger.
func Ensure(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
