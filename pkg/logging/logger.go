// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable holding the default log level.
const EnvLogLevel = "LOG_LEVEL"

// SetDefaultStructuredLogger installs a JSON logger on stderr as the slog
// default. The level is read from LOG_LEVEL.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultStructuredLoggerWithLevel(name, version, os.Getenv(EnvLogLevel))
}

// SetDefaultStructuredLoggerWithLevel installs a JSON logger on stderr with
// an explicit level as the slog default.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	slog.SetDefault(NewStructuredLogger(name, version, level))
}

// NewStructuredLogger returns a JSON logger writing to stderr. Every record
// carries module and version attributes. Debug loggers add the source location.
func NewStructuredLogger(name, version, level string) *slog.Logger {
	return newStructuredLogger(os.Stderr, name, version, level)
}

func newStructuredLogger(w io.Writer, name, version, level string) *slog.Logger {
	lvl := ParseLogLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})
	return slog.New(handler).With(
		slog.String("module", name),
		slog.String("version", version),
	)
}

// ParseLogLevel converts a case-insensitive level name into a slog.Level.
// Unknown or empty names yield slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
