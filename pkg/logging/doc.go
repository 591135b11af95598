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

// Package logging provides structured logging utilities for potator.
//
// # Overview
//
// This package wraps the standard library slog package with potator defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("potator", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("potator", "v1.0.0", "debug")
//	logger.Info("site built", "recipes", 12)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("potator", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug potator build ./site
//	LOG_LEVEL=error potator list
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "site built",
//	    "module": "potator",
//	    "version": "v1.0.0",
//	    "recipes": 12
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "store.(*Directory).UpdateFromTitle",
//	        "file": "directory.go",
//	        "line": 45
//	    },
//	    "msg": "recipe directory renamed",
//	    "module": "potator",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("recipe rendered",
//	    "title", rec.Title,
//	    "path", "recipes/soup.html",
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("recipe directory created", "name", name) // Troubleshooting
//	slog.Info("site built")                             // Normal operations
//	slog.Warn("failed to load recipe")                  // Potential issues
//	slog.Error("failed to write output")                // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to render recipe",
//	    "error", err,
//	    "name", dir.Name(),
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/store - Recipe directory operations
//   - pkg/generator - Site generation logging
//   - pkg/config - Config bootstrap logging
//
// All components share consistent logging format and configuration.
package logging
