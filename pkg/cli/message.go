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

package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/sweetpotator/potator/pkg/errors"
)

var (
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	suffixStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// notification formats "potator (LABEL): message".
func notification(style lipgloss.Style, label, message string) string {
	return fmt.Sprintf("%s (%s): %s", name, style.Render(label), message)
}

// highlight marks a user supplied name inside a message.
func highlight(s string) string {
	return highlightStyle.Render(s)
}

func (a *app) printError(err error) {
	var se *apperrors.StructuredError
	if errors.As(err, &se) && len(se.Context) > 0 {
		slog.Debug("error context", "code", se.Code, "context", se.Context)
	}
	fmt.Fprintln(a.stderr, notification(errorStyle, "ERROR", err.Error()))
}

func (a *app) info(format string, args ...any) {
	fmt.Fprintln(a.stdout, notification(infoStyle, "INFO", fmt.Sprintf(format, args...)))
}

func (a *app) success(format string, args ...any) {
	fmt.Fprintln(a.stdout, notification(successStyle, "SUCCESS", fmt.Sprintf(format, args...)))
}
