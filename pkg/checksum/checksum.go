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

package checksum

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sweetpotator/potator/pkg/defaults"
)

// ErrMismatch is returned by Verify when a file does not match its checksum.
var ErrMismatch = errors.New("checksum mismatch")

// GenerateChecksums writes the checksum file for files into dir and returns
// its path. File paths are recorded relative to dir.
func GenerateChecksums(ctx context.Context, dir string, files []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled: %w", err)
	}

	lines := make([]string, 0, len(files))
	for _, file := range files {
		sum, err := fileSum(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s for checksum: %w", file, err)
		}

		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = file
		}
		lines = append(lines, fmt.Sprintf("%s  %s", sum, filepath.ToSlash(relPath)))
	}
	slices.SortFunc(lines, func(a, b string) int {
		return strings.Compare(a[sha256.Size*2:], b[sha256.Size*2:])
	})

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	checksumPath := FilePath(dir)
	if err := os.WriteFile(checksumPath, []byte(content), defaults.FileMode); err != nil {
		return "", fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(lines),
		"path", checksumPath,
	)

	return checksumPath, nil
}

// Verify checks every file listed in the checksum file of dir.
func Verify(ctx context.Context, dir string) error {
	f, err := os.Open(FilePath(dir))
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		want, relPath, ok := strings.Cut(scanner.Text(), "  ")
		if !ok {
			return fmt.Errorf("invalid checksum line %d: %q", line, scanner.Text())
		}
		got, err := fileSum(filepath.Join(dir, filepath.FromSlash(relPath)))
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: %s", ErrMismatch, relPath)
		}
	}
	return scanner.Err()
}

// FilePath returns the path of the checksum file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, defaults.ChecksumFileName)
}

func fileSum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
