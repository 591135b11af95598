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
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestGenerateChecksums(t *testing.T) {
	t.Parallel()

	t.Run("writes sorted relative paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		index := filepath.Join(dir, "index.html")
		soup := filepath.Join(dir, "recipes", "Soup.html")
		writeFile(t, index, "foo")
		writeFile(t, soup, "bar")

		path, err := GenerateChecksums(context.Background(), dir, []string{soup, index})
		if err != nil {
			t.Fatalf("GenerateChecksums() error = %v", err)
		}
		if path != FilePath(dir) {
			t.Errorf("unexpected path %s", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read checksums: %v", err)
		}
		expected := "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae  index.html\n" +
			"fcde2b2edba56bf408601fb721fe9b5c338d10ee429ea04fae5511b68fbf8fb9  recipes/Soup.html\n"
		if string(data) != expected {
			t.Errorf("unexpected content:\n%s", data)
		}
	})

	t.Run("returns error on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := GenerateChecksums(ctx, t.TempDir(), nil); err == nil {
			t.Error("expected error for cancelled context")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := GenerateChecksums(context.Background(), dir, []string{filepath.Join(dir, "missing.html")}); err == nil {
			t.Error("expected error for non-existent file")
		}
	})

	t.Run("handles empty file list", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path, err := GenerateChecksums(context.Background(), dir, nil)
		if err != nil {
			t.Fatalf("GenerateChecksums() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read checksums: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("expected empty file, got %q", data)
		}
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	index := filepath.Join(dir, "index.html")
	soup := filepath.Join(dir, "recipes", "Soup.html")
	writeFile(t, index, "foo")
	writeFile(t, soup, "bar")

	if _, err := GenerateChecksums(context.Background(), dir, []string{index, soup}); err != nil {
		t.Fatalf("GenerateChecksums() error = %v", err)
	}
	if err := Verify(context.Background(), dir); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	writeFile(t, soup, "changed")
	err := Verify(context.Background(), dir)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "recipes/Soup.html") {
		t.Errorf("expected path in error, got %v", err)
	}

	writeFile(t, FilePath(dir), "not a checksum line\n")
	if err := Verify(context.Background(), dir); err == nil {
		t.Error("expected error for malformed line")
	}

	if err := Verify(context.Background(), t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	if got := FilePath(filepath.Join("some", "site")); got != filepath.Join("some", "site", "checksums.txt") {
		t.Errorf("FilePath() = %s", got)
	}
}
