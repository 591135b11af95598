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

package generator

import (
	"fmt"
	"time"
)

// IndexEntry describes one rendered recipe in the index.
type IndexEntry struct {
	Title     string   `json:"title" yaml:"title"`
	Path      string   `json:"path" yaml:"path"`
	Tags      []string `json:"tags" yaml:"tags"`
	ImagePath string   `json:"image_path,omitempty" yaml:"image_path,omitempty"`
}

// Failure is a recipe that was skipped.
type Failure struct {
	Name  string `json:"name" yaml:"name"`
	Error string `json:"error" yaml:"error"`
}

// Result summarizes a generation run.
type Result struct {
	// BuildID uniquely identifies the run.
	BuildID string `json:"build_id" yaml:"build_id"`

	// OutputDir is the directory the site was written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Entries are the rendered recipes sorted by title.
	Entries []IndexEntry `json:"entries" yaml:"entries"`

	// Tags are the distinct tags of all rendered recipes.
	Tags []string `json:"tags" yaml:"tags"`

	// Files are the paths of all written files.
	Files []string `json:"files" yaml:"files"`

	// Size is the total size in bytes of all written files.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`

	// ChecksumFile is the checksum file path, if one was written.
	ChecksumFile string `json:"checksum_file,omitempty" yaml:"checksum_file,omitempty"`

	// Failures are the recipes that could not be rendered.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Duration is the time taken by the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// HasFailures reports whether any recipe was skipped.
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	s := fmt.Sprintf("Generated %d recipes, %d files (%s) in %v.",
		len(r.Entries),
		len(r.Files),
		formatBytes(r.Size),
		r.Duration.Round(time.Millisecond),
	)
	if r.HasFailures() {
		s += fmt.Sprintf(" Skipped %d recipes.", len(r.Failures))
	}
	return s
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
