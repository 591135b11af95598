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
	"github.com/sweetpotator/potator/pkg/naming"
)

// Option is a functional option for configuring a Generator.
type Option func(*Generator)

// WithFilter sets the filter deriving page names from recipe titles.
// The default is naming.Sanitize.
func WithFilter(filter naming.TextFilter) Option {
	return func(g *Generator) {
		if filter != nil {
			g.filter = filter
		}
	}
}

// WithImageExtensions sets the file extensions recognized as recipe images.
func WithImageExtensions(exts []string) Option {
	return func(g *Generator) {
		g.imageExts = exts
	}
}

// WithChecksums enables writing checksums.txt for all generated files.
func WithChecksums(enabled bool) Option {
	return func(g *Generator) {
		g.checksums = enabled
	}
}

// WithBuildID sets the build id instead of generating one.
func WithBuildID(id string) Option {
	return func(g *Generator) {
		g.buildID = id
	}
}
