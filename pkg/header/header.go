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

package header

import (
	"time"
)

// APIVersion is the schema version of every potator document.
const APIVersion = "potator/v1"

// Metadata keys written by potator.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataBuildID   = "build-id"
)

// Kind represents the type of a potator document.
type Kind string

// Valid Kind constants for all potator document types.
const (
	KindRecipeExport Kind = "RecipeExport"
	KindRecipeList   Kind = "RecipeList"
	KindBuildReport  Kind = "BuildReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindRecipeExport, KindRecipeList, KindBuildReport:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithVersion records the version of the producing tool. An empty version
// is not recorded.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			WithMetadata(MetadataVersion, version)(h)
		}
	}
}

// WithTimestamp replaces the creation time recorded by New.
func WithTimestamp(at time.Time) Option {
	return WithMetadata(MetadataTimestamp, at.UTC().Format(time.RFC3339))
}

// New creates a Header with APIVersion and the current UTC time set and the
// provided options applied.
func New(opts ...Option) *Header {
	h := &Header{APIVersion: APIVersion}
	WithTimestamp(time.Now())(h)

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header identifies the kind and schema of an exported document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs about how the document was produced.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
