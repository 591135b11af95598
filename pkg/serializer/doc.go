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

// Package serializer provides encoding and decoding of potator data in multiple formats.
//
// # Overview
//
// The serializer package converts recipe listings, exports and build
// reports into JSON, YAML or human-readable tables, and reads JSON or YAML
// documents back with automatic format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Used for recipe exports and build reports
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Used for the config file, language files and YAML exports
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Column layout for values implementing Tabular
//   - Flattened FIELD/VALUE layout for everything else
//   - Write-only (no deserialization support)
//
// # Usage
//
// Writing to stdout:
//
//	w := serializer.NewWriter(serializer.FormatTable, os.Stdout)
//	if err := w.Serialize(ctx, listing); err != nil {
//	    return err
//	}
//
// Writing to a file:
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSON, "out/recipes.json")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
// Reading with format detection:
//
//	lang, err := serializer.FromFile[map[string]any]("lang/en.yaml")
//
// Decoding over existing defaults:
//
//	cfg := DefaultConfig()
//	err := serializer.DecodeFile("config.yaml", cfg)
package serializer
