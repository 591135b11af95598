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

// Package header provides the common header of documents written by potator.
//
// Recipe exports, recipe listings and build reports start with a Header so
// that consumers can tell them apart and detect schema changes:
//
//	{
//	  "kind": "RecipeExport",
//	  "apiVersion": "potator/v1",
//	  "metadata": {
//	    "timestamp": "2026-01-05T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # Usage
//
// Embed the header and build it with options when the document is produced:
//
//	type Export struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Recipes []Entry `json:"recipes" yaml:"recipes"`
//	}
//
//	e := Export{Header: *header.New(
//	    header.WithKind(header.KindRecipeExport),
//	    header.WithVersion(version),
//	)}
package header
