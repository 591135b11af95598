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

// Package defaults provides centralized constants for the potator system.
//
// This package defines file names, directory layout, permissions and
// timeouts used across the codebase. Centralizing these values keeps the
// on-disk layout consistent between the store, the generator and the CLI.
//
// # Layout Categories
//
//   - Store layout: recipe file extension and disambiguation markers
//   - Config layout: config file, default recipe and template directories
//   - Site layout: output directories written by the generator
//   - Timeouts: upper bounds for long running commands
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/sweetpotator/potator/pkg/defaults"
//
//	path := filepath.Join(dir, name+"."+defaults.RecipeFileExtension)
package defaults
