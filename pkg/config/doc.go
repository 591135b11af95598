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

// Package config loads the potator configuration directory.
//
// The config directory defaults to "$XDG_CONFIG_HOME/potator" (see
// os.UserConfigDir) and holds:
//
//	config.yaml      settings, see Config
//	default.recipe   the recipe new recipes start from
//	templates/NAME/  one directory per template, see package template
//
// Bootstrap creates missing files from defaults embedded in the binary.
// Existing files are never overwritten, so users can edit them freely.
//
// Load decodes config.yaml over the embedded default config, so keys absent
// from the user file keep their default values:
//
//	if err := config.Bootstrap(dir); err != nil {
//	    return err
//	}
//	cfg, err := config.Load(dir)
//	if err != nil {
//	    return err
//	}
//	engine, err := cfg.Engine("html", nil)
package config
