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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/sweetpotator/potator/pkg/defaults"
)

// Bootstrap writes the embedded default files missing from dir and creates
// the recipe directory of the resulting config. It returns the paths of the
// files it created.
func Bootstrap(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, defaults.DirMode); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	var created []string
	err := fs.WalkDir(resources, resourceRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := p[len(resourceRoot):]
		target := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+rel)))
		if d.IsDir() {
			return os.MkdirAll(target, defaults.DirMode)
		}

		data, err := resources.ReadFile(p)
		if err != nil {
			return err
		}
		ok, err := writeNew(target, data)
		if err != nil {
			return err
		}
		if ok {
			created = append(created, target)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap config directory: %w", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.RecipeDir, defaults.DirMode); err != nil {
		return nil, fmt.Errorf("failed to create recipe directory: %w", err)
	}

	if len(created) > 0 {
		slog.Debug("config directory bootstrapped", "dir", dir, "files", len(created))
	}
	return created, nil
}

// writeNew writes data to a new file at path. It reports false if the file
// already exists.
func writeNew(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaults.FileMode)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
