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

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sweetpotator/potator/pkg/store"
)

func (a *app) infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show application and config information",
		Action: func(_ context.Context, _ *cli.Command) error {
			dirs, err := store.ListAll(a.cfg.RecipeDir)
			if err != nil {
				return storeError("failed to read recipe directory", err)
			}

			mappings := [][2]string{
				{"Name", cases.Title(language.English).String(name)},
				{"Version", version},
				{"Homepage", homepage},
				{"Config dir", a.cfg.Dir()},
				{"Recipe dir", a.cfg.RecipeDir},
				{"Recipes", strconv.Itoa(len(dirs))},
			}
			width := 0
			for _, m := range mappings {
				width = max(width, len(m[0]))
			}
			for _, m := range mappings {
				fmt.Fprintf(a.stdout, "%*s %s %s\n", width, m[0], separatorStyle.Render("·"), m[1])
			}
			return nil
		},
	}
}
