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

// Package naming turns human written titles into file system names.
//
// Two TextFilter implementations are provided:
//   - Sanitize keeps the title readable and only replaces characters that
//     are not allowed in file names on common platforms ("a/b" -> "a_b").
//     Reserved device names and trailing dots are handled by filenamify.
//   - Slugify produces lower case ASCII slugs suitable for URLs
//     ("Crème Brûlée" -> "creme-brulee").
//
// Filters are selected by name with ParseFilter, which is how the
// file_name_filter template option is resolved.
//
// UniqueNameFinder hands out names that have not been seen before, numbering
// repeats as "name (2)", "name (3)" and so on.
package naming
