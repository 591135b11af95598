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

// Package checksum writes and verifies SHA256 checksum files for generated sites.
//
// A checksum file lists one file per line as "<hex sha256>  <relative path>",
// sorted by path with forward slashes:
//
//	2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae  index.html
//	fcde2b2edba56bf408601fb721fe9b5c338d10ee429ea04fae5511b68fbf8fb9  recipes/Soup.html
//
// Usage:
//
//	path, err := checksum.GenerateChecksums(ctx, siteDir, files)
//	if err != nil {
//	    return err
//	}
//
//	if err := checksum.Verify(ctx, siteDir); err != nil {
//	    return err
//	}
//
// The file format is compatible with sha256sum:
//
//	sha256sum -c checksums.txt
package checksum
