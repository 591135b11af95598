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

// Package errors provides structured error types for better observability
// and programmatic error handling at the command line boundary.
//
// Core packages return plain errors. Commands translate them into a
// StructuredError whose code selects the process exit status.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "recipe dir not found",
//	    err,
//	    map[string]interface{}{
//	        "title": title,
//	    },
//	)
//	os.Exit(errors.ExitCode(err))
package errors
