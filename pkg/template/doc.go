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

// Package template renders recipes and the recipe index with user supplied
// templates.
//
// A template directory looks like this:
//
//	html/
//	  templates/
//	    recipe.html     required
//	    index.html      optional
//	    partials/*.html any other templates, callable by name
//	  lang/
//	    en.yaml         optional strings exposed as .lang
//	  static/           copied verbatim by the generator
//
// Files below templates/ with the configured extension are parsed into one
// template set. A file's template name is its path relative to templates/
// without the extension, so "partials/head.html" is "partials/head".
//
// With Escape set the set is parsed with html/template and output is
// escaped contextually. Otherwise text/template is used, which suits
// Markdown or plain text output.
//
// Every render receives the data passed by the caller merged with the
// engine context (app info, "lf") and "lang".
//
// # Functions
//
//   - markdown: renders Markdown to HTML with goldmark
//   - join: strings.Join
//   - lower, upper: case conversion
//   - title: English title casing
package template
