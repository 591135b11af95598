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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testListing struct {
	rows [][]string
}

func (l testListing) Columns() []string { return []string{"TITLE", "TAGS"} }
func (l testListing) Rows() [][]string  { return l.rows }

type testDuration struct {
	Minutes int
}

func (d testDuration) String() string { return "30m" }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "soup", Value: 2},
		{Name: "stew", Value: 4},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0] != data[0] {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testConfig{Name: "soup", Value: 2}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"title": "Soup",
		"yield": 2,
		"time":  testDuration{Minutes: 30},
		"tags":  []string{"easy"},
	}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "title", "Soup", "tags.[0]", "easy", "time", "30m"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Minutes") {
		t.Errorf("stringer value should not be flattened, got:\n%s", output)
	}
}

func TestWriter_SerializeTabular(t *testing.T) {
	tests := []struct {
		name     string
		listing  testListing
		expected string
	}{
		{
			name: "rows",
			listing: testListing{rows: [][]string{
				{"Soup", "easy"},
				{"Soup (2)", ""},
			}},
			expected: "TITLE     TAGS\n-----     ----\nSoup      easy\nSoup (2)  \n",
		},
		{
			name:     "empty",
			listing:  testListing{},
			expected: "<empty>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.listing); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tt.expected, buf.String())
			}
		})
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != "<empty>\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		Title string
		Time  *testDuration
	}{Title: "Soup"}

	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<nil>") {
		t.Errorf("expected nil field in output, got:\n%s", buf.String())
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if writer.format != FormatJSON {
		t.Errorf("expected fallback to JSON, got %s", writer.format)
	}
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("expected stdout output")
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")

	writer, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := writer.Serialize(context.Background(), testConfig{Name: "soup"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), `"name": "soup"`) {
		t.Errorf("unexpected file content: %s", content)
	}

	if _, err := NewFileWriter(FormatJSON, filepath.Join(path, "nested.json")); err == nil {
		t.Error("expected error for path below a file")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
		ext     string
	}{
		{input: "json", want: FormatJSON, ext: "json"},
		{input: " YAML ", want: FormatYAML, ext: "yaml"},
		{input: "table", want: FormatTable, ext: "txt"},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
			if got.Extension() != tt.ext {
				t.Errorf("expected extension %s, got %s", tt.ext, got.Extension())
			}
		})
	}

	if len(SupportedFormats()) != 3 {
		t.Errorf("expected 3 supported formats, got %v", SupportedFormats())
	}
}
