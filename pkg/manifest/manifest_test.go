// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `{
	"claim_generator": "crtool/0.1",
	"title": "Signed asset",
	"assertions": [
		{"label": "c2pa.actions", "data": {"actions": [{"action": "c2pa.created"}]}}
	],
	"ingredients_from_files": [
		{
			"file_path": "parts/source.jpg",
			"title": "Source photo",
			"relationship": "parentof",
			"label": "src-1",
			"metadata": {"com.example.asset-id": "abc-123"}
		},
		{
			"file_path": "/abs/overlay.png"
		}
	]
}`

func TestParseIngredientFiles(t *testing.T) {
	def, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ings := def.IngredientFiles()
	if len(ings) != 2 {
		t.Fatalf("got %d ingredients, want 2", len(ings))
	}

	first := ings[0]
	if first.Title != "Source photo" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Relationship != RelationshipParentOf {
		t.Errorf("relationship = %q, want %q (canonicalized)", first.Relationship, RelationshipParentOf)
	}
	if first.Label != "src-1" {
		t.Errorf("label = %q", first.Label)
	}
	if first.Metadata["com.example.asset-id"] != "abc-123" {
		t.Errorf("metadata = %v", first.Metadata)
	}

	if ings[1].Relationship != "" {
		t.Errorf("relationship should default to empty, got %q", ings[1].Relationship)
	}
}

func TestParseWithoutIngredients(t *testing.T) {
	def, err := Parse([]byte(`{"title": "plain"}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(def.IngredientFiles()) != 0 {
		t.Error("expected no ingredients")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{ not json }`},
		{"missing file_path", `{"ingredients_from_files": [{"title": "x"}]}`},
		{"bad relationship", `{"ingredients_from_files": [{"file_path": "a.jpg", "relationship": "siblingOf"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestDefinitionJSONStripsIngredientFiles(t *testing.T) {
	def, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	clean, err := def.DefinitionJSON()
	if err != nil {
		t.Fatalf("DefinitionJSON error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(clean, &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := m[IngredientFilesKey]; ok {
		t.Errorf("%s should be removed from the definition", IngredientFilesKey)
	}
	if m["title"] != "Signed asset" {
		t.Errorf("other fields must survive, got title=%v", m["title"])
	}
}

func TestResolvePath(t *testing.T) {
	rel := IngredientFile{FilePath: filepath.Join("parts", "source.jpg")}
	if got := rel.ResolvePath(filepath.Join("/base", "dir")); got != filepath.Join("/base", "dir", "parts", "source.jpg") {
		t.Errorf("relative resolution = %q", got)
	}

	abs := IngredientFile{FilePath: "/abs/overlay.png"}
	if got := abs.ResolvePath("/base"); got != "/abs/overlay.png" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}

func TestEffectiveTitle(t *testing.T) {
	withTitle := IngredientFile{FilePath: "a/b.jpg", Title: "My asset"}
	if got := withTitle.EffectiveTitle(); got != "My asset" {
		t.Errorf("got %q", got)
	}

	noTitle := IngredientFile{FilePath: "a/b.jpg"}
	if got := noTitle.EffectiveTitle(); got != "b.jpg" {
		t.Errorf("got %q, want filename fallback", got)
	}
}

func TestIngredientJSON(t *testing.T) {
	f := IngredientFile{
		FilePath:     "parts/source.jpg",
		Relationship: RelationshipParentOf,
		Label:        "src-1",
		Metadata:     map[string]any{"k": "v"},
	}

	data, err := f.IngredientJSON()
	if err != nil {
		t.Fatalf("IngredientJSON error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["title"] != "source.jpg" {
		t.Errorf("title = %v", m["title"])
	}
	if m["relationship"] != RelationshipParentOf {
		t.Errorf("relationship = %v", m["relationship"])
	}
	if m["instance_id"] != "src-1" {
		t.Errorf("instance_id = %v", m["instance_id"])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(def.IngredientFiles()) != 2 {
		t.Errorf("got %d ingredients", len(def.IngredientFiles()))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing manifest file")
	}
}
