// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package manifest handles the JSON manifest configuration consumed by the
// sign command. The configuration is the C2PA manifest-definition format,
// treated as opaque JSON, plus one crTool extension: an
// "ingredients_from_files" array that names ingredient assets by file path
// so they can be loaded, thumbnailed, and attached at signing time.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IngredientFilesKey is the crTool-specific manifest key listing ingredients
// to load from files. It is stripped before the definition is handed to the
// C2PA library.
const IngredientFilesKey = "ingredients_from_files"

// Ingredient relationships defined by C2PA.
const (
	RelationshipParentOf    = "parentOf"
	RelationshipComponentOf = "componentOf"
)

// Definition is a parsed manifest configuration file.
type Definition struct {
	raw         map[string]json.RawMessage
	ingredients []IngredientFile
}

// IngredientFile describes one entry of the ingredients_from_files array.
type IngredientFile struct {
	// FilePath locates the ingredient asset, absolute or relative to the
	// ingredients base directory. Required.
	FilePath string `json:"file_path"`
	// Title labels the ingredient; defaults to the asset's filename.
	Title string `json:"title,omitempty"`
	// Relationship is parentOf or componentOf (case-insensitive in the
	// configuration). Empty means the library default (componentOf).
	Relationship string `json:"relationship,omitempty"`
	// Label becomes the ingredient's instance_id so actions can reference it.
	Label string `json:"label,omitempty"`
	// Metadata carries assertion metadata fields, standard or custom.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Load reads and parses a manifest configuration file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest JSON file: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest configuration JSON.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}

	def := &Definition{raw: raw}

	if entries, ok := raw[IngredientFilesKey]; ok {
		if err := json.Unmarshal(entries, &def.ingredients); err != nil {
			return nil, fmt.Errorf("invalid %s entries: %w", IngredientFilesKey, err)
		}
		for i := range def.ingredients {
			if err := def.ingredients[i].normalize(); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", IngredientFilesKey, i, err)
			}
		}
	}

	return def, nil
}

// IngredientFiles returns the parsed ingredients_from_files entries.
func (d *Definition) IngredientFiles() []IngredientFile {
	return d.ingredients
}

// DefinitionJSON returns the manifest definition as the C2PA library expects
// it: the original JSON with the crTool-specific ingredient key removed.
func (d *Definition) DefinitionJSON() ([]byte, error) {
	clean := make(map[string]json.RawMessage, len(d.raw))
	for k, v := range d.raw {
		if k == IngredientFilesKey {
			continue
		}
		clean[k] = v
	}

	data, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest definition: %w", err)
	}
	return data, nil
}

// normalize validates the entry and canonicalizes the relationship casing.
func (f *IngredientFile) normalize() error {
	if f.FilePath == "" {
		return fmt.Errorf("ingredient must have a file_path field")
	}

	switch strings.ToLower(f.Relationship) {
	case "":
	case "parentof":
		f.Relationship = RelationshipParentOf
	case "componentof":
		f.Relationship = RelationshipComponentOf
	default:
		return fmt.Errorf("invalid relationship type: %s", f.Relationship)
	}
	return nil
}

// ResolvePath resolves the ingredient's file path against the base
// directory; absolute paths are returned unchanged.
func (f *IngredientFile) ResolvePath(baseDir string) string {
	if filepath.IsAbs(f.FilePath) {
		return f.FilePath
	}
	return filepath.Join(baseDir, f.FilePath)
}

// EffectiveTitle returns the configured title, or the asset filename when
// none was given.
func (f *IngredientFile) EffectiveTitle() string {
	if f.Title != "" {
		return f.Title
	}
	name := filepath.Base(f.FilePath)
	if name == "." || name == string(filepath.Separator) {
		return "Unknown"
	}
	return name
}

// IngredientJSON builds the standard C2PA ingredient JSON handed to the
// library alongside the ingredient's asset stream.
func (f *IngredientFile) IngredientJSON() ([]byte, error) {
	entry := map[string]any{
		"title": f.EffectiveTitle(),
	}
	if f.Relationship != "" {
		entry["relationship"] = f.Relationship
	}
	if f.Label != "" {
		entry["instance_id"] = f.Label
	}
	if len(f.Metadata) > 0 {
		entry["metadata"] = f.Metadata
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize ingredient: %w", err)
	}
	return data, nil
}
