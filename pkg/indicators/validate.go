// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package indicators validates JSON documents against the bundled JPEG
// Trust indicators schema.
package indicators

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/indicators-schema.json
var defaultSchemaJSON []byte

const schemaResourceName = "indicators-schema.json"

// ValidationError is a single schema violation.
type ValidationError struct {
	// InstancePath is the JSON path of the offending value, or "root".
	InstancePath string `json:"instance_path"`
	// Message describes the violation.
	Message string `json:"message"`
}

// ValidationResult reports the outcome of validating one document.
type ValidationResult struct {
	// FilePath is the validated file, when validation started from a file.
	FilePath string `json:"file_path"`
	// IsValid reports whether the document passed validation.
	IsValid bool `json:"is_valid"`
	// Errors lists schema violations; empty when valid.
	Errors []ValidationError `json:"errors"`
}

// Summary aggregates the results of a validation batch.
type Summary struct {
	Total   int
	Valid   int
	Invalid int
	Results []ValidationResult
}

// Validator validates documents against a compiled indicators schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the bundled indicators schema.
func NewValidator() (*Validator, error) {
	return newValidator(defaultSchemaJSON)
}

// NewValidatorFromFile compiles an indicators schema from disk, replacing
// the bundled one.
func NewValidatorFromFile(schemaPath string) (*Validator, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read indicators schema file: %w", err)
	}
	return newValidator(data)
}

func newValidator(schemaJSON []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse indicators schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceName, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaResourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile JSON schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// ValidateValue validates a decoded JSON value.
func (v *Validator) ValidateValue(value any) ValidationResult {
	err := v.schema.Validate(value)
	if err == nil {
		return ValidationResult{IsValid: true}
	}

	result := ValidationResult{}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		collectErrors(verr, &result.Errors)
	} else {
		result.Errors = append(result.Errors, ValidationError{
			InstancePath: "root",
			Message:      err.Error(),
		})
	}
	return result
}

// ValidateFile reads, parses, and validates a JSON file. Read and parse
// failures are reported as invalid results rather than hard errors, so a
// batch can continue past a broken file.
func (v *Validator) ValidateFile(path string) ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ValidationResult{
			FilePath: path,
			Errors: []ValidationError{{
				InstancePath: "root",
				Message:      fmt.Sprintf("failed to read file: %v", err),
			}},
		}
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return ValidationResult{
			FilePath: path,
			Errors: []ValidationError{{
				InstancePath: "root",
				Message:      fmt.Sprintf("invalid JSON: %v", err),
			}},
		}
	}

	result := v.ValidateValue(value)
	result.FilePath = path
	return result
}

// ValidateFiles validates a batch of files and aggregates the outcome.
func (v *Validator) ValidateFiles(paths []string) Summary {
	summary := Summary{Total: len(paths)}
	for _, path := range paths {
		result := v.ValidateFile(path)
		if result.IsValid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		summary.Results = append(summary.Results, result)
	}
	return summary
}

// collectErrors flattens the validator's error tree into leaf violations
// with their instance paths.
func collectErrors(verr *jsonschema.ValidationError, out *[]ValidationError) {
	if len(verr.Causes) == 0 {
		*out = append(*out, ValidationError{
			InstancePath: instancePath(verr.InstanceLocation),
			Message:      verr.Error(),
		})
		return
	}
	for _, cause := range verr.Causes {
		collectErrors(cause, out)
	}
}

func instancePath(location []string) string {
	if len(location) == 0 {
		return "root"
	}
	return "/" + strings.Join(location, "/")
}
