// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveOutputPath determines the final output path for a processed input.
// If output is an existing directory, the input's filename is appended;
// otherwise output is used as-is.
func ResolveOutputPath(input, output string) (string, error) {
	info, err := os.Stat(output)
	if err == nil && info.IsDir() {
		name := filepath.Base(input)
		if name == "." || name == string(filepath.Separator) {
			return "", fmt.Errorf("input file has no filename: %s", input)
		}
		return filepath.Join(output, name), nil
	}
	return output, nil
}

// ResolveExtractionOutputPath determines the output path for an extracted
// manifest. If output is an existing directory, the filename is derived from
// the input's stem plus the extraction suffix (_manifest.json, or
// _manifest_jpt.json for the JPEG Trust serialization). An empty output
// writes the report next to the input.
func ResolveExtractionOutputPath(input, output string, jpegTrust bool) (string, error) {
	if output == "" {
		output = filepath.Dir(input)
	}
	info, err := os.Stat(output)
	if err == nil && info.IsDir() {
		base := filepath.Base(input)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem == "" {
			return "", fmt.Errorf("input file has no filename: %s", input)
		}
		suffix := "_manifest.json"
		if jpegTrust {
			suffix = "_manifest_jpt.json"
		}
		return filepath.Join(output, stem+suffix), nil
	}
	return output, nil
}

// EnsureParentDir creates the parent directory of path if it does not exist.
func EnsureParentDir(path string) error {
	parent := filepath.Dir(path)
	if parent == "" || parent == "." {
		return nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", parent, err)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
