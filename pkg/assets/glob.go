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
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandInputPatterns expands input arguments into a list of file paths.
//
// Each argument is first tried as a literal path; if it exists, it is used
// as-is. Otherwise it is expanded as a glob pattern (including ** support).
// A pattern that matches nothing is an error. The result is sorted and
// deduplicated so batch processing order is deterministic.
func ExpandInputPatterns(patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
			continue
		}

		base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
		matches, err := doublestar.Glob(os.DirFS(base), rest, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", pattern)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(base, filepath.FromSlash(m)))
		}
	}

	sort.Strings(files)
	files = dedupeSorted(files)

	return files, nil
}

// dedupeSorted removes adjacent duplicates from a sorted slice in place.
func dedupeSorted(paths []string) []string {
	if len(paths) < 2 {
		return paths
	}
	out := paths[:1]
	for _, p := range paths[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
