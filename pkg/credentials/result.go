// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package credentials

import "fmt"

// Summary counts the outcome of a batch operation. Per-file failures skip
// the file rather than aborting the batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// String renders the summary for end-of-run reporting.
func (s Summary) String() string {
	return fmt.Sprintf("%d of %d file(s) processed, %d failed", s.Succeeded, s.Total, s.Failed)
}

// Err returns an error when any file in the batch failed, so the process
// exits nonzero after reporting.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d file(s) failed", s.Failed, s.Total)
}
