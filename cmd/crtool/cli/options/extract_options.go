// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package options

import (
	"github.com/spf13/cobra"
)

// ExtractOptions defines flags for the extract command.
type ExtractOptions struct {
	OutputFlags

	// JPEGTrust selects the JPEG Trust indicators serialization instead of
	// the standard manifest-store report.
	JPEGTrust bool
}

var _ FlagAdder = (*ExtractOptions)(nil)

// AddFlags adds extract command flags to the cobra command.
func (o *ExtractOptions) AddFlags(cmd *cobra.Command) {
	o.OutputFlags.AddFlags(cmd)

	cmd.Flags().BoolVarP(&o.JPEGTrust, "jpt", "j", false,
		"Write the JPEG Trust indicators serialization instead of the standard report.")
}
