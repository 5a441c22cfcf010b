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

// ValidateOptions defines flags for the validate command.
type ValidateOptions struct {
	// SchemaPath overrides the bundled JPEG Trust indicators schema.
	SchemaPath string
}

var _ FlagAdder = (*ValidateOptions)(nil)

// AddFlags adds validate command flags to the cobra command.
func (o *ValidateOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.SchemaPath, "schema", "",
		"JSON schema file to validate against. Defaults to the bundled indicators schema.")
	_ = cmd.MarkFlagFilename("schema", "json")
}
