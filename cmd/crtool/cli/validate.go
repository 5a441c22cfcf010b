// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lrosenthol/crTool/cmd/crtool/cli/options"
	"github.com/lrosenthol/crTool/pkg/assets"
	"github.com/lrosenthol/crTool/pkg/indicators"
)

func Validate() *cobra.Command {
	o := &options.ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [OPTIONS] INPUT...",
		Short: "Validate JPEG Trust indicators documents against their schema.",
		Long: `Validate JPEG Trust indicators documents against their schema.

    Each INPUT is a JSON file path or a glob pattern. Documents are
    checked against the bundled JPEG Trust indicators schema, or against
    the schema named by --schema. Every schema violation is reported
    with its JSON instance path; the command fails when any document is
    invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := assets.ExpandInputPatterns(args)
			if err != nil {
				return err
			}

			var validator *indicators.Validator
			if o.SchemaPath != "" {
				validator, err = indicators.NewValidatorFromFile(o.SchemaPath)
			} else {
				validator, err = indicators.NewValidator()
			}
			if err != nil {
				return err
			}

			summary := validator.ValidateFiles(inputs)

			out := cmd.OutOrStdout()
			for _, result := range summary.Results {
				if result.IsValid {
					fmt.Fprintf(out, "%s: valid\n", result.FilePath)
					continue
				}
				fmt.Fprintf(out, "%s: invalid\n", result.FilePath)
				for _, verr := range result.Errors {
					fmt.Fprintf(out, "  %s: %s\n", verr.InstancePath, verr.Message)
				}
			}
			fmt.Fprintf(out, "%d file(s) checked, %d valid, %d invalid\n",
				summary.Total, summary.Valid, summary.Invalid)

			if summary.Invalid > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", summary.Invalid, summary.Total)
			}
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
