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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lrosenthol/crTool/cmd/crtool/cli/options"
	"github.com/lrosenthol/crTool/pkg/assets"
	"github.com/lrosenthol/crTool/pkg/credentials"
)

func Extract() *cobra.Command {
	o := &options.ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [OPTIONS] INPUT...",
		Short: "Extract embedded Content Credentials as JSON.",
		Long: `Extract embedded Content Credentials as JSON.

    Each INPUT is a file path or a glob pattern. The embedded manifest
    store is written as a pretty-printed JSON report; inputs without
    Content Credentials are reported and skipped. With multiple inputs,
    --output must name a directory, and each report is written next to
    the input's name as <stem>_manifest.json.

    With --jpt, the report uses the JPEG Trust indicators serialization
    instead (manifests as an array, asset hash in asset_info) and the
    directory suffix becomes _manifest_jpt.json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			inputs, err := assets.ExpandInputPatterns(args)
			if err != nil {
				return err
			}
			if err := assets.CheckSupportedAssetPaths(inputs); err != nil {
				return err
			}
			if len(inputs) > 1 && !assets.IsDir(o.Output) {
				return fmt.Errorf("extracting %d files requires --output to name a directory", len(inputs))
			}

			extractor := credentials.NewExtractor(credentials.ExtractOptions{
				JPEGTrust: o.JPEGTrust,
				Logger:    ro.NewLogger(),
			})

			summary := extractor.ExtractAll(ctx, inputs, o.Output)
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return summary.Err()
		},
	}

	o.AddFlags(cmd)
	return cmd
}
