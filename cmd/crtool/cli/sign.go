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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lrosenthol/crTool/cmd/crtool/cli/options"
	"github.com/lrosenthol/crTool/pkg/assets"
	"github.com/lrosenthol/crTool/pkg/credentials"
	"github.com/lrosenthol/crTool/pkg/manifest"
)

func Sign() *cobra.Command {
	o := &options.SignOptions{}

	cmd := &cobra.Command{
		Use:   "sign [OPTIONS] INPUT...",
		Short: "Sign assets with a Content Credentials manifest.",
		Long: `Sign assets with a Content Credentials manifest.

    Each INPUT is a file path or a glob pattern (** matches recursively).
    The manifest described by the --manifest JSON configuration is built,
    signed with the --cert / --key PEM pair, and embedded into a copy of
    each input. With multiple inputs, --output must name a directory.

    The configuration may list ingredient assets in an
    "ingredients_from_files" array; relative ingredient paths resolve
    against the manifest file's directory unless --ingredients-dir is set.

    The signing algorithm is detected from the certificate's public key
    and can be overridden with --algorithm. Self-signed certificates are
    rejected unless --allow-self-signed is passed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.JPEGTrust {
				return fmt.Errorf("--jpt selects the extraction serialization and is only valid with the extract command")
			}

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
				return fmt.Errorf("signing %d files requires --output to name a directory", len(inputs))
			}

			def, err := manifest.Load(o.ManifestPath)
			if err != nil {
				return err
			}
			ingredientsDir := o.IngredientsDir
			if ingredientsDir == "" {
				ingredientsDir = filepath.Dir(o.ManifestPath)
			}

			alg, err := credentials.ResolveAlgorithm(o.Algorithm, o.CertPath)
			if err != nil {
				return err
			}

			signer, err := credentials.NewSigner(credentials.SignerConfig{
				CertPath:        o.CertPath,
				KeyPath:         o.KeyPath,
				Algorithm:       alg,
				AllowSelfSigned: o.AllowSelfSigned,
			})
			if err != nil {
				return err
			}

			logger := ro.NewLogger()
			embedder := credentials.NewEmbedder(signer, credentials.EmbedOptions{
				Definition:           def,
				IngredientsDir:       ingredientsDir,
				AssetThumbnail:       o.ThumbnailAsset,
				IngredientThumbnails: o.ThumbnailIngredients,
				Logger:               logger,
			})

			summary := embedder.EmbedAll(ctx, inputs, o.Output)
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return summary.Err()
		},
	}

	o.AddFlags(cmd)
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
