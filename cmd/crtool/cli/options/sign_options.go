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

// SignOptions defines flags for the sign command.
type SignOptions struct {
	OutputFlags
	SignerFlags

	// ManifestPath is the JSON manifest configuration to embed.
	ManifestPath string
	// IngredientsDir overrides the base directory for relative ingredient
	// paths; defaults to the manifest file's directory.
	IngredientsDir string
	// ThumbnailAsset enables thumbnail generation for image assets.
	ThumbnailAsset bool
	// ThumbnailIngredients enables thumbnail generation for image
	// ingredients.
	ThumbnailIngredients bool
	// JPEGTrust is only valid on extract; the flag exists here so the
	// mistake gets a useful error instead of an unknown-flag failure.
	JPEGTrust bool
}

var _ FlagAdder = (*SignOptions)(nil)

// AddFlags adds sign command flags to the cobra command.
func (o *SignOptions) AddFlags(cmd *cobra.Command) {
	AddAllFlags(cmd, &o.OutputFlags, &o.SignerFlags)

	cmd.Flags().StringVarP(&o.ManifestPath, "manifest", "m", "",
		"JSON manifest configuration file to embed. [required]")
	_ = cmd.MarkFlagFilename("manifest", "json")
	_ = cmd.MarkFlagRequired("manifest")

	cmd.Flags().StringVar(&o.IngredientsDir, "ingredients-dir", "",
		"Base directory for relative ingredient paths. Defaults to the manifest file's directory.")
	_ = cmd.MarkFlagDirname("ingredients-dir")

	cmd.Flags().BoolVar(&o.ThumbnailAsset, "thumbnail-asset", false,
		"Generate a thumbnail for image assets.")

	cmd.Flags().BoolVar(&o.ThumbnailIngredients, "thumbnail-ingredients", false,
		"Generate thumbnails for image ingredients.")

	cmd.Flags().BoolVar(&o.JPEGTrust, "jpt", false, "")
	_ = cmd.Flags().MarkHidden("jpt")
}
