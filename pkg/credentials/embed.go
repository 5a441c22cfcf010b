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

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/contentauth/c2pa-go/pkg/c2pa"

	"github.com/lrosenthol/crTool/pkg/assets"
	"github.com/lrosenthol/crTool/pkg/logging"
	"github.com/lrosenthol/crTool/pkg/manifest"
	"github.com/lrosenthol/crTool/pkg/thumbnail"
)

// thumbnailURI is the resource identifier for the generated asset thumbnail.
const thumbnailURI = "thumbnail.jpg"

// EmbedOptions configures an Embedder.
type EmbedOptions struct {
	// Definition is the parsed manifest configuration to embed.
	Definition *manifest.Definition
	// IngredientsDir is the base directory for relative ingredient paths,
	// normally the directory containing the manifest configuration file.
	IngredientsDir string
	// AssetThumbnail enables thumbnail generation for image assets.
	AssetThumbnail bool
	// IngredientThumbnails enables thumbnail generation for image
	// ingredients.
	IngredientThumbnails bool
	// Logger receives per-file progress; defaults to the package default.
	Logger logging.Logger
}

// Embedder signs assets with a manifest built from one definition, reusing
// the signer across a batch of inputs.
type Embedder struct {
	signer c2pa.Signer
	opts   EmbedOptions
	log    logging.Logger
}

// NewEmbedder creates an Embedder signing with the given signer.
func NewEmbedder(signer c2pa.Signer, opts EmbedOptions) *Embedder {
	return &Embedder{
		signer: signer,
		opts:   opts,
		log:    logging.Ensure(opts.Logger),
	}
}

// EmbedFile embeds the manifest into a single asset, writing the signed copy
// to the resolved output path, which is returned. An existing file at the
// output path is replaced.
func (e *Embedder) EmbedFile(input, output string) (string, error) {
	mimeType, err := assets.MIMEFromPath(input)
	if err != nil {
		return "", err
	}

	outPath, err := assets.ResolveOutputPath(input, output)
	if err != nil {
		return "", err
	}
	if err := assets.EnsureParentDir(outPath); err != nil {
		return "", err
	}
	// The library refuses to overwrite in place, so clear the target first.
	if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to remove existing output %s: %w", outPath, err)
	}

	builder, err := e.newBuilder(input, mimeType)
	if err != nil {
		return "", err
	}

	if err := e.addIngredients(builder); err != nil {
		return "", err
	}

	if _, err := builder.SignFile(e.signer, input, outPath); err != nil {
		return "", fmt.Errorf("failed to sign %s: %w", input, err)
	}
	return outPath, nil
}

// EmbedAll signs every input, continuing past per-file failures. Failures
// are logged and counted in the returned summary. A canceled context stops
// the batch; unprocessed files count as failed.
func (e *Embedder) EmbedAll(ctx context.Context, inputs []string, output string) Summary {
	summary := Summary{Total: len(inputs)}
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			e.log.Error("aborting batch: %v", err)
			summary.Failed = summary.Total - summary.Succeeded
			return summary
		}
		outPath, err := e.EmbedFile(input, output)
		if err != nil {
			e.log.Warn("skipping %s: %v", input, err)
			summary.Failed++
			continue
		}
		e.log.Info("signed %s -> %s", input, outPath)
		summary.Succeeded++
	}
	return summary
}

// newBuilder creates the manifest builder for one asset, attaching a
// generated thumbnail when enabled and the asset is an image.
func (e *Embedder) newBuilder(input, mimeType string) (c2pa.Builder, error) {
	defJSON, err := e.opts.Definition.DefinitionJSON()
	if err != nil {
		return nil, err
	}

	var thumb []byte
	if e.opts.AssetThumbnail && isImageMIME(mimeType) {
		thumb, err = thumbnail.FromFile(input)
		if err != nil {
			e.log.Warn("no thumbnail for %s: %v", input, err)
			thumb = nil
		}
	}
	if thumb != nil {
		defJSON, err = withThumbnailRef(defJSON, thumbnailURI)
		if err != nil {
			return nil, err
		}
	}

	builder, err := c2pa.NewBuilderFromJSON(string(defJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest builder: %w", err)
	}

	if thumb != nil {
		if err := builder.AddResource(thumbnailURI, bytes.NewReader(thumb)); err != nil {
			return nil, fmt.Errorf("failed to attach thumbnail: %w", err)
		}
	}
	return builder, nil
}

// addIngredients loads each ingredients_from_files entry and attaches it to
// the builder, with a thumbnail for image ingredients when enabled.
func (e *Embedder) addIngredients(builder c2pa.Builder) error {
	for i, ing := range e.opts.Definition.IngredientFiles() {
		path := ing.ResolvePath(e.opts.IngredientsDir)

		mimeType, err := assets.MIMEFromPath(path)
		if err != nil {
			return fmt.Errorf("ingredient %s: %w", ing.FilePath, err)
		}

		ingJSON, err := ing.IngredientJSON()
		if err != nil {
			return err
		}

		var thumb []byte
		if e.opts.IngredientThumbnails && isImageMIME(mimeType) {
			thumb, err = thumbnail.FromFile(path)
			if err != nil {
				e.log.Warn("no thumbnail for ingredient %s: %v", path, err)
				thumb = nil
			}
		}
		thumbURI := fmt.Sprintf("ingredient_%d_thumbnail.jpg", i)
		if thumb != nil {
			ingJSON, err = withThumbnailRef(ingJSON, thumbURI)
			if err != nil {
				return err
			}
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open ingredient %s: %w", path, err)
		}
		err = builder.AddIngredientFromStream(string(ingJSON), mimeType, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to add ingredient %s: %w", path, err)
		}

		if thumb != nil {
			if err := builder.AddResource(thumbURI, bytes.NewReader(thumb)); err != nil {
				return fmt.Errorf("failed to attach ingredient thumbnail: %w", err)
			}
		}
	}
	return nil
}

// withThumbnailRef adds a thumbnail resource reference to a manifest or
// ingredient JSON object.
func withThumbnailRef(doc []byte, uri string) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	ref, err := json.Marshal(map[string]string{
		"format":     thumbnail.MIMEType,
		"identifier": uri,
	})
	if err != nil {
		return nil, err
	}
	obj["thumbnail"] = ref

	return json.Marshal(obj)
}

func isImageMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
