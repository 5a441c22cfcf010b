// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package thumbnail generates asset and ingredient thumbnails for embedding
// into C2PA manifests.
package thumbnail

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// WebP assets can be thumbnail sources; imaging registers the other
	// supported decoders (JPEG, PNG, GIF, TIFF, BMP) itself.
	_ "golang.org/x/image/webp"
)

// MaxDimension is the bounding box for generated thumbnails, in pixels.
const MaxDimension = 256

// MIMEType is the format of every generated thumbnail. Thumbnails are
// always encoded as JPEG regardless of the source format.
const MIMEType = "image/jpeg"

// FromReader decodes an image, scales it down to fit MaxDimension while
// preserving aspect ratio, and returns the JPEG-encoded thumbnail bytes.
// Images already within the bounding box are re-encoded without scaling.
func FromReader(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image for thumbnail generation: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// FromFile generates a thumbnail from an image file on disk.
func FromFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image for thumbnail generation: %w", err)
	}
	defer f.Close()

	thumb, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("thumbnail for %q: %w", path, err)
	}
	return thumb, nil
}
