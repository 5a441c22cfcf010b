// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package assets provides media-asset plumbing for the crTool CLI: MIME-type
// inference from file extensions, the supported-asset gate, glob expansion
// of input patterns, and output path resolution.
package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// extensionMIME maps lowercase file extensions to the MIME types the C2PA
// library expects as asset formats.
var extensionMIME = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"psd":  "image/vnd.adobe.photoshop",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"dng":  "image/x-adobe-dng",
	"heic": "image/heic",
	"heif": "image/heif",
	"avif": "image/avif",
	"avi":  "video/avi",
	"c2pa": "application/c2pa",
	"mp2":  "video/mpeg",
	"mpa":  "video/mpeg",
	"mpe":  "video/mpeg",
	"mpeg": "video/mpeg",
	"mpg":  "video/mpeg",
	"mpv2": "video/mpeg",
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"qt":   "video/quicktime",
	"m4a":  "audio/mp4",
	"mid":  "audio/mid",
	"rmi":  "audio/mid",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"aif":  "audio/aiff",
	"aifc": "audio/aiff",
	"aiff": "audio/aiff",
	"ogg":  "audio/ogg",
	"pdf":  "application/pdf",
	"ai":   "application/postscript",
}

// SupportedAssetExtensions lists the extensions the C2PA library can embed
// manifests into, in the order shown to users in error messages.
var SupportedAssetExtensions = []string{
	"avi", "avif", "c2pa", "dng", "gif", "heic", "heif", "jpg", "jpeg",
	"m4a", "mov", "mp3", "mp4", "pdf", "png", "svg", "tiff", "wav", "webp",
}

var supportedAssetSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(SupportedAssetExtensions))
	for _, ext := range SupportedAssetExtensions {
		s[ext] = struct{}{}
	}
	return s
}()

// ExtensionToMIME converts a file extension (without the leading dot) to a
// MIME type. The lookup is case-insensitive. Returns an error for unknown
// extensions.
func ExtensionToMIME(extension string) (string, error) {
	mime, ok := extensionMIME[strings.ToLower(extension)]
	if !ok {
		return "", fmt.Errorf("unsupported file format: %s", extension)
	}
	return mime, nil
}

// MIMEFromPath infers the MIME type of a file from its extension.
func MIMEFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("file has no extension: %s", path)
	}
	return ExtensionToMIME(ext)
}

// IsSupportedAssetPath reports whether the file's extension is one of the
// asset formats the C2PA library supports for embedding.
func IsSupportedAssetPath(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, ok := supportedAssetSet[ext]
	return ok
}

// CheckSupportedAssetPaths rejects a batch when any input's extension falls
// outside the supported asset formats. The error names every offending file
// and the supported extensions, and no file in the batch is processed.
func CheckSupportedAssetPaths(paths []string) error {
	var unsupported []string
	for _, path := range paths {
		if !IsSupportedAssetPath(path) {
			unsupported = append(unsupported, path)
		}
	}
	if len(unsupported) == 0 {
		return nil
	}
	return fmt.Errorf("unsupported file type(s): %s (supported extensions: %s)",
		strings.Join(unsupported, ", "), strings.Join(SupportedAssetExtensions, ", "))
}
