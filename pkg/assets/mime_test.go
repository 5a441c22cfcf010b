// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package assets

import (
	"strings"
	"testing"
)

func TestExtensionToMIME(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"JPG", "image/jpeg"},
		{"png", "image/png"},
		{"gif", "image/gif"},
		{"tif", "image/tiff"},
		{"tiff", "image/tiff"},
		{"svg", "image/svg+xml"},
		{"webp", "image/webp"},
		{"dng", "image/x-adobe-dng"},
		{"heic", "image/heic"},
		{"heif", "image/heif"},
		{"avif", "image/avif"},
		{"avi", "video/avi"},
		{"c2pa", "application/c2pa"},
		{"mpeg", "video/mpeg"},
		{"mp4", "video/mp4"},
		{"mov", "video/quicktime"},
		{"qt", "video/quicktime"},
		{"m4a", "audio/mp4"},
		{"mp3", "audio/mpeg"},
		{"wav", "audio/wav"},
		{"aiff", "audio/aiff"},
		{"ogg", "audio/ogg"},
		{"pdf", "application/pdf"},
		{"ai", "application/postscript"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := ExtensionToMIME(tt.ext)
			if err != nil {
				t.Fatalf("ExtensionToMIME(%q) error: %v", tt.ext, err)
			}
			if got != tt.want {
				t.Errorf("ExtensionToMIME(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestExtensionToMIMEUnknown(t *testing.T) {
	for _, ext := range []string{"exe", "txt", ""} {
		if _, err := ExtensionToMIME(ext); err == nil {
			t.Errorf("ExtensionToMIME(%q) expected error", ext)
		}
	}
}

func TestMIMEFromPath(t *testing.T) {
	got, err := MIMEFromPath("/some/dir/Dog.JPG")
	if err != nil {
		t.Fatalf("MIMEFromPath error: %v", err)
	}
	if got != "image/jpeg" {
		t.Errorf("MIMEFromPath = %q, want image/jpeg", got)
	}

	if _, err := MIMEFromPath("/some/dir/noext"); err == nil {
		t.Error("MIMEFromPath without extension expected error")
	}
}

func TestIsSupportedAssetPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"clip.mp4", true},
		{"doc.pdf", true},
		{"raw.dng", true},
		{"manifest.c2pa", true},
		{"icon.ico", false}, // mapped MIME but not embeddable
		{"notes.txt", false},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSupportedAssetPath(tt.path); got != tt.want {
				t.Errorf("IsSupportedAssetPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckSupportedAssetPaths(t *testing.T) {
	if err := CheckSupportedAssetPaths([]string{"a.jpg", "b.mp4", "c.pdf"}); err != nil {
		t.Fatalf("CheckSupportedAssetPaths on supported inputs: %v", err)
	}

	// Extensions with a MIME mapping but no embed support still fail the
	// batch before any file is processed.
	err := CheckSupportedAssetPaths([]string{"a.jpg", "layers.psd", "icon.ico", "frame.bmp", "tune.mid"})
	if err == nil {
		t.Fatal("CheckSupportedAssetPaths accepted unsupported inputs")
	}
	wantPrefix := "unsupported file type(s): layers.psd, icon.ico, frame.bmp, tune.mid (supported extensions: "
	if !strings.HasPrefix(err.Error(), wantPrefix) {
		t.Errorf("error = %q, want prefix %q", err, wantPrefix)
	}
	if !strings.Contains(err.Error(), "jpg") {
		t.Errorf("error %q does not list the supported extensions", err)
	}
}
