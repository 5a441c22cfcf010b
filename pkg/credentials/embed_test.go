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
	"encoding/json"
	"testing"

	"github.com/lrosenthol/crTool/pkg/thumbnail"
)

func TestWithThumbnailRef(t *testing.T) {
	doc := []byte(`{"title": "Test.jpg", "claim_generator_info": [{"name": "crtool"}]}`)

	got, err := withThumbnailRef(doc, "thumbnail.jpg")
	if err != nil {
		t.Fatalf("withThumbnailRef() error = %v", err)
	}

	var obj struct {
		Title     string `json:"title"`
		Thumbnail struct {
			Format     string `json:"format"`
			Identifier string `json:"identifier"`
		} `json:"thumbnail"`
	}
	if err := json.Unmarshal(got, &obj); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if obj.Title != "Test.jpg" {
		t.Errorf("title = %q, want Test.jpg", obj.Title)
	}
	if obj.Thumbnail.Format != thumbnail.MIMEType {
		t.Errorf("thumbnail.format = %q, want %q", obj.Thumbnail.Format, thumbnail.MIMEType)
	}
	if obj.Thumbnail.Identifier != "thumbnail.jpg" {
		t.Errorf("thumbnail.identifier = %q, want thumbnail.jpg", obj.Thumbnail.Identifier)
	}
}

func TestWithThumbnailRefRejectsNonObject(t *testing.T) {
	if _, err := withThumbnailRef([]byte(`[1, 2]`), "thumbnail.jpg"); err == nil {
		t.Error("withThumbnailRef() succeeded on a JSON array, want error")
	}
}

func TestIsImageMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{mimeType: "image/jpeg", want: true},
		{mimeType: "image/png", want: true},
		{mimeType: "video/mp4", want: false},
		{mimeType: "application/pdf", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.mimeType, func(t *testing.T) {
			if got := isImageMIME(tc.mimeType); got != tc.want {
				t.Errorf("isImageMIME(%q) = %v, want %v", tc.mimeType, got, tc.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	ok := Summary{Total: 3, Succeeded: 3}
	if err := ok.Err(); err != nil {
		t.Errorf("Err() = %v for a clean batch, want nil", err)
	}

	bad := Summary{Total: 3, Succeeded: 1, Failed: 2}
	if err := bad.Err(); err == nil {
		t.Error("Err() = nil for a batch with failures, want error")
	}
	if got, want := bad.String(), "1 of 3 file(s) processed, 2 failed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
