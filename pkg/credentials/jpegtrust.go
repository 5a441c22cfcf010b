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
	"fmt"
	"sort"
)

// JPEGTrustContext is the JSON-LD context identifying a JPEG Trust
// indicators document.
const JPEGTrustContext = "https://jpeg.org/jpegtrust/context/v1"

// HashAlgorithmSHA256 names the asset hash algorithm in asset_info.
const HashAlgorithmSHA256 = "sha256"

// BuildJPEGTrustReport reshapes a manifest-store report into the JPEG Trust
// indicators serialization. The store keys manifests by label in an object;
// the indicators form carries them as an array with the label folded into
// each entry, under an @context, with the asset's hash recorded in
// asset_info. assetHash is the hex SHA-256 of the asset file.
func BuildJPEGTrustReport(storeJSON []byte, assetHash string) ([]byte, error) {
	var store struct {
		ActiveManifest   string                     `json:"active_manifest"`
		Manifests        map[string]json.RawMessage `json:"manifests"`
		ValidationStatus json.RawMessage            `json:"validation_status"`
	}
	if err := json.Unmarshal(storeJSON, &store); err != nil {
		return nil, fmt.Errorf("failed to parse manifest store report: %w", err)
	}

	labels := make([]string, 0, len(store.Manifests))
	for label := range store.Manifests {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	manifests := make([]map[string]json.RawMessage, 0, len(labels))
	for _, label := range labels {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(store.Manifests[label], &entry); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", label, err)
		}
		labelJSON, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		entry["label"] = labelJSON
		manifests = append(manifests, entry)
	}

	doc := map[string]any{
		"@context":  JPEGTrustContext,
		"manifests": manifests,
	}
	if store.ActiveManifest != "" {
		doc["active_manifest"] = store.ActiveManifest
	}
	if assetHash != "" {
		doc["asset_info"] = map[string]string{
			"hash": assetHash,
			"alg":  HashAlgorithmSHA256,
		}
	}
	if len(store.ValidationStatus) > 0 {
		doc["validation_status"] = store.ValidationStatus
	}

	return json.MarshalIndent(doc, "", "  ")
}
