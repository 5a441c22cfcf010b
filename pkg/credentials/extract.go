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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/contentauth/c2pa-go/pkg/c2pa"

	"github.com/lrosenthol/crTool/pkg/assets"
	"github.com/lrosenthol/crTool/pkg/logging"
)

// ExtractOptions configures an Extractor.
type ExtractOptions struct {
	// JPEGTrust selects the JPEG Trust indicators serialization instead of
	// the standard manifest-store report.
	JPEGTrust bool
	// Logger receives per-file progress; defaults to the package default.
	Logger logging.Logger
}

// Extractor reads embedded Content Credentials out of assets and writes them
// as JSON reports.
type Extractor struct {
	opts ExtractOptions
	log  logging.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ExtractOptions) *Extractor {
	return &Extractor{opts: opts, log: logging.Ensure(opts.Logger)}
}

// ExtractFile extracts the manifest store from one asset and writes the
// report next to the resolved output path, which is returned. Assets without
// Content Credentials are an error.
func (e *Extractor) ExtractFile(input, output string) (string, error) {
	report, err := e.readReport(input)
	if err != nil {
		return "", err
	}

	outPath, err := assets.ResolveExtractionOutputPath(input, output, e.opts.JPEGTrust)
	if err != nil {
		return "", err
	}
	if err := assets.EnsureParentDir(outPath); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, report, 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest report: %w", err)
	}
	return outPath, nil
}

// ExtractAll extracts every input, continuing past per-file failures.
// Failures are logged and counted in the returned summary. A canceled
// context stops the batch; unprocessed files count as failed.
func (e *Extractor) ExtractAll(ctx context.Context, inputs []string, output string) Summary {
	summary := Summary{Total: len(inputs)}
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			e.log.Error("aborting batch: %v", err)
			summary.Failed = summary.Total - summary.Succeeded
			return summary
		}
		outPath, err := e.ExtractFile(input, output)
		if err != nil {
			e.log.Warn("skipping %s: %v", input, err)
			summary.Failed++
			continue
		}
		e.log.Info("extracted %s -> %s", input, outPath)
		summary.Succeeded++
	}
	return summary
}

// readReport reads the asset's manifest store and renders it in the
// configured serialization.
func (e *Extractor) readReport(input string) ([]byte, error) {
	mimeType, err := assets.MIMEFromPath(input)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", input, err)
	}
	defer f.Close()

	reader, err := c2pa.FromStream(f, mimeType)
	if err != nil {
		return nil, fmt.Errorf("no Content Credentials in %s: %w", input, err)
	}
	storeJSON := []byte(reader.Json())

	if e.opts.JPEGTrust {
		hash, err := hashFile(f)
		if err != nil {
			return nil, err
		}
		return BuildJPEGTrustReport(storeJSON, hash)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, storeJSON, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format manifest report: %w", err)
	}
	return pretty.Bytes(), nil
}

// hashFile returns the hex SHA-256 of the file, rewinding first.
func hashFile(f *os.File) (string, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", f.Name(), err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
