// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package credentials is the boundary to the external C2PA library. It
// sequences the library's builder, reader, and signer interfaces to embed
// and extract Content Credentials; all manifest construction, cryptographic
// validation, and asset-container rewriting happens inside the library.
package credentials

import (
	"fmt"

	"github.com/contentauth/c2pa-go/pkg/c2pa"

	"github.com/lrosenthol/crTool/pkg/signing"
)

// SignerConfig selects how the C2PA signer is constructed.
type SignerConfig struct {
	// CertPath is the PEM certificate chain.
	CertPath string
	// KeyPath is the PEM private key.
	KeyPath string
	// Algorithm is the signing algorithm; detected from the certificate
	// by the caller when not set explicitly.
	Algorithm signing.Algorithm
	// AllowSelfSigned routes signing through the library's callback-signer
	// interface, which bypasses certificate-chain validation. For
	// development and testing only.
	AllowSelfSigned bool
}

// NewSigner constructs the C2PA signer for the configuration.
//
// With AllowSelfSigned, the private key is parsed in-repo and raw signing
// operations are handed to the library through its callback interface.
// Otherwise the library's own file-based signer performs full certificate
// validation.
func NewSigner(cfg SignerConfig) (c2pa.Signer, error) {
	alg, err := c2pa.GetSigningAlgorithm(cfg.Algorithm.String())
	if err != nil {
		return nil, fmt.Errorf("signing algorithm %q not supported by C2PA library: %w", cfg.Algorithm, err)
	}

	if !cfg.AllowSelfSigned {
		signer, err := c2pa.NewSignerFromFiles(cfg.CertPath, cfg.KeyPath, alg, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create signer: %w", err)
		}
		return signer, nil
	}

	_, certPEM, err := signing.LoadCertificates(cfg.CertPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := signing.LoadPrivateKey(cfg.KeyPath)
	if err != nil {
		return nil, err
	}

	rawSign, err := signing.NewRawSigner(cfg.Algorithm, privateKey)
	if err != nil {
		return nil, err
	}

	signer, err := c2pa.NewCallbackSigner(c2pa.SignerCallback(rawSign), alg, certPEM, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create callback signer: %w", err)
	}
	return signer, nil
}

// ResolveAlgorithm returns the explicitly requested algorithm, or detects
// one from the certificate when the request is empty.
func ResolveAlgorithm(requested string, certPath string) (signing.Algorithm, error) {
	if requested != "" {
		return signing.ParseAlgorithm(requested)
	}
	return signing.DetectAlgorithmFromFile(certPath)
}
