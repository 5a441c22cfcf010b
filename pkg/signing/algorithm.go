// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package signing provides the signature-callback glue between the CLI and
// the C2PA library: signing-algorithm parsing and certificate-based
// detection, PEM key and certificate loading, and raw-key signing
// operations in the formats COSE signatures require.
package signing

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"os"
	"strings"
)

// Algorithm identifies a C2PA signing algorithm.
type Algorithm string

// Signing algorithms supported by the C2PA library.
const (
	ES256   Algorithm = "es256"
	ES384   Algorithm = "es384"
	ES512   Algorithm = "es512"
	PS256   Algorithm = "ps256"
	PS384   Algorithm = "ps384"
	PS512   Algorithm = "ps512"
	Ed25519 Algorithm = "ed25519"
)

// String returns the algorithm name as passed to the C2PA library.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm parses an algorithm name case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es256":
		return ES256, nil
	case "es384":
		return ES384, nil
	case "es512":
		return ES512, nil
	case "ps256":
		return PS256, nil
	case "ps384":
		return PS384, nil
	case "ps512":
		return PS512, nil
	case "ed25519":
		return Ed25519, nil
	default:
		return "", fmt.Errorf("unsupported signing algorithm: %s", s)
	}
}

// DetectAlgorithm determines the signing algorithm from a certificate's
// public key. EC keys map by curve (P-256, P-384, P-521), RSA keys default
// to ps256, and Ed25519 keys map to ed25519.
func DetectAlgorithm(cert *x509.Certificate) (Algorithm, error) {
	switch pub := cert.PublicKey.(type) {
	case *ecdsa.PublicKey:
		switch pub.Curve {
		case elliptic.P256():
			return ES256, nil
		case elliptic.P384():
			return ES384, nil
		case elliptic.P521():
			return ES512, nil
		default:
			return "", fmt.Errorf("unsupported EC curve: %s", pub.Curve.Params().Name)
		}
	case *rsa.PublicKey:
		// PS256 is the common choice regardless of key size.
		return PS256, nil
	case ed25519.PublicKey:
		return Ed25519, nil
	default:
		return "", fmt.Errorf("unsupported public key type: %T", cert.PublicKey)
	}
}

// DetectAlgorithmFromFile reads a PEM certificate file and determines the
// signing algorithm from the leaf certificate's public key.
func DetectAlgorithmFromFile(certPath string) (Algorithm, error) {
	data, err := os.ReadFile(certPath)
	if err != nil {
		return "", fmt.Errorf("failed to read certificate file: %w", err)
	}

	certs, err := parseCertificatesPEM(data)
	if err != nil {
		return "", err
	}

	return DetectAlgorithm(certs[0])
}
