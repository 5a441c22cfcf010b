// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package signing

import (
	"crypto"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

// LoadPrivateKey loads an unencrypted PEM private key from disk.
// PKCS#8, PKCS#1 (RSA), and SEC 1 (EC) encodings are accepted.
func LoadPrivateKey(keyPath string) (crypto.PrivateKey, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	key, err := cryptoutils.UnmarshalPEMToPrivateKey(data, cryptoutils.SkipPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key PEM %q: %w", keyPath, err)
	}
	return key, nil
}

// LoadCertificates loads a PEM certificate chain from disk. It returns the
// parsed certificates (leaf first) along with the raw PEM bytes, which the
// C2PA library consumes directly when constructing a signer.
func LoadCertificates(certPath string) ([]*x509.Certificate, []byte, error) {
	data, err := os.ReadFile(certPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read certificate file: %w", err)
	}

	certs, err := parseCertificatesPEM(data)
	if err != nil {
		return nil, nil, err
	}
	return certs, data, nil
}

func parseCertificatesPEM(data []byte) ([]*x509.Certificate, error) {
	certs, err := cryptoutils.UnmarshalCertificatesFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate PEM: %w", err)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("no certificates found in PEM data")
	}
	return certs, nil
}
