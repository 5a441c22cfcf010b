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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// RawSignerFunc signs arbitrary bytes and returns a signature in the raw
// format COSE expects for the algorithm: fixed-width r||s for ECDSA, PSS
// for RSA, and the plain 64-byte signature for Ed25519. The C2PA library
// invokes it through its callback-signer interface.
type RawSignerFunc func(data []byte) ([]byte, error)

// NewRawSigner returns a RawSignerFunc for the given algorithm and private
// key. It fails when the key type does not match the algorithm family.
func NewRawSigner(alg Algorithm, privateKey crypto.PrivateKey) (RawSignerFunc, error) {
	switch alg {
	case ES256, ES384, ES512:
		key, ok := privateKey.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("algorithm %s requires an EC private key, got %T", alg, privateKey)
		}
		return func(data []byte) ([]byte, error) {
			return signECDSA(alg, key, data)
		}, nil
	case PS256, PS384, PS512:
		key, ok := privateKey.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("algorithm %s requires an RSA private key, got %T", alg, privateKey)
		}
		return func(data []byte) ([]byte, error) {
			return signRSAPSS(alg, key, data)
		}, nil
	case Ed25519:
		key, ok := privateKey.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("algorithm ed25519 requires an Ed25519 private key, got %T", privateKey)
		}
		return func(data []byte) ([]byte, error) {
			return ed25519.Sign(key, data), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}
}

// hashFor returns the digest of data for the algorithm's hash function.
func hashFor(alg Algorithm, data []byte) ([]byte, crypto.Hash, error) {
	switch alg {
	case ES256, PS256:
		h := sha256.Sum256(data)
		return h[:], crypto.SHA256, nil
	case ES384, PS384:
		h := sha512.Sum384(data)
		return h[:], crypto.SHA384, nil
	case ES512, PS512:
		h := sha512.Sum512(data)
		return h[:], crypto.SHA512, nil
	default:
		return nil, 0, fmt.Errorf("no hash defined for algorithm: %s", alg)
	}
}

// signECDSA produces a fixed-width r||s signature, the encoding COSE
// requires (not ASN.1 DER).
func signECDSA(alg Algorithm, key *ecdsa.PrivateKey, data []byte) ([]byte, error) {
	expected := map[Algorithm]int{ES256: 256, ES384: 384, ES512: 521}[alg]
	if key.Curve.Params().BitSize != expected {
		return nil, fmt.Errorf("algorithm %s requires a %d-bit EC key, got %d bits",
			alg, expected, key.Curve.Params().BitSize)
	}

	digest, _, err := hashFor(alg, data)
	if err != nil {
		return nil, err
	}

	r, s, err := ecdsa.Sign(rand.Reader, key, digest)
	if err != nil {
		return nil, fmt.Errorf("ECDSA signing failed: %w", err)
	}

	size := (key.Curve.Params().BitSize + 7) / 8
	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig, nil
}

// signRSAPSS signs with RSA-PSS using a salt length equal to the digest
// length, matching the C2PA library's verification expectations.
func signRSAPSS(alg Algorithm, key *rsa.PrivateKey, data []byte) ([]byte, error) {
	digest, hash, err := hashFor(alg, data)
	if err != nil {
		return nil, err
	}

	sig, err := rsa.SignPSS(rand.Reader, key, hash, digest, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       hash,
	})
	if err != nil {
		return nil, fmt.Errorf("RSA-PSS signing failed: %w", err)
	}
	return sig, nil
}
