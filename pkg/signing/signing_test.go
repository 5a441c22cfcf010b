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
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"es256", ES256, false},
		{"ES256", ES256, false},
		{"es384", ES384, false},
		{"es512", ES512, false},
		{"ps256", PS256, false},
		{"ps384", PS384, false},
		{"ps512", PS512, false},
		{"ed25519", Ed25519, false},
		{"Ed25519", Ed25519, false},
		{" es256 ", ES256, false},
		{"rs256", "", true},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAlgorithm(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// selfSignedCert builds a throwaway certificate around the given key pair.
func selfSignedCert(t *testing.T, pub crypto.PublicKey, priv crypto.PrivateKey) *x509.Certificate {
	t.Helper()

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "crtool test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, pub, priv)
	if err != nil {
		t.Fatalf("creating test certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parsing test certificate: %v", err)
	}
	return cert
}

func TestDetectAlgorithm(t *testing.T) {
	p256, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	p384, _ := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	p521, _ := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	rsaKey, _ := rsa.GenerateKey(rand.Reader, 2048)
	edPub, edPriv, _ := ed25519.GenerateKey(rand.Reader)

	tests := []struct {
		name string
		cert *x509.Certificate
		want Algorithm
	}{
		{"p256", selfSignedCert(t, &p256.PublicKey, p256), ES256},
		{"p384", selfSignedCert(t, &p384.PublicKey, p384), ES384},
		{"p521", selfSignedCert(t, &p521.PublicKey, p521), ES512},
		{"rsa", selfSignedCert(t, &rsaKey.PublicKey, rsaKey), PS256},
		{"ed25519", selfSignedCert(t, edPub, edPriv), Ed25519},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectAlgorithm(tt.cert)
			if err != nil {
				t.Fatalf("DetectAlgorithm error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectAlgorithm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectAlgorithmFromFile(t *testing.T) {
	key, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	cert := selfSignedCert(t, &key.PublicKey, key)

	certPath := filepath.Join(t.TempDir(), "cert.pem")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	if err := os.WriteFile(certPath, pemData, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := DetectAlgorithmFromFile(certPath)
	if err != nil {
		t.Fatalf("DetectAlgorithmFromFile error: %v", err)
	}
	if got != ES256 {
		t.Errorf("DetectAlgorithmFromFile = %v, want es256", got)
	}

	if _, err := DetectAlgorithmFromFile(filepath.Join(t.TempDir(), "missing.pem")); err == nil {
		t.Error("expected error for missing certificate file")
	}
}

func TestLoadPrivateKey(t *testing.T) {
	key, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatal(err)
	}

	keyPath := filepath.Join(t.TempDir(), "key.pem")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(keyPath, pemData, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadPrivateKey(keyPath)
	if err != nil {
		t.Fatalf("LoadPrivateKey error: %v", err)
	}
	if _, ok := loaded.(*ecdsa.PrivateKey); !ok {
		t.Errorf("loaded key type = %T, want *ecdsa.PrivateKey", loaded)
	}
}

func TestLoadCertificates(t *testing.T) {
	key, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	cert := selfSignedCert(t, &key.PublicKey, key)

	certPath := filepath.Join(t.TempDir(), "cert.pem")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	if err := os.WriteFile(certPath, pemData, 0o644); err != nil {
		t.Fatal(err)
	}

	certs, raw, err := LoadCertificates(certPath)
	if err != nil {
		t.Fatalf("LoadCertificates error: %v", err)
	}
	if len(certs) != 1 {
		t.Errorf("got %d certificates, want 1", len(certs))
	}
	if len(raw) == 0 {
		t.Error("raw PEM bytes should be returned")
	}
}

func TestNewRawSignerECDSA(t *testing.T) {
	key, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	signer, err := NewRawSigner(ES256, key)
	if err != nil {
		t.Fatalf("NewRawSigner error: %v", err)
	}

	data := []byte("claim bytes to sign")
	sig, err := signer(data)
	if err != nil {
		t.Fatalf("signer error: %v", err)
	}
	if len(sig) != 64 {
		t.Fatalf("ES256 signature length = %d, want 64 (r||s)", len(sig))
	}

	digest := sha256.Sum256(data)
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if !ecdsa.Verify(&key.PublicKey, digest[:], r, s) {
		t.Error("ES256 signature did not verify")
	}
}

func TestNewRawSignerECDSACurveMismatch(t *testing.T) {
	key, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	signer, err := NewRawSigner(ES384, key)
	if err != nil {
		t.Fatalf("NewRawSigner error: %v", err)
	}
	if _, err := signer([]byte("data")); err == nil {
		t.Error("ES384 with a P-256 key should fail at signing time")
	}
}

func TestNewRawSignerRSAPSS(t *testing.T) {
	key, _ := rsa.GenerateKey(rand.Reader, 2048)
	signer, err := NewRawSigner(PS256, key)
	if err != nil {
		t.Fatalf("NewRawSigner error: %v", err)
	}

	data := []byte("claim bytes to sign")
	sig, err := signer(data)
	if err != nil {
		t.Fatalf("signer error: %v", err)
	}

	digest := sha256.Sum256(data)
	err = rsa.VerifyPSS(&key.PublicKey, crypto.SHA256, digest[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		t.Errorf("PS256 signature did not verify: %v", err)
	}
}

func TestNewRawSignerEd25519(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(rand.Reader)
	signer, err := NewRawSigner(Ed25519, priv)
	if err != nil {
		t.Fatalf("NewRawSigner error: %v", err)
	}

	data := []byte("claim bytes to sign")
	sig, err := signer(data)
	if err != nil {
		t.Fatalf("signer error: %v", err)
	}
	if !ed25519.Verify(pub, data, sig) {
		t.Error("Ed25519 signature did not verify")
	}
}

func TestNewRawSignerKeyMismatch(t *testing.T) {
	rsaKey, _ := rsa.GenerateKey(rand.Reader, 2048)
	if _, err := NewRawSigner(ES256, rsaKey); err == nil {
		t.Error("ES256 with an RSA key should be rejected")
	}

	ecKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if _, err := NewRawSigner(PS256, ecKey); err == nil {
		t.Error("PS256 with an EC key should be rejected")
	}
	if _, err := NewRawSigner(Ed25519, ecKey); err == nil {
		t.Error("ed25519 with an EC key should be rejected")
	}
}
