// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

package options

import (
	"github.com/spf13/cobra"
)

// FlagAdder is implemented by any flag group that can register itself to a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// OutputFlags contains the output path flag shared by sign and extract.
// The path may name a file, or a directory when processing multiple inputs.
type OutputFlags struct {
	// Output is the destination file, or directory for batch runs.
	Output string
}

// AddFlags adds the output path flag to the cobra command.
func (o *OutputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Output file, or directory when processing multiple inputs.")
	_ = cmd.MarkFlagFilename("output")
}

// SignerFlags contains the certificate, key, and algorithm flags for
// signing commands.
type SignerFlags struct {
	// CertPath is the PEM certificate chain.
	CertPath string
	// KeyPath is the PEM private key.
	KeyPath string
	// Algorithm names the signing algorithm; empty means detect it from
	// the certificate's public key.
	Algorithm string
	// AllowSelfSigned permits self-signed certificates by signing through
	// the callback interface, skipping chain validation.
	AllowSelfSigned bool
}

// AddFlags adds signer flags to the cobra command. Certificate and key are
// required.
func (o *SignerFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.CertPath, "cert", "",
		"PEM file containing the signing certificate chain. [required]")
	_ = cmd.MarkFlagFilename("cert", "pem", "crt", "cert")
	_ = cmd.MarkFlagRequired("cert")

	cmd.Flags().StringVar(&o.KeyPath, "key", "",
		"PEM file containing the signing private key. [required]")
	_ = cmd.MarkFlagFilename("key", "pem", "key")
	_ = cmd.MarkFlagRequired("key")

	cmd.Flags().StringVar(&o.Algorithm, "algorithm", "",
		"Signing algorithm (es256, es384, es512, ps256, ps384, ps512, ed25519). Detected from the certificate when omitted.")

	cmd.Flags().BoolVar(&o.AllowSelfSigned, "allow-self-signed", false,
		"Allow signing with a self-signed certificate. For development and testing only.")
}

// AddAllFlags registers multiple flag groups at once.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}
