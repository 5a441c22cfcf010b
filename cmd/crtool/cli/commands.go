// Copyright 2025 Adobe. All rights reserved.
// This file is licensed to you under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License. You may obtain a copy
// of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under
// the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR REPRESENTATIONS
// OF ANY KIND, either express or implied. See the License for the specific language
// governing permissions and limitations under the License.

// Package cli assembles the crtool command tree: sign, extract, and
// validate, plus version and shell-completion plumbing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/lrosenthol/crTool/cmd/crtool/cli/options"
)

var (
	ro = &options.RootOptions{}
)

func New() *cobra.Command {
	var (
		out, stdout *os.File
	)

	cmd := &cobra.Command{
		Use:               "crtool",
		Short:             "Create, embed, and inspect Content Credentials.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if ro.OutputFile != "" {
				var err error
				out, err = os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				stdout = os.Stdout
				os.Stdout = out
				cmd.SetOut(out)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if out != nil {
				_ = out.Close()
				os.Stdout = stdout
			}
		},
	}
	ro.AddFlags(cmd)

	// Add sub-commands.
	cmd.AddCommand(Sign())
	cmd.AddCommand(Extract())
	cmd.AddCommand(Validate())
	cmd.AddCommand(version.Version())
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
