// Copyright 2024 The Update Framework Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License
//
// SPDX-License-Identifier: Apache-2.0
//

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theupdateframework/tap19-ipfs-poc/tufipfs"
)

var rootFile string
var keepExisting bool

var tofuCmd = &cobra.Command{
	Use:     "tofu",
	Aliases: []string{"t"},
	Short:   "Establish trust in a repository on first use",
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if RepositoryURL == "" {
			fmt.Println("Error: required flag(s) \"url\" not set")
			os.Exit(1)
		}
		return TofuCmd()
	},
}

func init() {
	tofuCmd.Flags().StringVarP(&rootFile, "file", "f", "", "location of a trusted root metadata file to install instead of downloading one")
	tofuCmd.Flags().BoolVar(&keepExisting, "keep-existing", false, "fail instead of replacing trust material already installed for the repository")
	rootCmd.AddCommand(tofuCmd)
}

func TofuCmd() error {
	env, err := clientEnv()
	if err != nil {
		return err
	}

	path, err := tufipfs.Bootstrap(env, RepositoryURL, &tufipfs.BootstrapOptions{
		RootFile:     rootFile,
		KeepExisting: keepExisting,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Trusted root metadata for %s written to %s\n", RepositoryURL, path)
	return nil
}
