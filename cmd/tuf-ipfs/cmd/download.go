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
	"github.com/spf13/viper"

	"github.com/theupdateframework/tap19-ipfs-poc/tufipfs"
)

var gatewayURL string

var downloadCmd = &cobra.Command{
	Use:     "download",
	Aliases: []string{"d"},
	Short:   "Download a target file through an IPFS gateway",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if RepositoryURL == "" {
			fmt.Println("Error: required flag(s) \"url\" not set")
			os.Exit(1)
		}
		if gatewayURL == "" {
			gatewayURL = viper.GetString("gateway")
		}
		if gatewayURL == "" {
			fmt.Println("Error: required flag(s) \"gateway\" not set")
			os.Exit(1)
		}
		return DownloadCmd(args[0])
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&gatewayURL, "gateway", "g", "", "URL of the IPFS gateway (env: TUF_IPFS_GATEWAY)")
	rootCmd.AddCommand(downloadCmd)
}

func DownloadCmd(target string) error {
	env, err := clientEnv()
	if err != nil {
		return err
	}

	client := tufipfs.NewClient(env, tufipfs.NewHTTPGateway(gatewayURL))
	result, err := client.Download(RepositoryURL, target)
	if err != nil {
		return err
	}

	// an unlisted target is a valid outcome, not a failure
	if !result.Found {
		fmt.Printf("Target %s not found in the trusted metadata of %s\n", target, RepositoryURL)
		return nil
	}
	if result.Cached {
		fmt.Printf("Target %s is already present at - %s\n", target, result.Path)
		return nil
	}

	fmt.Printf("Successfully downloaded target %s at - %s\n", target, result.Path)
	return nil
}
