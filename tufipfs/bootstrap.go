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

package tufipfs

import (
	"net/url"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/theupdateframework/go-tuf/v2/metadata/fetcher"
)

// Transport bounds for the initial root download, matching the defaults the
// metadata client applies to root metadata.
const (
	rootMaxLength    = 512000
	bootstrapTimeout = 15 * time.Second
)

// BootstrapOptions adjusts trust-on-first-use behavior.
type BootstrapOptions struct {
	// RootFile points at local trusted root metadata to install instead of
	// downloading version 1 of the repository's root over the network.
	RootFile string

	// KeepExisting refuses to replace trust material that is already
	// installed for the repository. The default replaces it; once a
	// repository has been trusted that weakens the trust-on-first-use
	// guarantee, so cautious callers should set this.
	KeepExisting bool

	// Fetcher overrides the transport used to download the root metadata.
	Fetcher fetcher.Fetcher
}

// Bootstrap establishes the initial root of trust for a repository
// (trust-on-first-use) and returns the path of the installed root metadata.
// It creates the repository's namespace directory under env.MetadataRoot and
// installs {repositoryURL}/metadata/1.root.json there as root.json. The
// document is accepted as-is: trust-on-first-use assumes no adversary is
// present at bootstrap time. If Bootstrap fails the material at the returned
// location must not be treated as trusted; it may be absent or truncated.
func Bootstrap(env *Env, repositoryURL string, opts *BootstrapOptions) (string, error) {
	if opts == nil {
		opts = &BootstrapOptions{}
	}
	metadataDir := env.RepositoryDir(repositoryURL)
	rootPath := env.TrustedRootPath(repositoryURL)

	if opts.KeepExisting {
		if _, err := os.Stat(rootPath); err == nil {
			return "", ErrExistingTrustMaterial{Path: rootPath}
		}
	}

	if err := os.MkdirAll(metadataDir, 0750); err != nil {
		return "", ErrBootstrapFilesystem{Path: metadataDir, Err: err}
	}

	var rootBytes []byte
	if opts.RootFile != "" {
		data, err := os.ReadFile(opts.RootFile)
		if err != nil {
			return "", ErrBootstrapFilesystem{Path: opts.RootFile, Err: err}
		}
		rootBytes = data
	} else {
		rootURL, err := url.JoinPath(repositoryURL, "metadata", "1.root.json")
		if err != nil {
			return "", ErrBootstrapDownload{URL: repositoryURL, Err: err}
		}
		f := opts.Fetcher
		if f == nil {
			f = &fetcher.DefaultFetcher{}
		}
		log.Debugf("Downloading initial root metadata from %s", rootURL)
		rootBytes, err = f.DownloadFile(rootURL, rootMaxLength, bootstrapTimeout)
		if err != nil {
			return "", ErrBootstrapDownload{URL: rootURL, Err: err}
		}
	}

	if err := os.WriteFile(rootPath, rootBytes, 0644); err != nil {
		return "", ErrBootstrapFilesystem{Path: rootPath, Err: err}
	}
	log.Debugf("Trusted root metadata for %s written to %s", repositoryURL, rootPath)
	return rootPath, nil
}
