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
	"fmt"
	"os"
	"path/filepath"

	"github.com/theupdateframework/go-tuf/v2/metadata"
)

const (
	DefaultMetadataDir = "metadata"
	DefaultDownloadDir = "downloads"
)

// Env holds the local filesystem state shared by all client operations:
// per-repository metadata namespaces under MetadataRoot and downloaded
// targets under DownloadDir. It is passed explicitly so tests can point
// every operation at a temporary directory.
type Env struct {
	MetadataRoot string
	DownloadDir  string
}

// DefaultEnv returns an Env rooted in the current working directory.
func DefaultEnv() (*Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", err)
	}
	return &Env{
		MetadataRoot: filepath.Join(cwd, DefaultMetadataDir),
		DownloadDir:  filepath.Join(cwd, DefaultDownloadDir),
	}, nil
}

// RepositoryDir returns the metadata directory for a repository.
func (e *Env) RepositoryDir(repositoryURL string) string {
	return filepath.Join(e.MetadataRoot, RepositoryNamespace(repositoryURL))
}

// TrustedRootPath returns where a repository's trusted root metadata is
// stored once the repository has been bootstrapped.
func (e *Env) TrustedRootPath(repositoryURL string) string {
	return filepath.Join(e.RepositoryDir(repositoryURL), fmt.Sprintf("%s.json", metadata.ROOT))
}

// ensureDownloadDir creates the download directory if it is missing.
func (e *Env) ensureDownloadDir() error {
	return os.MkdirAll(e.DownloadDir, 0750)
}
