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
	"strings"

	"github.com/theupdateframework/go-tuf/v2/metadata"
	"github.com/theupdateframework/go-tuf/v2/metadata/config"
	"github.com/theupdateframework/go-tuf/v2/metadata/updater"
)

// TrustService is the slice of the TUF client workflow the download
// orchestration depends on: refreshing the trusted metadata set and
// resolving a target name against it. Signature verification, root rotation
// and freshness checks all happen behind Refresh.
type TrustService interface {
	// Refresh downloads, verifies and persists the top-level metadata.
	Refresh() error

	// LookupTarget resolves a target name against the trusted metadata.
	// The boolean is false when the metadata does not list the target;
	// that is a valid resolution outcome, not an error.
	LookupTarget(name string) (*metadata.TargetFiles, bool, error)
}

// trustServiceFactory builds a TrustService over a repository's local
// namespace. Client holds one so tests can substitute a fake.
type trustServiceFactory func(env *Env, repositoryURL string) (TrustService, error)

// tufTrustService adapts a go-tuf Updater to the TrustService contract.
type tufTrustService struct {
	up *updater.Updater
}

// newTUFTrustService builds a go-tuf Updater rooted in the repository's
// local namespace. The trusted root.json must already be present there.
func newTUFTrustService(env *Env, repositoryURL string) (TrustService, error) {
	rootBytes, err := os.ReadFile(env.TrustedRootPath(repositoryURL))
	if err != nil {
		return nil, err
	}
	metadataURL, err := url.JoinPath(repositoryURL, "metadata")
	if err != nil {
		return nil, err
	}
	cfg, err := config.New(metadataURL, rootBytes)
	if err != nil {
		return nil, err
	}
	cfg.LocalMetadataDir = env.RepositoryDir(repositoryURL)
	cfg.LocalTargetsDir = env.DownloadDir
	// targets are fetched through the content-addressing gateway, never
	// from hash-prefixed paths on the repository host
	cfg.PrefixTargetsWithHash = false

	up, err := updater.New(cfg)
	if err != nil {
		return nil, err
	}
	return &tufTrustService{up: up}, nil
}

func (s *tufTrustService) Refresh() error {
	return s.up.Refresh()
}

func (s *tufTrustService) LookupTarget(name string) (*metadata.TargetFiles, bool, error) {
	info, err := s.up.GetTargetInfo(name)
	if err != nil {
		// go-tuf reports an unlisted target as an error; after a
		// successful refresh that is a resolution outcome, not a failure
		if strings.Contains(err.Error(), "not found") {
			return nil, false, nil
		}
		return nil, false, err
	}
	return info, true, nil
}
