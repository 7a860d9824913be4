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
	"os"

	log "github.com/sirupsen/logrus"
)

// artifactMaxLength caps a gateway retrieval when the trusted metadata does
// not state the target's length.
const artifactMaxLength = 5000000

// TargetResult is the outcome of a resolve-and-fetch operation. Found is
// false when the trusted metadata does not list the requested target; the
// repository is fine, it just does not have this artifact, so that outcome
// carries a nil error. Cached marks artifacts served from the local download
// area without touching the gateway.
type TargetResult struct {
	Path   string
	Found  bool
	Cached bool
}

// Client drives the resolve-and-fetch workflow for one repository at a time:
// preflight trust check, metadata refresh, target resolution, cache probe
// and gateway retrieval. Every operation is synchronous and performs no
// retries; concurrent calls against the same Env race on its directories and
// must be serialized by the caller.
type Client struct {
	env      *Env
	gateway  Gateway
	newTrust trustServiceFactory
}

// NewClient returns a Client operating on env and fetching artifacts through
// gateway.
func NewClient(env *Env, gateway Gateway) *Client {
	return &Client{
		env:      env,
		gateway:  gateway,
		newTrust: newTUFTrustService,
	}
}

// Download resolves targetName through the repository's trusted metadata and
// makes the artifact available locally, fetching its bytes through the
// content-addressing gateway only on a cache miss. The repository must have
// been bootstrapped first; Download performs no network access before that
// check passes.
func (c *Client) Download(repositoryURL, targetName string) (*TargetResult, error) {
	if _, err := os.Stat(c.env.TrustedRootPath(repositoryURL)); err != nil {
		return nil, ErrNotBootstrapped{MetadataDir: c.env.RepositoryDir(repositoryURL)}
	}

	if err := c.env.ensureDownloadDir(); err != nil {
		return nil, ErrArtifactFilesystem{Path: c.env.DownloadDir, Err: err}
	}

	trust, err := c.newTrust(c.env, repositoryURL)
	if err != nil {
		return nil, ErrUntrustedMetadata{Err: err}
	}
	if err := trust.Refresh(); err != nil {
		return nil, ErrUntrustedMetadata{Err: err}
	}

	targetInfo, ok, err := trust.LookupTarget(targetName)
	if err != nil {
		return nil, ErrUntrustedMetadata{Err: err}
	}
	if !ok {
		log.Debugf("Target %s is not listed in the trusted metadata", targetName)
		return &TargetResult{}, nil
	}

	if path, ok := FindCached(targetInfo, c.env.DownloadDir); ok {
		log.Debugf("Target %s is already present at %s", targetName, path)
		return &TargetResult{Path: path, Found: true, Cached: true}, nil
	}

	cid, ok := targetCID(targetInfo)
	if !ok {
		return nil, ErrNoCID{Target: targetName}
	}
	maxLength := targetInfo.Length
	if maxLength == 0 {
		maxLength = artifactMaxLength
	}
	data, err := c.gateway.Retrieve(cid, maxLength)
	if err != nil {
		return nil, ErrGatewayFetch{CID: cid, Err: err}
	}
	// the gateway is trusted to return bytes matching the identifier; the
	// length and digests signed into the metadata are still checked
	if err := targetInfo.VerifyLengthHashes(data); err != nil {
		return nil, ErrGatewayFetch{CID: cid, Err: err}
	}

	path := targetPath(c.env.DownloadDir, targetInfo)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, ErrArtifactFilesystem{Path: path, Err: err}
	}
	log.Debugf("Downloaded target %s at %s", targetName, path)
	return &TargetResult{Path: path, Found: true}, nil
}
