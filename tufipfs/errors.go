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
)

// Error types follow the convention of the TUF metadata API: small exported
// structs so callers can classify a failure with errors.As and decide whether
// to re-bootstrap, retry the network or give up. All errors are terminal for
// the current operation; nothing here retries.

// ErrBootstrapDownload - the initial root metadata could not be downloaded
type ErrBootstrapDownload struct {
	URL string
	Err error
}

func (e ErrBootstrapDownload) Error() string {
	return fmt.Sprintf("failed to download initial root metadata from %s: %v", e.URL, e.Err)
}

func (e ErrBootstrapDownload) Unwrap() error { return e.Err }

// ErrBootstrapFilesystem - the repository namespace or its trust material
// could not be created locally
type ErrBootstrapFilesystem struct {
	Path string
	Err  error
}

func (e ErrBootstrapFilesystem) Error() string {
	return fmt.Sprintf("failed to write trust material at %s: %v", e.Path, e.Err)
}

func (e ErrBootstrapFilesystem) Unwrap() error { return e.Err }

// ErrExistingTrustMaterial - bootstrap was asked to keep existing trust
// material and the repository already has some
type ErrExistingTrustMaterial struct {
	Path string
}

func (e ErrExistingTrustMaterial) Error() string {
	return fmt.Sprintf("trust material already present at %s, refusing to replace it", e.Path)
}

// ErrNotBootstrapped - the repository has no trusted root metadata yet
type ErrNotBootstrapped struct {
	MetadataDir string
}

func (e ErrNotBootstrapped) Error() string {
	return fmt.Sprintf("no trusted root metadata in %s - run the tofu command or place a trusted root.json there manually", e.MetadataDir)
}

// ErrUntrustedMetadata - a trusted metadata set could not be established,
// either because the repository metadata failed verification or because it
// could not be loaded at all
type ErrUntrustedMetadata struct {
	Err error
}

func (e ErrUntrustedMetadata) Error() string {
	return fmt.Sprintf("failed to establish trusted metadata: %v", e.Err)
}

func (e ErrUntrustedMetadata) Unwrap() error { return e.Err }

// ErrNoCID - the trusted metadata for a target carries no content identifier
type ErrNoCID struct {
	Target string
}

func (e ErrNoCID) Error() string {
	return fmt.Sprintf("target %s has no content identifier in its metadata", e.Target)
}

// ErrGatewayFetch - the content-addressing gateway could not deliver the
// artifact, or delivered bytes inconsistent with the trusted metadata
type ErrGatewayFetch struct {
	CID string
	Err error
}

func (e ErrGatewayFetch) Error() string {
	return fmt.Sprintf("failed to fetch cid %s through gateway: %v", e.CID, e.Err)
}

func (e ErrGatewayFetch) Unwrap() error { return e.Err }

// ErrArtifactFilesystem - the download area or an artifact file could not be
// written
type ErrArtifactFilesystem struct {
	Path string
	Err  error
}

func (e ErrArtifactFilesystem) Error() string {
	return fmt.Sprintf("failed to write artifact at %s: %v", e.Path, e.Err)
}

func (e ErrArtifactFilesystem) Unwrap() error { return e.Err }
