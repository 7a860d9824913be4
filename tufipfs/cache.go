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
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"

	"github.com/theupdateframework/go-tuf/v2/metadata"
)

// targetPath derives the local artifact location for a target. The URL
// escaped target name keeps nested target paths as flat file names in the
// download directory.
func targetPath(downloadDir string, target *metadata.TargetFiles) string {
	return filepath.Join(downloadDir, url.QueryEscape(target.Path))
}

// targetCustom is the custom section of targets metadata produced by
// repositories that pin their artifacts on IPFS.
type targetCustom struct {
	CID string `json:"cid"`
}

// targetCID extracts the content identifier from a target's custom metadata.
func targetCID(target *metadata.TargetFiles) (string, bool) {
	if target.Custom == nil {
		return "", false
	}
	var custom targetCustom
	if err := json.Unmarshal(*target.Custom, &custom); err != nil {
		return "", false
	}
	if custom.CID == "" {
		return "", false
	}
	return custom.CID, true
}

// FindCached reports whether the artifact described by target is already
// present at its expected location under downloadDir and consistent with the
// target's length and hashes. It is strictly a read-only probe: no network
// access and no mutation of the download area. A missing or stale file is a
// miss, never an error.
func FindCached(target *metadata.TargetFiles, downloadDir string) (string, bool) {
	path := targetPath(downloadDir, target)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if err := target.VerifyLengthHashes(data); err != nil {
		return "", false
	}
	return path, true
}
