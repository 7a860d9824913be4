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
	"crypto/sha256"
	"encoding/hex"
)

// namespaceLength is the number of hex characters kept from the digest.
// Eight characters keep directory names readable while making accidental
// collisions between repository URLs unlikely.
const namespaceLength = 8

// RepositoryNamespace derives the local storage namespace for a repository
// from its base URL. The same URL always maps to the same namespace, so
// independent client invocations agree on where a repository's trusted state
// lives without any registry or mapping file.
func RepositoryNamespace(repositoryURL string) string {
	digest := sha256.Sum256([]byte(repositoryURL))
	return hex.EncodeToString(digest[:])[:namespaceLength]
}
