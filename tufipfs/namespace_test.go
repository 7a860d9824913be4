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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryNamespaceDeterministic(t *testing.T) {
	for _, url := range []string{
		"http://x/repo",
		"https://example.com/tuf",
		"https://example.com/tuf/",
	} {
		assert.Equal(t, RepositoryNamespace(url), RepositoryNamespace(url))
	}
}

func TestRepositoryNamespaceDistinct(t *testing.T) {
	urls := []string{
		"http://x/repo",
		"http://x/repo/",
		"https://x/repo",
		"https://example.com/tuf",
		"https://example.org/tuf",
	}
	seen := map[string]string{}
	for _, url := range urls {
		ns := RepositoryNamespace(url)
		assert.Len(t, ns, namespaceLength)
		prev, ok := seen[ns]
		assert.False(t, ok, "namespace collision between %s and %s", url, prev)
		seen[ns] = url
	}
}

func TestRepositoryNamespaceValue(t *testing.T) {
	// sha256("http://x/repo") truncated to eight hex characters
	digest := sha256.Sum256([]byte("http://x/repo"))
	expected := hex.EncodeToString(digest[:])[:8]

	assert.Equal(t, expected, RepositoryNamespace("http://x/repo"))
	assert.Equal(t, "41518fbc", RepositoryNamespace("http://x/repo"))
}

func TestEnvRepositoryDir(t *testing.T) {
	env := &Env{MetadataRoot: "/tmp/meta", DownloadDir: "/tmp/dl"}

	dir := env.RepositoryDir("http://x/repo")
	assert.Equal(t, filepath.Join("/tmp/meta", "41518fbc"), dir)
	assert.Equal(t, filepath.Join(dir, "root.json"), env.TrustedRootPath("http://x/repo"))
}
