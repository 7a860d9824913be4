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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theupdateframework/go-tuf/v2/metadata"
)

// testTarget builds target metadata for data the way an IPFS-pinning
// repository publishes it: sha256 digest plus the content identifier in the
// custom section.
func testTarget(name, cid string, data []byte) *metadata.TargetFiles {
	digest := sha256.Sum256(data)
	custom := json.RawMessage(fmt.Sprintf(`{"cid": %q}`, cid))
	return &metadata.TargetFiles{
		Length: int64(len(data)),
		Hashes: metadata.Hashes{"sha256": digest[:]},
		Custom: &custom,
		Path:   name,
	}
}

func TestFindCachedMiss(t *testing.T) {
	dir := t.TempDir()
	target := testTarget("app.bin", "Qm123", []byte("artifact bytes"))

	path, ok := FindCached(target, dir)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestFindCachedHit(t *testing.T) {
	dir := t.TempDir()
	data := []byte("artifact bytes")
	target := testTarget("app.bin", "Qm123", data)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.bin"), data, 0644))

	path, ok := FindCached(target, dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "app.bin"), path)
}

func TestFindCachedStaleContent(t *testing.T) {
	dir := t.TempDir()
	target := testTarget("app.bin", "Qm123", []byte("current artifact"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.bin"), []byte("previous artifact"), 0644))

	// a file that no longer matches the trusted metadata is a miss
	_, ok := FindCached(target, dir)
	assert.False(t, ok)
}

func TestFindCachedEscapesTargetName(t *testing.T) {
	dir := t.TempDir()
	data := []byte("nested artifact")
	target := testTarget("demo/app.bin", "Qm123", data)

	// nested target names become flat, URL escaped file names
	expected := filepath.Join(dir, "demo%2Fapp.bin")
	require.NoError(t, os.WriteFile(expected, data, 0644))

	path, ok := FindCached(target, dir)
	assert.True(t, ok)
	assert.Equal(t, expected, path)
}

func TestTargetCID(t *testing.T) {
	target := testTarget("app.bin", "Qm123", []byte("data"))
	cid, ok := targetCID(target)
	assert.True(t, ok)
	assert.Equal(t, "Qm123", cid)
}

func TestTargetCIDMissing(t *testing.T) {
	target := testTarget("app.bin", "Qm123", []byte("data"))
	target.Custom = nil
	_, ok := targetCID(target)
	assert.False(t, ok)

	empty := json.RawMessage(`{}`)
	target.Custom = &empty
	_, ok = targetCID(target)
	assert.False(t, ok)

	malformed := json.RawMessage(`"cid"`)
	target.Custom = &malformed
	_, ok = targetCID(target)
	assert.False(t, ok)
}
