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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theupdateframework/go-tuf/v2/metadata"
)

func TestHTTPGatewayRetrieve(t *testing.T) {
	content := []byte("pinned artifact")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the gateway resolves identifiers under the /ipfs/ path
		assert.Equal(t, "/ipfs/Qm123", r.URL.Path)
		_, _ = w.Write(content)
	}))
	t.Cleanup(srv.Close)

	gw := NewHTTPGateway(srv.URL)
	data, err := gw.Retrieve("Qm123", int64(len(content)))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestHTTPGatewayTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ipfs/Qm123", r.URL.Path)
		_, _ = w.Write([]byte("x"))
	}))
	t.Cleanup(srv.Close)

	// base URLs with and without a trailing slash resolve identically
	for _, base := range []string{srv.URL, srv.URL + "/"} {
		gw := NewHTTPGateway(base)
		_, err := gw.Retrieve("Qm123", 10)
		require.NoError(t, err)
	}
}

func TestHTTPGatewayNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	gw := NewHTTPGateway(srv.URL)
	_, err := gw.Retrieve("QmMissing", 10)

	var httpErr *metadata.ErrDownloadHTTP
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.StatusCode)
}

func TestHTTPGatewayLengthLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this artifact is longer than allowed"))
	}))
	t.Cleanup(srv.Close)

	gw := NewHTTPGateway(srv.URL)
	_, err := gw.Retrieve("Qm123", 4)
	require.Error(t, err)
	assert.IsType(t, &metadata.ErrDownloadLengthMismatch{}, err)
}
