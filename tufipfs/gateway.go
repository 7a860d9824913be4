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
	"strings"
	"time"

	"github.com/theupdateframework/go-tuf/v2/metadata/fetcher"
)

// gatewayTimeout bounds a single artifact retrieval through the gateway.
const gatewayTimeout = 15 * time.Second

// Gateway retrieves the bytes stored under a content identifier. The
// content-addressing network, not this client, guarantees that the returned
// bytes match the identifier, so the overall integrity guarantee is only as
// strong as the gateway. Keeping it behind an interface lets deployments
// swap in a local node or a multi-gateway implementation without touching
// the download workflow.
type Gateway interface {
	Retrieve(cid string, maxLength int64) ([]byte, error)
}

// HTTPGateway resolves content identifiers through the /ipfs/ path of an
// HTTP gateway, public or private.
type HTTPGateway struct {
	baseURL string
	fetcher fetcher.Fetcher
	timeout time.Duration
}

// NewHTTPGateway returns a gateway client for the given base URL.
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: ensureTrailingSlash(baseURL),
		fetcher: &fetcher.DefaultFetcher{},
		timeout: gatewayTimeout,
	}
}

// Retrieve downloads the artifact addressed by cid, erroring out if the
// gateway is unreachable, responds with a non-200 status or delivers more
// than maxLength bytes.
func (g *HTTPGateway) Retrieve(cid string, maxLength int64) ([]byte, error) {
	return g.fetcher.DownloadFile(g.baseURL+"ipfs/"+cid, maxLength, g.timeout)
}

// ensureTrailingSlash ensures url ends with a slash
func ensureTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}
