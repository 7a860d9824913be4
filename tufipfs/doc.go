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

// Package tufipfs implements a TUF client workflow whose target files live
// on IPFS. Metadata is verified by the TUF metadata client; target bytes are
// retrieved through a content-addressing gateway using the content
// identifier published in the target's custom metadata. Each repository's
// trusted state is kept in its own local namespace derived from the
// repository URL, established with trust-on-first-use.
package tufipfs
