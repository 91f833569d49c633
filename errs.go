/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package barcodegen

import "github.com/grkuntzmd/barcodegen/common"

// Re-exported so callers can errors.Is against a single root package
// without importing common themselves.
var (
	ErrBadInput          = common.ErrBadInput
	ErrOverflow          = common.ErrOverflow
	ErrChecksumMismatch  = common.ErrChecksumMismatch
	ErrInternalInvariant = common.ErrInternalInvariant
)
