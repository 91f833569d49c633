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

package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAppliesQuietZoneMargin(t *testing.T) {
	pattern := []bool{true, false, true}
	m, err := Render(pattern, 0, 0, Options{Margin: 2})
	require.NoError(t, err)
	assert.Equal(t, len(pattern)+4, m.Width())
	assert.Equal(t, DefaultHeight, m.Height())
}

func TestRenderRejectsNegativeDimensions(t *testing.T) {
	_, err := Render([]bool{true}, -1, 0, Options{})
	assert.Error(t, err)
}

func TestRenderRejectsNegativeMargin(t *testing.T) {
	_, err := Render([]bool{true}, 0, 0, Options{Margin: -1})
	assert.Error(t, err)
}

func TestRenderWidensToRequestedWidth(t *testing.T) {
	pattern := []bool{true, false}
	m, err := Render(pattern, 400, 50, Options{Margin: 5})
	require.NoError(t, err)
	assert.Equal(t, 400, m.Width())
	assert.Equal(t, 50, m.Height())
}
