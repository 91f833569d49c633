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

// appendPattern expands a run-length pattern (alternating widths, each
// unit measured in narrowest-module widths, starting with startColor) onto
// target and returns the number of modules appended.
func appendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	numAdded := 0
	for _, width := range pattern {
		for i := 0; i < width; i++ {
			target[pos] = color
			pos++
		}
		numAdded += width
		color = !color
	}
	return numAdded
}

// patternLen returns the total module width of a run-length pattern.
func patternLen(pattern []int) int {
	total := 0
	for _, w := range pattern {
		total += w
	}
	return total
}
