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
 *
 * Generalizes the teacher's qrcode.go reedSolomonMultiply/reedSolomonComputeDivisor
 * (GF(2^8)/0x11D specific) into a field parameterized by primitive
 * polynomial, size, and generator base, the way ZXing's GenericGF does.
 */

package gf

import (
	"fmt"
	"sync"

	"github.com/grkuntzmd/barcodegen/common"
)

// Field is GF(2^k), parameterized by a primitive polynomial, field size
// 2^k, and generator base. The exp/log tables are built once, lazily, and
// are read-only thereafter; a field value may be shared across goroutines
// once constructed.
type Field struct {
	primitive int
	size      int
	base      int

	once sync.Once
	exp  []int
	log  []int

	genOnce sync.Mutex
	gens    map[int]*Poly
}

// QRField is the GF(256) instance QR Code error correction uses: primitive
// polynomial 0x011D, field size 256, generator base 0.
var QRField = New(0x011D, 256, 0)

// New returns a field for the given primitive polynomial, field size
// (2^k), and generator base. Table construction is deferred to first use.
func New(primitive, size, base int) *Field {
	return &Field{primitive: primitive, size: size, base: base, gens: make(map[int]*Poly)}
}

// Size returns the field's cardinality (2^k).
func (f *Field) Size() int { return f.size }

func (f *Field) buildTables() {
	f.once.Do(func() {
		exp := make([]int, f.size)
		log := make([]int, f.size)
		x := 1
		for i := 0; i < f.size-1; i++ {
			exp[i] = x
			log[x] = i
			x <<= 1
			if x >= f.size {
				x ^= f.primitive
			}
		}
		f.exp = exp
		f.log = log
	})
}

// Exp returns the field element exp[i] for log index i (reduced mod
// size-1).
func (f *Field) Exp(i int) int {
	f.buildTables()
	size1 := f.size - 1
	i %= size1
	if i < 0 {
		i += size1
	}
	return f.exp[i]
}

// Log returns the log of nonzero element a. Calling with a == 0 panics;
// callers must guard against it, per spec.
func (f *Field) Log(a int) int {
	f.buildTables()
	if a == 0 {
		panic("gf: log of zero is undefined")
	}
	return f.log[a]
}

// AddOrSubtract is addition (equivalently subtraction) in characteristic 2:
// XOR.
func (f *Field) AddOrSubtract(a, b int) int {
	return a ^ b
}

// Multiply returns a*b in the field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	f.buildTables()
	return f.exp[(f.log[a]+f.log[b])%(f.size-1)]
}

// Inverse returns the multiplicative inverse of nonzero a.
func (f *Field) Inverse(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: no multiplicative inverse of zero", common.ErrBadInput)
	}
	f.buildTables()
	return f.exp[(f.size-1)-f.log[a]], nil
}

// BuildMonomial returns coefficient * x^degree as a Poly over this field.
func (f *Field) BuildMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("gf: negative monomial degree")
	}
	if coefficient == 0 {
		return NewPoly(f, []int{0})
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return NewPoly(f, coefficients)
}

// Generator returns the degree-d generator polynomial
// (x - a^(base+0))(x - a^(base+1))...(x - a^(base+d-1)), memoized by
// degree. Safe for concurrent use.
func (f *Field) Generator(degree int) *Poly {
	f.genOnce.Lock()
	defer f.genOnce.Unlock()

	if g, ok := f.gens[degree]; ok {
		return g
	}

	g := NewPoly(f, []int{1})
	for i := 0; i < degree; i++ {
		term := NewPoly(f, []int{1, f.Exp(i + f.base)})
		g = g.Multiply(term)
	}
	f.gens[degree] = g
	return g
}
