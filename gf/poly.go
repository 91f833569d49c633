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

package gf

import "fmt"

// Poly is an immutable polynomial with coefficients in a Field, stored
// high-degree-first. Leading zero coefficients are trimmed on
// construction, except for the zero polynomial itself, which is kept as a
// single zero coefficient.
type Poly struct {
	field        *Field
	coefficients []int
}

// NewPoly returns a polynomial over field with the given coefficients,
// high-degree-first, trimming leading zeros.
func NewPoly(field *Field, coefficients []int) *Poly {
	firstNonZero := 0
	for firstNonZero < len(coefficients)-1 && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == 0 {
		return &Poly{field: field, coefficients: coefficients}
	}
	return &Poly{field: field, coefficients: coefficients[firstNonZero:]}
}

// Degree returns the polynomial's degree.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// Coefficients returns the high-degree-first coefficient slice. Callers
// must not mutate the result.
func (p *Poly) Coefficients() []int {
	return p.coefficients
}

// AddOrSubtract returns p + other (equivalently p - other, both XOR).
func (p *Poly) AddOrSubtract(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sumDiff := make([]int, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sumDiff, larger[:lengthDiff])
	for i := lengthDiff; i < len(larger); i++ {
		sumDiff[i] = p.field.AddOrSubtract(smaller[i-lengthDiff], larger[i])
	}

	return NewPoly(p.field, sumDiff)
}

// MultiplyScalar returns p with every coefficient multiplied by scalar.
func (p *Poly) MultiplyScalar(scalar int) *Poly {
	if scalar == 0 {
		return NewPoly(p.field, []int{0})
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return NewPoly(p.field, product)
}

// MultiplyMonomial returns p * (coefficient * x^degree).
func (p *Poly) MultiplyMonomial(degree, coefficient int) (*Poly, error) {
	if degree < 0 {
		return nil, fmt.Errorf("gf: negative monomial degree")
	}
	if coefficient == 0 {
		return NewPoly(p.field, []int{0}), nil
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewPoly(p.field, product), nil
}

// Multiply returns p * other.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return NewPoly(p.field, []int{0})
	}

	a, b := p.coefficients, other.coefficients
	product := make([]int, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			product[i+j] = p.field.AddOrSubtract(product[i+j], p.field.Multiply(ac, bc))
		}
	}
	return NewPoly(p.field, product)
}

// Divide performs polynomial long division of p by other, returning
// (quotient, remainder).
func (p *Poly) Divide(other *Poly) (quotient, remainder *Poly, err error) {
	if other.IsZero() {
		return nil, nil, fmt.Errorf("gf: division by zero polynomial")
	}

	quotient = NewPoly(p.field, []int{0})
	remainder = p

	denomLeadTerm := other.Coefficient(other.Degree())
	inverseDenomLeadTerm, err := p.field.Inverse(denomLeadTerm)
	if err != nil {
		return nil, nil, err
	}

	for !remainder.IsZero() && remainder.Degree() >= other.Degree() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.Coefficient(remainder.Degree()), inverseDenomLeadTerm)
		term, err := other.MultiplyMonomial(degreeDiff, scale)
		if err != nil {
			return nil, nil, err
		}
		iterationQuotient, err := NewPoly(p.field, []int{1}).MultiplyMonomial(degreeDiff, scale)
		if err != nil {
			return nil, nil, err
		}
		quotient = quotient.AddOrSubtract(iterationQuotient)
		remainder = remainder.AddOrSubtract(term)
	}

	return quotient, remainder, nil
}
