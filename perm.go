package cubeperm

import (
	"fmt"
	"strconv"
	"strings"
)

// Perm is an immutable bijection on the index set [0, n).
//
// The value at index i names the position whose content moves into
// position i. Applying p to a labeling L therefore gives L'[i] = L[p[i]],
// and Compose(p, q) is "p, then q":
//
//	r[i] = p[q[i]]
//
// The zero Perm is the empty permutation on zero elements.
type Perm struct {
	p []int
}

// Identity returns the identity permutation on n elements.
func Identity(n int) Perm {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return Perm{p: p}
}

// New validates values as a bijection on [0, len(values)) and returns it as
// a Perm. The slice is copied.
func New(values []int) (Perm, error) {
	seen := make([]bool, len(values))
	for i, v := range values {
		if v < 0 || v >= len(values) {
			return Perm{}, fmt.Errorf("%w: value %d at index %d outside [0,%d)", ErrInvalidPermutation, v, i, len(values))
		}
		if seen[v] {
			return Perm{}, fmt.Errorf("%w: value %d repeated at index %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
	}

	p := make([]int, len(values))
	copy(p, values)
	return Perm{p: p}, nil
}

// MustNew is like New but panics if values is not a bijection.
// Use it only for static tables.
func MustNew(values []int) Perm {
	p, err := New(values)
	if err != nil {
		panic(err)
	}
	return p
}

// FromCycles builds a permutation on n elements from disjoint cycles.
// The cycle [a b c] means position a receives the content of b, b receives
// c, and c receives a. Indices not named in any cycle are fixed.
func FromCycles(n int, cycles ...[]int) (Perm, error) {
	p := Identity(n).p
	used := make([]bool, n)
	for _, c := range cycles {
		for _, v := range c {
			if v < 0 || v >= n {
				return Perm{}, fmt.Errorf("%w: cycle index %d outside [0,%d)", ErrInvalidPermutation, v, n)
			}
			if used[v] {
				return Perm{}, fmt.Errorf("%w: index %d appears in more than one cycle position", ErrInvalidPermutation, v)
			}
			used[v] = true
		}
		for k, v := range c {
			p[v] = c[(k+1)%len(c)]
		}
	}
	return Perm{p: p}, nil
}

// Len returns the size of the index set.
func (p Perm) Len() int {
	return len(p.p)
}

// At returns the source position for index i.
func (p Perm) At(i int) int {
	return p.p[i]
}

// Values returns a copy of the underlying sequence.
func (p Perm) Values() []int {
	out := make([]int, len(p.p))
	copy(out, p.p)
	return out
}

// Apply permutes labeling by p: position i of the result takes labeling[p[i]].
func Apply[T any](p Perm, labeling []T) ([]T, error) {
	if len(labeling) != len(p.p) {
		return nil, fmt.Errorf("%w: permutation on %d elements, labeling has %d", ErrDimensionMismatch, len(p.p), len(labeling))
	}

	out := make([]T, len(labeling))
	for i, src := range p.p {
		out[i] = labeling[src]
	}
	return out, nil
}

// Compose returns the permutation equivalent to applying p and then q.
func (p Perm) Compose(q Perm) (Perm, error) {
	if len(p.p) != len(q.p) {
		return Perm{}, fmt.Errorf("%w: cannot compose %d and %d elements", ErrDimensionMismatch, len(p.p), len(q.p))
	}
	return p.compose(q), nil
}

// compose assumes equal lengths.
func (p Perm) compose(q Perm) Perm {
	r := make([]int, len(p.p))
	for i, src := range q.p {
		r[i] = p.p[src]
	}
	return Perm{p: r}
}

// Inverse returns the permutation that undoes p.
func (p Perm) Inverse() Perm {
	r := make([]int, len(p.p))
	for i, src := range p.p {
		r[src] = i
	}
	return Perm{p: r}
}

// Power returns p composed with itself k times using repeated squaring.
// Power(0) is the identity; a negative k raises the inverse.
func (p Perm) Power(k int) Perm {
	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}

	result := Identity(len(p.p))
	for k > 0 {
		if k&1 == 1 {
			result = result.compose(base)
		}
		k >>= 1
		if k > 0 {
			base = base.compose(base)
		}
	}
	return result
}

// Cycles returns the non-trivial cycles of p. Each cycle starts at its
// smallest index and follows p from there; cycles are ordered by that index.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	visited := make([]bool, len(p.p))
	for start := range p.p {
		if visited[start] || p.p[start] == start {
			continue
		}
		var c []int
		for i := start; !visited[i]; i = p.p[i] {
			visited[i] = true
			c = append(c, i)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// Order returns the smallest k > 0 with Power(k) equal to the identity:
// the least common multiple of the cycle lengths.
func (p Perm) Order() int {
	order := 1
	for _, c := range p.Cycles() {
		order = lcm(order, len(c))
	}
	return order
}

// Equal reports whether p and q map every index identically.
func (p Perm) Equal(q Perm) (bool, error) {
	if len(p.p) != len(q.p) {
		return false, fmt.Errorf("%w: cannot compare %d and %d elements", ErrDimensionMismatch, len(p.p), len(q.p))
	}
	for i := range p.p {
		if p.p[i] != q.p[i] {
			return false, nil
		}
	}
	return true, nil
}

// IsIdentity returns true if p fixes every index.
func (p Perm) IsIdentity() bool {
	for i, v := range p.p {
		if i != v {
			return false
		}
	}
	return true
}

// String returns p in cycle notation, e.g. "(0 6 8 2)(1 3 7 5)".
// The identity is "()".
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}

	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, v := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	return b.String()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
