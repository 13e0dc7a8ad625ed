package cubeperm

import "fmt"

// GeneratorDef is the static definition of one generator: a name and the
// literal permutation table for it.
type GeneratorDef struct {
	Name  string
	Table []int
}

// Generator is a named, validated permutation.
type Generator struct {
	Name string
	Perm Perm
}

// Catalog is an immutable, validated set of generators over a common
// index set. It is safe to share between goroutines.
type Catalog struct {
	size   int
	names  []string
	byName map[string]Generator
}

// NewCatalog validates every definition and builds a catalog from them.
// All tables must be bijections of the same size and names must be unique
// and non-empty.
func NewCatalog(defs ...GeneratorDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no generators defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		size:   len(defs[0].Table),
		names:  make([]string, 0, len(defs)),
		byName: make(map[string]Generator, len(defs)),
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: generator with empty name", ErrInvalidCatalog)
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate generator %q", ErrInvalidCatalog, d.Name)
		}
		if len(d.Table) != c.size {
			return nil, fmt.Errorf("%w: generator %q has %d entries, want %d", ErrInvalidCatalog, d.Name, len(d.Table), c.size)
		}

		p, err := New(d.Table)
		if err != nil {
			return nil, fmt.Errorf("%w: generator %q: %w", ErrInvalidCatalog, d.Name, err)
		}

		c.names = append(c.names, d.Name)
		c.byName[d.Name] = Generator{Name: d.Name, Perm: p}
	}

	return c, nil
}

// standard is built once at package initialization. A broken table is a
// fatal configuration error.
var standard = mustCatalog(standardDefs...)

func mustCatalog(defs ...GeneratorDef) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Standard returns the catalog of the six quarter-turn face generators
// F, B, R, L, U and D on the 54-facelet space.
func Standard() *Catalog {
	return standard
}

// Generator returns the generator registered under name.
func (c *Catalog) Generator(name string) (Generator, error) {
	g, ok := c.byName[name]
	if !ok {
		return Generator{}, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

// Names returns the generator names in definition order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Generators returns every generator in definition order.
func (c *Catalog) Generators() []Generator {
	out := make([]Generator, len(c.names))
	for i, n := range c.names {
		out[i] = c.byName[n]
	}
	return out
}

// Size returns the number of elements each generator acts on.
func (c *Catalog) Size() int {
	return c.size
}
