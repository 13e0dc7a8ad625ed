package cubeperm

import (
	"errors"
	"fmt"
)

// QuarterTurnOrder is the order of a well-formed quarter-turn generator.
const QuarterTurnOrder = 4

// VerifyOrder checks that g has order exactly n: g^n is the identity and no
// smaller positive power is. A generator that only divides n fails.
func VerifyOrder(g Generator, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %s: expected order must be positive, got %d", ErrOrderMismatch, g.Name, n)
	}
	if !g.Perm.Power(n).IsIdentity() {
		return fmt.Errorf("%w: %s^%d is not the identity", ErrOrderMismatch, g.Name, n)
	}
	if got := g.Perm.Order(); got != n {
		return fmt.Errorf("%w: %s has order %d, want %d", ErrOrderMismatch, g.Name, got, n)
	}
	return nil
}

// VerifyCatalog runs VerifyOrder on every generator of c and reports all
// failures together.
func VerifyCatalog(c *Catalog, n int) error {
	var errs []error
	for _, g := range c.Generators() {
		if err := VerifyOrder(g, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
