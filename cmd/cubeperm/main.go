// cubeperm - CLI for verifying and exploring cube facelet permutations.
package main

import (
	"github.com/SeamusWaldron/cubeperm/internal/cli"
)

func main() {
	cli.Execute()
}
