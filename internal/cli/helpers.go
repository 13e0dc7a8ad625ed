package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubeperm"
	"github.com/SeamusWaldron/cubeperm/pkg/render"
)

// printNet writes the net of state, coloured when color is set.
func printNet(w io.Writer, state *cubeperm.State, color bool) error {
	draw := render.Net
	if color {
		draw = render.Styled
	}
	out, err := draw(state.Labeling())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// joinArgs accepts a move sequence either quoted or as separate arguments.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
