// Package render formats a 54-facelet labeling as an unfolded cube net.
//
// The layout is
//
//	      U
//	L  F  R  B
//	      D
//
// with every face drawn as three rows of three cells. Cells are two
// characters wide and separated by one space; the U and D rows are indented
// by one face width so they sit above and below F.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeperm"
)

// ErrLabelingSize is returned when a labeling does not have one entry per
// facelet.
var ErrLabelingSize = errors.New("render: labeling must have 54 entries")

// indent is the width of one face block plus its separator.
const indent = "         "

// middle lists the faces of the side band, left to right.
var middle = []cubeperm.Face{cubeperm.FaceL, cubeperm.FaceF, cubeperm.FaceR, cubeperm.FaceB}

// Net renders labeling as plain text.
func Net(labeling []int) (string, error) {
	return draw(labeling, func(v int) string {
		return fmt.Sprintf("%2d", v)
	})
}

// Styled renders labeling with every cell coloured by the face its label
// belongs to in the solved arrangement.
func Styled(labeling []int) (string, error) {
	return draw(labeling, func(v int) string {
		return faceStyles[cubeperm.FaceOf(v)].Render(fmt.Sprintf("%2d", v))
	})
}

func draw(labeling []int, cell func(int) string) (string, error) {
	if len(labeling) != cubeperm.FaceletCount {
		return "", fmt.Errorf("%w: got %d", ErrLabelingSize, len(labeling))
	}

	var b strings.Builder
	row := func(prefix string, faces []cubeperm.Face, r int) {
		b.WriteString(prefix)
		first := true
		for _, face := range faces {
			for col := 0; col < 3; col++ {
				if !first {
					b.WriteByte(' ')
				}
				first = false
				b.WriteString(cell(labeling[cubeperm.Facelet(face, r*3+col)]))
			}
		}
		b.WriteByte('\n')
	}

	// U face (indented)
	for r := 0; r < 3; r++ {
		row(indent, []cubeperm.Face{cubeperm.FaceU}, r)
	}

	// L, F, R, B faces (side by side)
	for r := 0; r < 3; r++ {
		row("", middle, r)
	}

	// D face (indented)
	for r := 0; r < 3; r++ {
		row(indent, []cubeperm.Face{cubeperm.FaceD}, r)
	}

	return b.String(), nil
}

var faceStyles = map[cubeperm.Face]lipgloss.Style{
	cubeperm.FaceU: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),  // white
	cubeperm.FaceD: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // yellow
	cubeperm.FaceF: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // green
	cubeperm.FaceB: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // blue
	cubeperm.FaceR: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // red
	cubeperm.FaceL: lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
}
