package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_lattice/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceletColours maps cube colours to terminal backgrounds.
var faceletColours = map[cube.Color]lipgloss.Color{
	cube.ColorOf(cube.U): lipgloss.Color("15"),
	cube.ColorOf(cube.L): lipgloss.Color("208"),
	cube.ColorOf(cube.F): lipgloss.Color("34"),
	cube.ColorOf(cube.R): lipgloss.Color("196"),
	cube.ColorOf(cube.B): lipgloss.Color("27"),
	cube.ColorOf(cube.D): lipgloss.Color("226"),
}

func faceletStyle(c cube.Color) lipgloss.Style {
	bg, ok := faceletColours[c]
	if !ok {
		bg = lipgloss.Color("240")
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color("0"))
}

// renderFace renders one face as three rows of coloured facelets.
func renderFace(g cube.Grid) []string {
	rows := make([]string, cube.Size)
	for i, row := range g {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(faceletStyle(c).Render(" " + c.String() + " "))
		}
		rows[i] = sb.String()
	}
	return rows
}

// renderNet renders the cube as an unfolded net: U above, L F R B across, D below.
func renderNet(c *cube.Cube) string {
	pad := strings.Repeat(" ", 3*cube.Size)

	var sb strings.Builder
	for _, row := range renderFace(c.Face(cube.U)) {
		sb.WriteString(pad + row + "\n")
	}

	sides := make([][]string, 0, 4)
	for _, f := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
		sides = append(sides, renderFace(c.Face(f)))
	}
	for i := 0; i < cube.Size; i++ {
		for _, side := range sides {
			sb.WriteString(side[i])
		}
		sb.WriteByte('\n')
	}

	for _, row := range renderFace(c.Face(cube.D)) {
		sb.WriteString(pad + row + "\n")
	}
	return sb.String()
}

// renderStatus renders the solved indicator line.
func renderStatus(c *cube.Cube) string {
	if c.IsSolved() {
		return solvedStyle.Render("SOLVED")
	}
	return statusStyle.Render("not solved")
}
