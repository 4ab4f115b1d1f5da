package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const (
	tileWidth  = 7 // Inner width of one tile
	tileHeight = 3 // Inner height of one tile
)

// tileColors maps tile values to background colors (256-color palette).
// Values above 2048 share the last entry.
var tileColors = map[int]string{
	0:    "237",
	2:    "255",
	4:    "230",
	8:    "215",
	16:   "209",
	32:   "203",
	64:   "196",
	128:  "228",
	256:  "227",
	512:  "226",
	1024: "220",
	2048: "214",
}

const superTileColor = "93"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 2)

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("124")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("109"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value.
func tileStyle(value int) lipgloss.Style {
	bg, ok := tileColors[value]
	if !ok {
		bg = superTileColor
	}

	fg := "0"
	if value == 0 || value >= 8 && value <= 64 || !ok {
		fg = "15"
	}

	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// tileLabel formats a tile value for display. Empty cells render as a dot.
func tileLabel(value int) string {
	if value == 0 {
		return "·"
	}
	return strconv.Itoa(value)
}

// RenderBoard draws the grid as colored tiles inside a rounded border.
func RenderBoard(g t2048.Grid) string {
	rows := make([]string, 0, len(g))
	for _, row := range g {
		cells := make([]string, 0, len(row)*2)
		for c, v := range row {
			if c > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, tileStyle(v).Render(tileLabel(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// BoardWidth returns the rendered width of a size x size board.
func BoardWidth(size int) int {
	if size < 1 {
		return 0
	}
	return size*tileWidth + (size - 1) + 2
}

// BoardHeight returns the rendered height of a size x size board.
func BoardHeight(size int) int {
	if size < 1 {
		return 0
	}
	return size*tileHeight + 2
}

// renderStat renders one "LABEL value" pair of the HUD.
func renderStat(label string, value int) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(strconv.Itoa(value))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
