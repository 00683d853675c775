// Package field implements the planted field: a fixed-size 2D grid of
// nullable plot contents with neighborhood and search queries.
package field

import "github.com/aldenfarms/farmstead/internal/domain"

// Field is a rows × cols grid of plot contents. Cells are independently
// owned; nil means an empty plot. Scans run in row-major order.
type Field struct {
	plots [][]*domain.PlotContent
}

// New creates an empty field with the given dimensions.
func New(rows, cols int) *Field {
	plots := make([][]*domain.PlotContent, rows)
	for y := range plots {
		plots[y] = make([]*domain.PlotContent, cols)
	}
	return &Field{plots: plots}
}

// Rows returns the field height.
func (f *Field) Rows() int { return len(f.plots) }

// Cols returns the field width.
func (f *Field) Cols() int {
	if len(f.plots) == 0 {
		return 0
	}
	return len(f.plots[0])
}

// InBounds reports whether (x, y) addresses a cell of the field.
func (f *Field) InBounds(x, y int) bool {
	return y >= 0 && y < f.Rows() && x >= 0 && x < f.Cols()
}

// At returns the content of cell (x, y), or nil when empty. Out-of-bounds
// coordinates resolve to nil so neighborhood scans can probe freely.
func (f *Field) At(x, y int) *domain.PlotContent {
	if !f.InBounds(x, y) {
		return nil
	}
	return f.plots[y][x]
}

// Set replaces the content of cell (x, y). Setting nil clears the plot.
// Out-of-bounds writes are ignored.
func (f *Field) Set(x, y int, content *domain.PlotContent) {
	if !f.InBounds(x, y) {
		return
	}
	f.plots[y][x] = content
}

// ForEach visits every cell in row-major order.
func (f *Field) ForEach(visit func(x, y int, plot *domain.PlotContent)) {
	for y, row := range f.plots {
		for x, plot := range row {
			visit(x, y, plot)
		}
	}
}

// Coord is a field coordinate. Coordinates produced by RangeCoords may be
// out of bounds; bounds-checking is the caller's responsibility.
type Coord struct {
	X int
	Y int
}

// RangeCoords returns the square (2·rangeSize+1)² grid of coordinates
// centered at (centerX, centerY), ordered row by row. Used for
// neighborhood effects such as fertilizer spread and sprinkler coverage.
func RangeCoords(rangeSize, centerX, centerY int) [][]Coord {
	squareSize := 2*rangeSize + 1
	startX := centerX - rangeSize
	startY := centerY - rangeSize

	coords := make([][]Coord, squareSize)
	for y := range coords {
		row := make([]Coord, squareSize)
		for x := range row {
			row[x] = Coord{X: startX + x, Y: startY + y}
		}
		coords[y] = row
	}
	return coords
}
