package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/turingmul/internal/storage"
)

type Point struct {
	X, Y float64
}

// HeadPath maps a trace to a space-time path: x is the head position, y is
// the step number growing downwards.
func HeadPath(rows []storage.TraceRow) []Point {
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{X: float64(r.Head), Y: -float64(r.Step)}
	}
	return points
}

// PathToSVG draws points as a single polyline scaled into width x height
// with 10% padding on each axis. Fewer than two points yield "".
func PathToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// TraceToSVG renders the head's space-time path of a saved trace.
func TraceToSVG(rows []storage.TraceRow, width, height int) string {
	return PathToSVG(HeadPath(rows), width, height, "#00ffff")
}
