package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/diffuse1d/internal/grid"
)

// ProfileToSVG renders a concentration profile as an SVG polyline.
func ProfileToSVG(f grid.Field, width, height int, strokeColor string) string {
	if len(f) < 2 {
		return ""
	}

	minY, maxY := bounds(f)
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	writePath(&sb, f, width, height, minY, rangeY)

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// EvolutionToSVG overlays up to maxTraces snapshots of a run, earliest
// drawn faintest, so the spreading of the profile reads at a glance.
func EvolutionToSVG(fields []grid.Field, width, height, maxTraces int) string {
	if len(fields) == 0 {
		return ""
	}
	if maxTraces < 1 {
		maxTraces = 1
	}

	minY, maxY := bounds(fields[0])
	for _, f := range fields[1:] {
		lo, hi := bounds(f)
		if lo < minY {
			minY = lo
		}
		if hi > maxY {
			maxY = hi
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	stride := len(fields) / maxTraces
	if stride < 1 {
		stride = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for idx := 0; idx < len(fields); idx += stride {
		f := fields[idx]
		if len(f) < 2 {
			continue
		}

		opacity := 0.25 + 0.75*float64(idx)/float64(len(fields))
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#00ff88" stroke-opacity="%.2f" stroke-width="1.5" d="M`, opacity))
		writePath(&sb, f, width, height, minY, rangeY)
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, f grid.Field, width, height int, minY, rangeY float64) {
	for i, v := range f {
		x := float64(i) / float64(len(f)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
}

func bounds(f grid.Field) (min, max float64) {
	if len(f) == 0 {
		return 0, 0
	}
	min, max = f[0], f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
