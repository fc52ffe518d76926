package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// truncate fits a string to the given terminal width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// padBlock normalizes content to a fixed width and height so old UI text is cleared.
func padBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		line = truncate(line, width)
		visible := lipgloss.Width(line)
		if visible < width {
			line += strings.Repeat(" ", width-visible)
		}
		lines[i] = line
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// clamp bounds a value between minVal and maxVal.
func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

// min returns the smaller of two ints.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// max returns the larger of two ints.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// shortenPath fits a plain filesystem path to width by eliding the middle,
// keeping both the root and the (more informative) tail visible.
func shortenPath(path string, width int) string {
	if width <= 0 {
		return ""
	}
	total := runewidth.StringWidth(path)
	if total <= width {
		return path
	}
	if width <= 1 {
		return runewidth.Truncate(path, width, "")
	}
	head := (width - 1) / 2
	tail := width - 1 - head
	return runewidth.Truncate(path, head, "") + "…" + runewidth.TruncateLeft(path, total-tail, "")
}

// roundWidthToNearestBucket buckets widths so the render cache is more reusable.
func roundWidthToNearestBucket(width int) int {
	if width <= 0 {
		return 80
	}
	if width < RenderWidthBucket {
		return width
	}
	return (width / RenderWidthBucket) * RenderWidthBucket
}

// splitExtents divides total cells among count children using the given
// fractions (nil means equal shares), reserving one cell per divider between
// adjacent children when dividers is true. Remainder cells after flooring are
// handed out largest-remainder-first so the extents always sum to the
// available space.
func splitExtents(total, count int, fractions []float64, dividers bool) []int {
	if count <= 0 {
		return nil
	}
	avail := total
	if dividers {
		avail -= (count - 1) * DividerRows
	}
	if avail < 0 {
		avail = 0
	}

	shares := fractions
	if len(shares) != count {
		shares = make([]float64, count)
		for i := range shares {
			shares[i] = 1.0 / float64(count)
		}
	}

	extents := make([]int, count)
	remainders := make([]float64, count)
	used := 0
	for i, f := range shares {
		exact := f * float64(avail)
		extents[i] = int(exact)
		remainders[i] = exact - float64(extents[i])
		used += extents[i]
	}

	order := make([]int, count)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for i := 0; used < avail && i < len(order); i++ {
		extents[order[i]]++
		used++
	}
	return extents
}
