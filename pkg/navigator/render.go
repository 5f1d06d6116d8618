package navigator

import (
	"fmt"
	"strings"

	"github.com/datatug/filenav/pkg/fsutils"
	"golang.org/x/text/unicode/norm"
)

const (
	minRows = 5
	minCols = 40

	// header, legend and separator on top, status row at the bottom
	chromeRows = 4

	nameWidth = 50
	sizeWidth = 10

	cursorMarker = "> "
	blankMarker  = "  "
)

const legend = "Return: Navigate | Shift+Enter: Select | s: Sort by Alphabet/Type | f: Go to Path | c: Folder Size | y: Copy Path | q: Quit"

func tooSmall(rows, cols int) bool {
	return rows < minRows || cols < minCols
}

func visibleRowsFor(rows int) int {
	return rows - chromeRows
}

func renderTooSmall(s Surface) {
	s.Clear()
	s.Print(0, 0, "Terminal too small. Please resize.", Style{Emphasis: EmphasisBold})
	s.Show()
}

// FormatEntrySize renders a size descriptor for the size column.
func FormatEntrySize(size int64) string {
	switch size {
	case SizeUnreadable:
		return "N/A"
	case SizeDir:
		return "DIR"
	default:
		return fsutils.FormatSize(size)
	}
}

// formatEntry lays out one listing row without the selection marker.
func formatEntry(name string, size int64) string {
	name = norm.NFC.String(name)
	if size == SizeDir {
		name += "/"
	}
	return fmt.Sprintf("%-*s %*s", nameWidth, name, sizeWidth, FormatEntrySize(size))
}

func (n *Navigator) render(s Surface, rows, cols int) {
	if n.needsSync {
		s.Sync()
		n.needsSync = false
	}
	s.Clear()
	s.Print(0, 0, "Current path: "+n.currentPath, Style{})
	s.Print(1, 0, legend, Style{})
	s.Print(2, 0, strings.Repeat("-", cols), Style{})

	for i := 0; i < n.visibleRows; i++ {
		index := n.scroll + i
		if index >= len(n.entries) {
			break
		}
		name := n.entries[index]
		size := n.sizes[name]
		style := Style{Color: dirColor}
		if size != SizeDir {
			style.Color = GetColorByFileName(name)
		}
		marker := blankMarker
		if index == n.cursor {
			marker = cursorMarker
			style.Emphasis = EmphasisReverse
		}
		s.Print(i+chromeRows-1, 0, marker+formatEntry(name, size), style)
	}

	if status := n.Status(); status != "" {
		s.Print(rows-1, 0, status, Style{Emphasis: EmphasisBold})
	}
	s.Show()
}
