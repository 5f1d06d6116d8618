package navigator

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
)

const (
	dirColor    = tcell.ColorCornflowerBlue
	sourceColor = tcell.ColorLightCyan
)

var colorGroups = []struct {
	color tcell.Color
	exts  []string
}{
	{tcell.ColorAqua, []string{"go"}},
	{tcell.ColorDodgerBlue, []string{"c", "h", "cpp", "hpp"}},
	{tcell.ColorYellow, []string{"js", "mjs"}},
	{tcell.ColorDeepSkyBlue, []string{"ts", "tsx"}},
	{tcell.ColorLightGreen, []string{"py", "csv"}},
	{tcell.ColorOrange, []string{"rs"}},
	{tcell.ColorGreen, []string{"sh", "bash", "zsh"}},
	{tcell.ColorOrangeRed, []string{"html", "htm"}},
	{tcell.ColorViolet, []string{"css"}},
	{tcell.ColorGold, []string{"json"}},
	{tcell.ColorLightYellow, []string{"yaml", "yml", "toml"}},
	{tcell.ColorBisque, []string{"md"}},
	{tcell.ColorWhite, []string{"txt"}},
	{tcell.ColorRosyBrown, []string{"log"}},
	{tcell.ColorMediumPurple, []string{"jpg", "jpeg", "png", "gif", "svg"}},
	{tcell.ColorLightSalmon, []string{"mov", "mp4", "mp3"}},
	{tcell.ColorIndianRed, []string{"zip", "gz", "tar", "7z"}},
	{tcell.ColorRed, []string{"exe", "bin"}},
}

var fileColors = func() map[string]tcell.Color {
	m := make(map[string]tcell.Color)
	for _, g := range colorGroups {
		for _, ext := range g.exts {
			m[ext] = g.color
		}
	}
	return m
}()

var lexerMatches sync.Map // file name -> bool

// isSourceFile reports whether chroma knows a lexer for name.
func isSourceFile(name string) bool {
	if v, ok := lexerMatches.Load(name); ok {
		return v.(bool)
	}
	matched := lexers.Match(name) != nil
	lexerMatches.Store(name, matched)
	return matched
}

// GetColorByFileName picks the tint of a file name in the listing.
func GetColorByFileName(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	if isSourceFile(name) {
		return sourceColor
	}
	return tcell.ColorDefault
}
