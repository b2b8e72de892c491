// This file is part of Armv2.
//
// Armv2 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Armv2 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Armv2.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi builds the escape sequences used by the color terminal.
package ansi

import (
	"fmt"
	"strings"
)

const (
	black   = 0
	red     = 1
	green   = 2
	yellow  = 3
	blue    = 4
	magenta = 5
	cyan    = 6
	white   = 7
)

const (
	bold      = 1
	underline = 4
	inverse   = 7
	strike    = 8
)

// Pens, DimPens and PenStyles are indexed by color name or style name.
var (
	Pens      map[string]string
	DimPens   map[string]string
	PenStyles map[string]string
)

// NormalPen resets all color and style attributes.
var NormalPen string

// Cursor control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove returns the sequence to move the cursor n places. Negative values
// move the cursor backwards.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = Build("", "", "", false, false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = Build(c, "", "", true, false)
		DimPens[c], _ = Build(c, "", "", false, false)
	}

	PenStyles["bold"], _ = Build("", "", "bold", false, false)
	PenStyles["underline"], _ = Build("", "", "underline", false, false)
}

func colorCode(col string) (int, error) {
	switch strings.ToUpper(col)[0] {
	case 'R':
		return red, nil
	case 'G':
		return green, nil
	case 'Y':
		return yellow, nil
	case 'B':
		if strings.EqualFold(col, "black") {
			return black, nil
		}
		return blue, nil
	case 'M':
		return magenta, nil
	case 'C':
		return cyan, nil
	case 'W':
		return white, nil
	}
	return 0, fmt.Errorf("unknown ANSI color (%s)", col)
}

// Build the escape sequence for the combination of pen color, paper color and
// attribute. Empty strings leave that part of the sequence out. A sequence
// with no parts resets all attributes.
func Build(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		c, err := colorCode(pen)
		if err != nil {
			return "", err
		}
		penType := 3
		if brightPen {
			penType = 9
		}
		parts = append(parts, fmt.Sprintf("%d%d", penType, c))
	}

	if paper != "" {
		c, err := colorCode(paper)
		if err != nil {
			return "", err
		}
		paperType := 4
		if brightPaper {
			paperType = 10
		}
		parts = append(parts, fmt.Sprintf("%d%d", paperType, c))
	}

	if attribute != "" {
		switch strings.ToUpper(attribute)[0] {
		case 'B':
			parts = append(parts, fmt.Sprintf("%d", bold))
		case 'U':
			parts = append(parts, fmt.Sprintf("%d", underline))
		case 'I':
			parts = append(parts, fmt.Sprintf("%d", inverse))
		case 'S':
			parts = append(parts, fmt.Sprintf("%d", strike))
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	if len(parts) == 0 {
		return "\033[0m", nil
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}
