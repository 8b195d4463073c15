// Copyright (c) 2026 The Scribe Authors
// released under the MIT license

package style

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ansiIndex maps the 16 base IRC colors onto the 16 ANSI terminal colors.
// Extended IRC colors (16-98) have no fixed ANSI equivalent and render
// in the terminal's default color.
var ansiIndex = [16]int{15, 0, 4, 2, 9, 1, 5, 3, 11, 10, 6, 14, 12, 13, 8, 7}

func terminalColor(out *termenv.Output, c Color) (termenv.Color, bool) {
	if !c.IsSet || int(c.Value) >= len(ansiIndex) {
		return nil, false
	}
	return out.Color(strconv.Itoa(ansiIndex[c.Value])), true
}

// ANSI renders the text with escape sequences appropriate to out's color profile.
func (t Text) ANSI(out *termenv.Output) string {
	var buf strings.Builder
	for _, span := range t {
		st := span.Style
		styled := out.String(span.Text)
		if fg, ok := terminalColor(out, st.Foreground); ok {
			styled = styled.Foreground(fg)
		}
		if bg, ok := terminalColor(out, st.Background); ok {
			styled = styled.Background(bg)
		}
		if st.Bold {
			styled = styled.Bold()
		}
		if st.Italic {
			styled = styled.Italic()
		}
		if st.Underline {
			styled = styled.Underline()
		}
		if st.Strikethrough {
			styled = styled.CrossOut()
		}
		if st.Reverse {
			styled = styled.Reverse()
		}
		buf.WriteString(styled.String())
	}
	return buf.String()
}
