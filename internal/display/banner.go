package display

import (
	"fmt"
	"io"

	"github.com/backmassage/texnorm/internal/term"
)

const banner = ` _
| |_ _____  ___ __   ___  _ __ _ __ ___
| __/ _ \ \/ / '_ \ / _ \| '__| '_ ` + "`" + ` _ \
| ||  __/>  <| | | | (_) | |  | | | | | |
 \__\___/_/\_\_| |_|\___/|_|  |_| |_| |_|
`

// PrintBanner writes the ASCII art banner to w; magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
