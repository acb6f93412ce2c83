package cli

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/hasbyte1/go-range-utils/ranges"
)

const defaultWidth = 80

// terminalWidth reports the width of w when it is an interactive terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth, true
	}
	return width, true
}

// writeValues prints the values of r: as a JSON array when asJSON is set,
// wrapped to the terminal width on a terminal, one per line otherwise.
func writeValues(w io.Writer, r ranges.Range, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(r.Values())
	}
	if width, ok := terminalWidth(w); ok {
		return writeWrapped(w, r, width)
	}
	for v := range r.All() {
		if _, err := io.WriteString(w, strconv.Itoa(v)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeWrapped prints space-separated values, breaking lines before width.
func writeWrapped(w io.Writer, r ranges.Range, width int) error {
	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		line.WriteByte('\n')
		_, err := io.WriteString(w, line.String())
		line.Reset()
		return err
	}
	for v := range r.All() {
		s := strconv.Itoa(v)
		if line.Len() > 0 && line.Len()+1+len(s) > width {
			if err := flush(); err != nil {
				return err
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(s)
	}
	return flush()
}
