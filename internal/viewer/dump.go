package viewer

import (
	"fmt"
	"io"

	"github.com/keyscope/keyscope/internal/config"
	"github.com/keyscope/keyscope/internal/keynames"
	"github.com/keyscope/keyscope/internal/session"
)

// Dump writes the event log as a plain-text table, one row per event.
// It is the non-interactive rendition of the viewer for piped output.
func Dump(w io.Writer, log *session.Log, formats config.ColumnFormats) error {
	f := &formatter{
		scan:    keynames.DefaultScanTable(),
		vk:      keynames.DefaultVKTable(),
		formats: formats,
	}

	if err := writeCells(w, ' ', columnTitles); err != nil {
		return err
	}

	for i := 0; i < log.Len(); i++ {
		row := f.Render(log.At(i))
		marker := byte('-')
		if row.Down {
			marker = '+'
		}
		if err := writeCells(w, marker, row.Cells); err != nil {
			return err
		}
	}
	return nil
}

func writeCells(w io.Writer, marker byte, cells [numColumns]string) error {
	if _, err := fmt.Fprintf(w, "%c ", marker); err != nil {
		return err
	}
	for col, cell := range cells {
		if _, err := fmt.Fprintf(w, "%-*s", columnWidths[col], cell); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
