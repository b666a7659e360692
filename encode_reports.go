package capgains

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeReport writes the report rows to w, one row per line.
func EncodeReport(w io.Writer, rep Report) error {
	for _, row := range rep.Rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("cannot write report %q: %w", rep.Name, err)
		}
	}
	return nil
}

// DirSink is a ReportSink that persists each report as a file in a
// directory, using the report name as the file name.
type DirSink struct {
	Dir string
}

// Write persists the report, creating the directory if needed.
func (s DirSink) Write(rep Report) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create report directory %q: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, rep.Name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeReport(f, rep); err != nil {
		return err
	}
	return f.Close()
}

var _ ReportSink = DirSink{}
