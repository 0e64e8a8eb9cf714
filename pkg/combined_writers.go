package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans out every write to all of its writers (e.g. stdout and the rotated log file).
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w == nil {
			continue
		}
		cw.Writers = append(cw.Writers, w)
	}
	return cw
}

// Write reports len(p) when at least one writer succeeded, so the logger does not
// treat a partial failure as a short write. All writer errors are combined.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	okWrites := 0
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		okWrites++
	}
	if okWrites > 0 {
		n = len(p)
	}
	return n, err
}
