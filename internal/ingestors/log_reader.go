package ingestors

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode"
)

// MaxLineBytes bounds a single accounting log line.
const MaxLineBytes = 1024 * 1024

// LogReader yields the lines of an accounting log lazily, in file order.
type LogReader interface {
	// Name identifies the log: the file path, or the upload name in serve mode.
	Name() string
	// Next returns the next line without trailing whitespace, or false at the end of
	// input or on a read error (see Err).
	Next() (string, bool)
	// LineNumber is the 1-based number of the line last returned by Next.
	LineNumber() int
	Err() error
	Close() error
}

type logReader struct {
	name       string
	src        *errRecorder
	scanner    *bufio.Scanner
	closer     io.Closer
	lineNumber int
	err        error
}

// OpenLogReader opens the accounting log at path. The caller must Close it.
func OpenLogReader(path string) (LogReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errLogOpen(path, err)
	}

	r := newLogReader(path, f)
	r.closer = f
	return r, nil
}

// NewLogReader reads an accounting log from r. Closing the returned reader does not close r.
func NewLogReader(name string, r io.Reader) LogReader {
	return newLogReader(name, r)
}

func newLogReader(name string, r io.Reader) *logReader {
	lr := &logReader{name: name, src: &errRecorder{r: r}}
	lr.scanner = bufio.NewScanner(lr.src)
	lr.scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	lr.scanner.Split(lr.splitLines)
	return lr
}

// splitLines is bufio.ScanLines, except that an unterminated tail left over by a failed
// read is reported as the read error instead of being returned as a truncated line.
func (r *logReader) splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && r.src.err != nil && bytes.IndexByte(data, '\n') < 0 {
		return 0, nil, r.src.err
	}
	return bufio.ScanLines(data, atEOF)
}

func (r *logReader) Name() string {
	return r.name
}

func (r *logReader) Next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = r.wrapErr(err)
		}
		return "", false
	}
	r.lineNumber++
	return strings.TrimRightFunc(r.scanner.Text(), unicode.IsSpace), true
}

func (r *logReader) wrapErr(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errBodyTooLarge(maxBytesErr.Limit, err)
	}
	return errLogRead(r.name, r.lineNumber, err)
}

func (r *logReader) LineNumber() int {
	return r.lineNumber
}

func (r *logReader) Err() error {
	return r.err
}

func (r *logReader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// errRecorder remembers the first read error other than io.EOF.
type errRecorder struct {
	r   io.Reader
	err error
}

func (e *errRecorder) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil && err != io.EOF && e.err == nil {
		e.err = err
	}
	return n, err
}
