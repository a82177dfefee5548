package ingestors

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pbshist/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, reader LogReader) []string {
	t.Helper()

	var lines []string
	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func TestLogReader_Next_StripsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	reader := NewLogReader("upload", strings.NewReader("first;E;1;a=b  \r\nsecond\t\n\n  third\n"))
	defer reader.Close()

	assert.Equal(t, []string{"first;E;1;a=b", "second", "", "  third"}, readAll(t, reader))
	assert.Equal(t, 4, reader.LineNumber())
	assert.NoError(t, reader.Err())
	assert.Equal(t, "upload", reader.Name())
}

func TestLogReader_Next_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	reader := NewLogReader("upload", strings.NewReader("only line"))

	assert.Equal(t, []string{"only line"}, readAll(t, reader))
	assert.NoError(t, reader.Err())
}

func TestLogReader_Next_EmptyInput(t *testing.T) {
	t.Parallel()

	reader := NewLogReader("empty", strings.NewReader(""))

	_, ok := reader.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, reader.LineNumber())
	assert.NoError(t, reader.Err())
}

func TestLogReader_Next_LineTooLong(t *testing.T) {
	t.Parallel()

	input := "short\n" + strings.Repeat("x", MaxLineBytes+1) + "\n"
	reader := NewLogReader("huge", strings.NewReader(input))

	assert.Equal(t, []string{"short"}, readAll(t, reader))

	err := reader.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogRead)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "LOG_1005", svcErr.Code)

	_, ok = reader.Next()
	assert.False(t, ok, "reader must stay exhausted after an error")
}

func TestLogReader_Next_BodyTooLarge(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	body := http.MaxBytesReader(recorder, io.NopCloser(strings.NewReader(strings.Repeat("line\n", 100))), 16)
	reader := NewLogReader("upload", body)

	readAll(t, reader)

	err := reader.Err()
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "LOG_1005", svcErr.Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, svcErr.HttpStatusCode)
	var maxBytesErr *http.MaxBytesError
	assert.True(t, errors.As(err, &maxBytesErr))
}

func TestOpenLogReader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "20180308")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	reader, err := OpenLogReader(path)
	require.NoError(t, err)

	assert.Equal(t, path, reader.Name())
	assert.Equal(t, []string{"a", "b"}, readAll(t, reader))
	assert.NoError(t, reader.Close())
	assert.NoError(t, reader.Close(), "closing twice is a no-op")
}

func TestOpenLogReader_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing")
	reader, err := OpenLogReader(path)

	require.Error(t, err)
	assert.Nil(t, reader)
	assert.ErrorIs(t, err, ErrLogOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "LOG_1000", svcErr.Code)
	assert.Equal(t, "not_found", svcErr.Category)
	assert.Equal(t, svcerrors.ExitCodeNotFound, svcErr.ExitCode())
	assert.Contains(t, svcErr.Message, path)
}
