package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pbshist/internal/ingestors"
	"pbshist/internal/shared/configs"
	"pbshist/internal/shared/loggers"
	"pbshist/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleLog = `03/08/2018 09:00:00;Q;1.srv;queue=workq
03/08/2018 09:05:00;S;1.srv;queue=workq
03/08/2018 10:00:00;E;1.srv;queue=workq Resource_List.nodect=1
03/08/2018 11:00:00;E;2.srv;queue=gpuq Resource_List.nodect=2
`

func newTestConfig(t *testing.T) *configs.Config {
	t.Helper()

	cfg, err := configs.LoadConfig("", nil)
	require.NoError(t, err)
	return cfg
}

func writeLog(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "20180308")
	require.NoError(t, os.WriteFile(path, []byte(exampleLog), 0644))
	return path
}

func TestApp_Run_PrintsReport(t *testing.T) {
	t.Parallel()

	application, err := NewWithLogger(newTestConfig(t), loggers.Nop())
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = application.Run(context.Background(), writeLog(t, t.TempDir()), &stdout)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Date/Time period.....: Thu 08-03-2018\n")
	assert.Contains(t, out, "  Single Machine Jobs ended.... 1 of 2 [E] is 50.00%\n")
	assert.Contains(t, out, "Legend:")
}

func TestApp_Run_ReportToggles(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.Report.ShowRatios = false
	cfg.Report.ShowLegend = false
	application, err := NewWithLogger(cfg, loggers.Nop())
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, application.Run(context.Background(), writeLog(t, t.TempDir()), &stdout))

	assert.NotContains(t, stdout.String(), "Ratios:")
	assert.NotContains(t, stdout.String(), "Legend:")
}

func TestApp_Run_ExportsReportAndMetrics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := newTestConfig(t)
	cfg.Export.RootDir = filepath.Join(dir, "export")
	cfg.Metrics.TextfilePath = filepath.Join(dir, "pbshist.prom")
	application, err := NewWithLogger(cfg, loggers.Nop())
	require.NoError(t, err)

	require.NoError(t, application.Run(context.Background(), writeLog(t, dir), &bytes.Buffer{}))

	exported, err := filepath.Glob(filepath.Join(cfg.Export.RootDir, "reports", "20180308", "*.json"))
	require.NoError(t, err)
	require.Len(t, exported, 1)
	data, err := os.ReadFile(exported[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"single_node_jobs": 1`)

	textfile, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(textfile), "pbshist_ingestion_lines_read_total")
}

func TestApp_Run_MissingLog(t *testing.T) {
	t.Parallel()

	application, err := NewWithLogger(newTestConfig(t), loggers.Nop())
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = application.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), &stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ingestors.ErrLogOpen)
	assert.Empty(t, stdout.String(), "nothing is printed when the log cannot be read")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, svcerrors.ExitCodeNotFound, svcErr.ExitCode())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestApp_Run_RenderFailed(t *testing.T) {
	t.Parallel()

	application, err := NewWithLogger(newTestConfig(t), loggers.Nop())
	require.NoError(t, err)

	err = application.Run(context.Background(), writeLog(t, t.TempDir()), failingWriter{})
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "LOG_9001", svcErr.Code)
	assert.True(t, strings.Contains(svcErr.Error(), "broken pipe"))
}

func TestApp_Serve_StopsWhenContextDone(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.Server.Port = 0
	application, err := NewWithLogger(cfg, loggers.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, application.Serve(ctx))
}
