package structlog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Station-Manager/types"
	"github.com/Station-Manager/utils"
	"github.com/stretchr/testify/require"
)

func fileConfig(level string) *types.LoggingConfig {
	return &types.LoggingConfig{
		Level:             level,
		SkipFrameCount:    0,
		WithTimestamp:     false,
		ConsoleLogging:    false,
		FileLogging:       true,
		RelLogFileDir:     "logs",
		LogFileMaxBackups: 1,
		LogFileMaxAgeDays: 1,
		LogFileMaxSizeMB:  5,
		ShutdownTimeoutMS: 1000,
	}
}

// helper to create a ready-to-use file-based logger in a temp dir
func newFileLogger(t testing.TB, level string) (*Service, string) {
	t.Helper()
	wd := t.TempDir()
	l := &Service{WorkingDir: wd, LoggingConfig: fileConfig(level)}
	require.NoError(t, l.Initialize())
	return l, logFilePath(t, wd)
}

// logFilePath is where Initialize puts the rolling file for this binary.
func logFilePath(t testing.TB, wd string) string {
	t.Helper()
	exeName, err := utils.ExecName(true)
	require.NoError(t, err)
	return filepath.Join(wd, "logs", exeName+".log")
}

func readLog(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitializeErrors(t *testing.T) {
	// No working dir
	{
		l := &Service{LoggingConfig: fileConfig("debug")}
		require.Error(t, l.Initialize())
	}

	// No config
	{
		l := &Service{WorkingDir: t.TempDir()}
		require.Error(t, l.Initialize())
	}

	// No channels enabled
	{
		cfg := fileConfig("debug")
		cfg.FileLogging = false
		l := &Service{WorkingDir: t.TempDir(), LoggingConfig: cfg}
		require.Error(t, l.Initialize())
	}

	// Invalid level
	{
		l := &Service{WorkingDir: t.TempDir(), LoggingConfig: fileConfig("notalevel")}
		require.Error(t, l.Initialize())
	}

	// Nil service
	{
		var l *Service
		require.Error(t, l.Initialize())
	}
}

func TestInitializeIsOnce(t *testing.T) {
	l := &Service{WorkingDir: t.TempDir()}
	first := l.Initialize()
	require.Error(t, first)

	// later calls return the first result even after the config is fixed
	l.LoggingConfig = fileConfig("debug")
	require.Equal(t, first, l.Initialize())
}

func TestFileLoggingCreatesAndWrites(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")
	t.Cleanup(func() { _ = l.Close() })

	l.Information("hello {Name}", "world")
	l.Warning("be careful")

	text := readLog(t, logPath)
	require.Contains(t, text, `"message":"hello world"`)
	require.Contains(t, text, `"message_template":"hello {Name}"`)
	require.Contains(t, text, `"properties":{"Name":"world"}`)
	require.Contains(t, text, `"level":"warn"`)
	require.Contains(t, text, "be careful")
}

func TestLevelFiltering(t *testing.T) {
	l, logPath := newFileLogger(t, "warn")
	t.Cleanup(func() { _ = l.Close() })

	l.Debug("debug msg")
	l.Information("info msg")
	l.Warning("warn msg")
	l.Error("error msg")

	s := readLog(t, logPath)
	require.NotContains(t, s, "debug msg")
	require.NotContains(t, s, "info msg")
	require.Contains(t, s, "warn msg")
	require.Contains(t, s, "error msg")
}

func TestVerboseLevelWritesToFile(t *testing.T) {
	l, logPath := newFileLogger(t, "verbose")
	t.Cleanup(func() { _ = l.Close() })

	l.Verbose("step {N}", 1)

	s := readLog(t, logPath)
	require.Contains(t, s, `"level":"trace"`)
	require.Contains(t, s, `"message":"step 1"`)
}

func TestStructuredProperties(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")
	t.Cleanup(func() { _ = l.Close() })

	l.Information("User {UserID} processed {Count} items, active={Active}", "12345", 42, true)
	l.Debug("Metrics {Temperature} on {Port}", 98.6, uint(8080))
	l.Information("Tagged {Tags}", []string{"golang", "logging", "structured"})
	l.Information("Visited {@User}", person{Name: "Ada", Age: 30})
	l.Information("Counted {Counts}", map[string]int{"b": 2, "a": 1})

	str := readLog(t, logPath)
	require.Contains(t, str, `"UserID":"12345"`)
	require.Contains(t, str, `"Count":42`)
	require.Contains(t, str, `"Active":true`)
	require.Contains(t, str, `"Temperature":98.6`)
	require.Contains(t, str, `"Port":8080`)
	require.Contains(t, str, `"Tags":["golang","logging","structured"]`)
	require.Contains(t, str, `"User":{"$type":"person","Name":"Ada","Age":30,"email":""}`)
	require.Contains(t, str, `"Counts":{"a":1,"b":2}`)
	require.Contains(t, str, `"message":"Counted [(\"a\": 1), (\"b\": 2)]"`)
}

func TestForContextWritesToFile(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")
	t.Cleanup(func() { _ = l.Close() })

	req := l.ForContext("RequestID", "req-123", false).ForContext("UserID", "user-456", false)
	req.Information("Request {Action}", "start")
	req.Information("Request {Action} with {Status}", "end", 200)

	str := readLog(t, logPath)
	require.Equal(t, 2, strings.Count(str, `"RequestID":"req-123"`), "RequestID should appear in both entries")
	require.Equal(t, 2, strings.Count(str, `"UserID":"user-456"`), "UserID should appear in both entries")
	require.Contains(t, str, `"Action":"start"`)
	require.Contains(t, str, `"Status":200`)
}

func TestDumpOutputs(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")
	t.Cleanup(func() { _ = l.Close() })

	p := person{Name: "Ada", Age: 37}
	l.Dump(nil)
	l.Dump(map[string]int{"a": 1, "b": 2})
	l.Dump([]string{"x", "y"})
	l.Dump(p)
	l.Dump(&p)

	str := readLog(t, logPath)
	require.Contains(t, str, `"message":"Dump null"`)
	require.Contains(t, str, `"Value":{"a":1,"b":2}`)
	require.Contains(t, str, `"Value":["x","y"]`)
	require.Equal(t, 2, strings.Count(str, `"Name":"Ada"`))
}

func TestConcurrentLogging(t *testing.T) {
	l, logPath := newFileLogger(t, "debug")

	const goroutines = 20
	const iterations = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				l.Information("goroutine {ID} iteration {N}", id, j)
				l.Dump(person{Name: "worker", Age: id})
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, l.Close())

	str := readLog(t, logPath)
	require.Equal(t, goroutines*iterations*2, strings.Count(str, "\n"))
}

func TestUninitializedLoggerDoesNotPanic(t *testing.T) {
	// a Service created via struct literal, as a DI container would
	l := &Service{}

	l.Information("test")
	l.Debug("test {N}", 1)
	l.WarningErr(os.ErrNotExist, "test")
	l.ForContext("key", "value", false).Error("test")

	wd := t.TempDir()
	l.WorkingDir = wd
	l.LoggingConfig = fileConfig("info")
	require.NoError(t, l.Initialize())
	t.Cleanup(func() { _ = l.Close() })

	l.Information("initialized")
	require.Contains(t, readLog(t, logFilePath(t, wd)), "initialized")
}
