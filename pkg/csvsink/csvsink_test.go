package csvsink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thep200/github-collector/cfg"
)

func testSink(t *testing.T, path string) *Sink {
	t.Helper()
	loader, err := cfg.NewMockLoader()
	require.NoError(t, err)
	config, err := loader.Load()
	require.NoError(t, err)
	config.Csv.FilePath = path

	sink, err := NewSink(config, []string{"owner", "name"})
	require.NoError(t, err)
	return sink
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSink_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink := testSink(t, path)

	require.NoError(t, sink.Write([]string{"o", "x"}))
	require.NoError(t, sink.Write([]string{"o", "y"}))
	require.NoError(t, sink.Close())

	rows := readAll(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"owner", "name"}, rows[0])
	assert.Equal(t, []string{"o", "x"}, rows[1])
	assert.Equal(t, []string{"o", "y"}, rows[2])
	assert.Equal(t, 2, sink.Rows())
}

func TestSink_TruncatesOnEveryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	first := testSink(t, path)
	require.NoError(t, first.Write([]string{"o", "stale"}))
	require.NoError(t, first.Close())

	second := testSink(t, path)
	require.NoError(t, second.Write([]string{"o", "fresh"}))
	require.NoError(t, second.Close())

	rows := readAll(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"o", "fresh"}, rows[1])
}

// Row đã ghi phải đọc lại được ngay cả khi sink chưa Close
func TestSink_RowsAreDurableBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink := testSink(t, path)

	require.NoError(t, sink.Write([]string{"o", "x"}))

	rows := readAll(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"o", "x"}, rows[1])

	require.NoError(t, sink.Close())
}

// Open phải truncate và ghi header kể cả khi không có row nào được ghi sau đó
func TestSink_OpenTruncatesWithoutWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,row\n"), 0o644))

	sink := testSink(t, path)
	require.NoError(t, sink.Open())
	require.NoError(t, sink.Close())

	rows := readAll(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"owner", "name"}, rows[0])
}

func TestSink_CreatesOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")
	sink := testSink(t, path)

	require.NoError(t, sink.Write([]string{"o", "x"}))
	require.NoError(t, sink.Close())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
