package transcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadLinesDecodesWindows1251(t *testing.T) {
	// "Закон" in Windows-1251.
	zakon := []byte{0xC7, 0xE0, 0xEA, 0xEE, 0xED}
	path := writeFixture(t, "d0001.htm", append(append([]byte("title\r\n"), zakon...), '\n'))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "title", lines[0])
	assert.Equal(t, "Закон", lines[1])
}

func TestReadLinesRejectsUnmappedByte(t *testing.T) {
	// 0x98 is the single hole in the Windows-1251 table.
	path := writeFixture(t, "broken.htm", []byte{'o', 'k', 0x98, 'o', 'k'})

	_, err := ReadLines(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.htm")
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "absent.htm"))
	assert.Error(t, err)
}

func TestAsciiRoundTrip(t *testing.T) {
	// ASCII is a common subset of Windows-1251 and UTF-8, so a transcoded
	// ASCII file must read back unchanged.
	original := []string{"<html>", "<body>Law text</body>", "</html>"}
	src := writeFixture(t, "in.htm", []byte("<html>\n<body>Law text</body>\n</html>\n"))

	lines, err := ReadLines(src)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out.htm")
	require.NoError(t, WriteLines(dst, lines))

	back, err := ReadLinesUTF8(dst)
	require.NoError(t, err)
	assert.Equal(t, original, back)
}

func TestWriteLinesOverwrites(t *testing.T) {
	dst := writeFixture(t, "out.htm", []byte("stale content that is longer\n"))

	require.NoError(t, WriteLines(dst, []string{"fresh"}))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestReadLinesUTF8RejectsInvalid(t *testing.T) {
	path := writeFixture(t, "bad.htm", []byte{0xFF, 0xFE, 0xFD})

	_, err := ReadLinesUTF8(path)
	assert.Error(t, err)
}

func TestReadLinesUTF8Cyrillic(t *testing.T) {
	path := writeFixture(t, "ok.htm", []byte("Верховна Рада\n"))

	lines, err := ReadLinesUTF8(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Верховна Рада"}, lines)
}
