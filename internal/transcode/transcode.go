// Package transcode reads legacy-encoded text files and writes them back
// out as UTF-8. Files are small enough to buffer whole; there is no
// streaming path.
package transcode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// SourceEncoding is the fixed legacy encoding assumed for every file in
// the batch path. The archive this tool was written for is uniformly
// Windows-1251; encoding detection is deliberately not attempted, which is
// a known limitation.
var SourceEncoding = charmap.Windows1251

// ReadLines reads the file at path, decodes it from the legacy source
// encoding and returns its logical lines. A byte with no mapping in the
// source encoding is reported as an error rather than silently replaced,
// so that corrupt files can be skipped instead of written out mangled.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decoded, err := io.ReadAll(transform.NewReader(f, SourceEncoding.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// The charmap decoder substitutes U+FFFD for unmapped bytes instead
	// of failing; treat any substitution as a decode failure.
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return nil, fmt.Errorf("decode %s: byte sequence not valid %s", path, SourceEncoding)
	}
	return splitLines(string(decoded))
}

// ReadLinesUTF8 reads the file at path assuming it is already UTF-8. This
// is the optional fallback strategy for archives that were partially
// converted by earlier runs; it is never used unless explicitly enabled.
func ReadLinesUTF8(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read %s: not valid UTF-8", path)
	}
	return splitLines(string(data))
}

// WriteLines writes lines to path as UTF-8, one line per logical line,
// newline-separated with a trailing newline. An existing file is
// overwritten. A failure mid-write can leave a truncated file behind;
// rerunning the batch rewrites it.
func WriteLines(path string, lines []string) error {
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func splitLines(text string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
