package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lifelab/internal/grid"
)

// Text layout: a "<width> <height>" header line, then height rows of
// exactly width characters, '#' for Alive and ' ' for Dead. Every row ends
// in a newline; the final one may omit it.

const (
	aliveChar = '#'
	deadChar  = ' '
)

// EncodeText writes g to w in the plain-text layout.
func EncodeText(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())

	width := g.Width()
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < width; x++ {
			c := byte(deadChar)
			if cells[y*width+x] == grid.Alive {
				c = aliveChar
			}
			bw.WriteByte(c)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: writing text grid: %w", err)
	}
	return nil
}

// DecodeText reads a grid from r in the plain-text layout. Both header
// dimensions must be positive.
func DecodeText(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && (header == "" || !errors.Is(err, ErrTruncated)) {
		return nil, fmt.Errorf("codec: reading header: %w", err)
	}
	width, height, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	g := grid.New(width, height)
	cells := g.Cells()
	for y := 0; y < height; y++ {
		line, err := readLine(br)
		if err != nil && (line == "" || !errors.Is(err, ErrTruncated)) {
			return nil, fmt.Errorf("codec: row %d: %w", y, err)
		}
		if len(line) != width {
			if errors.Is(err, ErrTruncated) {
				return nil, fmt.Errorf("codec: row %d ends early: %w", y, ErrTruncated)
			}
			return nil, fmt.Errorf("codec: row %d is %d characters, want %d: %w", y, len(line), width, ErrFormat)
		}
		for x := 0; x < width; x++ {
			switch line[x] {
			case aliveChar:
				cells[y*width+x] = grid.Alive
			case deadChar:
			default:
				return nil, fmt.Errorf("codec: row %d: cell character %q: %w", y, line[x], ErrFormat)
			}
		}
	}
	return g, nil
}

// SaveText writes g to path in the plain-text layout.
func SaveText(path string, g *grid.Grid) error {
	var buf bytes.Buffer
	if err := EncodeText(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return nil
}

// LoadText reads a grid from the plain-text file at path.
func LoadText(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return DecodeText(bytes.NewReader(data))
}

// readLine returns the next line without its trailing newline. End of
// input surfaces as ErrTruncated alongside whatever partial line was read.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	if err != nil {
		return line, eofToTruncated(err)
	}
	return line, nil
}

func parseHeader(header string) (width, height int, err error) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("codec: header %q: %w", header, ErrFormat)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("codec: header width %q: %w", fields[0], ErrFormat)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("codec: header height %q: %w", fields[1], ErrFormat)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("codec: header declares %dx%d, dimensions must be positive: %w", width, height, ErrFormat)
	}
	if int64(width)*int64(height) > maxCells {
		return 0, 0, fmt.Errorf("codec: header declares %dx%d: %w", width, height, ErrFormat)
	}
	return width, height, nil
}
