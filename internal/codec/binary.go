// Package codec persists grids in two file layouts: a packed little-endian
// binary format (.bgol) and a plain-text character format (.gol).
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"lifelab/internal/grid"
)

// Binary layout, independent of host byte order:
//
//	int32 width | int32 height | ceil(width*height/32) x uint32 chunks
//
// all little-endian. Chunk i carries cells [32i, 32i+32) in row-major
// order, least-significant bit first; 1 is Alive. Padding bits past the
// last cell are written as zero and ignored when reading.
const chunkBits = 32

// maxCells caps the allocation a decoded header may demand. Headers come
// from untrusted files; a corrupt one must not provoke a giant allocation.
const maxCells = 1 << 30

// EncodeBinary writes g to w in the packed binary layout.
func EncodeBinary(w io.Writer, g *grid.Grid) error {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(int32(g.Width())))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(int32(g.Height())))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("codec: writing header: %w", err)
	}

	cells := g.Cells()
	total := len(cells)
	var buf [4]byte
	for base := 0; base < total; base += chunkBits {
		var chunk uint32
		for j := 0; j < chunkBits && base+j < total; j++ {
			if cells[base+j] == grid.Alive {
				chunk |= 1 << j
			}
		}
		binary.LittleEndian.PutUint32(buf[:], chunk)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("codec: writing cells: %w", err)
		}
	}
	return nil
}

// DecodeBinary reads a grid from r in the packed binary layout.
func DecodeBinary(r io.Reader) (*grid.Grid, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("codec: reading header: %w", eofToTruncated(err))
	}
	width := int32(binary.LittleEndian.Uint32(hdr[0:4]))
	height := int32(binary.LittleEndian.Uint32(hdr[4:8]))
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("codec: header declares %dx%d: %w", width, height, ErrFormat)
	}
	total64 := int64(width) * int64(height)
	if total64 > maxCells {
		return nil, fmt.Errorf("codec: header declares %dx%d (%d cells): %w", width, height, total64, ErrFormat)
	}
	total := int(total64)

	g := grid.New(int(width), int(height))
	cells := g.Cells()
	var buf [4]byte
	for base := 0; base < total; base += chunkBits {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("codec: reading cells: %w", eofToTruncated(err))
		}
		chunk := binary.LittleEndian.Uint32(buf[:])
		for j := 0; j < chunkBits && base+j < total; j++ {
			if chunk&(1<<j) != 0 {
				cells[base+j] = grid.Alive
			}
		}
	}
	return g, nil
}

// SaveBinary writes g to path in the packed binary layout.
func SaveBinary(path string, g *grid.Grid) error {
	var buf bytes.Buffer
	if err := EncodeBinary(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return nil
}

// LoadBinary reads a grid from the packed binary file at path.
func LoadBinary(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return DecodeBinary(bytes.NewReader(data))
}

// eofToTruncated maps io's end-of-stream sentinels onto ErrTruncated so
// callers can match the failure with errors.Is.
func eofToTruncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
