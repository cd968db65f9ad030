package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelab/internal/grid"
)

// patterned builds a grid with a deterministic mix of Alive and Dead cells.
func patterned(w, h int) *grid.Grid {
	g := grid.New(w, h)
	cells := g.Cells()
	for i := range cells {
		if i%3 == 0 || i%7 == 2 {
			cells[i] = grid.Alive
		}
	}
	return g
}

func TestBinaryGoldenBytes(t *testing.T) {
	// 3x2 grid, Alive at indices 0, 2 and 4: chunk = 0b10101 = 21.
	g := grid.New(3, 2)
	require.NoError(t, g.Set(0, 0, grid.Alive))
	require.NoError(t, g.Set(2, 0, grid.Alive))
	require.NoError(t, g.Set(1, 1, grid.Alive))

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, g))

	want := []byte{
		3, 0, 0, 0, // width, little-endian
		2, 0, 0, 0, // height
		21, 0, 0, 0, // packed cells, LSB first
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestBinaryChunkBoundary(t *testing.T) {
	// 33 cells: the second chunk holds exactly one cell bit.
	g := grid.New(33, 1)
	require.NoError(t, g.Set(0, 0, grid.Alive))
	require.NoError(t, g.Set(32, 0, grid.Alive))

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, g))
	require.Len(t, buf.Bytes(), 8+2*4)

	assert.Equal(t, []byte{1, 0, 0, 0}, buf.Bytes()[8:12])
	assert.Equal(t, []byte{1, 0, 0, 0}, buf.Bytes()[12:16])
}

func TestBinaryRoundTrip(t *testing.T) {
	dims := []struct{ w, h int }{
		{0, 0},  // no payload at all
		{1, 1},  // single cell, 31 padding bits
		{31, 1}, // one bit shy of a chunk
		{8, 4},  // exactly one chunk
		{33, 1}, // one bit into a second chunk
		{10, 10},
	}

	for _, d := range dims {
		g := patterned(d.w, d.h)
		var buf bytes.Buffer
		require.NoError(t, EncodeBinary(&buf, g))
		require.Len(t, buf.Bytes(), 8+4*((d.w*d.h+31)/32))

		got, err := DecodeBinary(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		if !got.Equal(g) {
			t.Fatalf("%dx%d: decoded grid differs from encoded one", d.w, d.h)
		}
	}
}

func TestBinaryPaddingIgnored(t *testing.T) {
	// A 1x1 grid whose chunk has every bit set: only bit 0 is a cell.
	data := []byte{
		1, 0, 0, 0,
		1, 0, 0, 0,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	g, err := DecodeBinary(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, g.AliveCells())
	got, err := g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Alive, got)
}

func TestBinaryHeaderRejected(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"negative width", []byte{0xFF, 0xFF, 0xFF, 0xFF, 1, 0, 0, 0}},
		{"negative height", []byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"absurd allocation", []byte{0, 0, 1, 0, 0, 0, 1, 0}}, // 65536 x 65536
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBinary(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestBinaryTruncated(t *testing.T) {
	g := patterned(8, 4)
	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, g))
	full := buf.Bytes()

	cuts := []struct {
		name string
		n    int
	}{
		{"empty input", 0},
		{"partial header", 4},
		{"header only", 8},
		{"partial chunk", len(full) - 2},
	}
	for _, tt := range cuts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBinary(bytes.NewReader(full[:tt.n]))
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}
}
