package codec

import "errors"

var (
	// ErrFormat reports a header or payload that does not follow the
	// file layout: negative or absurd dimensions, malformed header
	// line, rows of the wrong length, or unknown cell characters.
	ErrFormat = errors.New("codec: malformed input")

	// ErrTruncated reports input that ends before supplying every byte
	// the header promises.
	ErrTruncated = errors.New("codec: unexpected end of input")

	// ErrUnknownExtension reports a path whose extension maps to no
	// known grid format.
	ErrUnknownExtension = errors.New("codec: unknown file extension")
)
