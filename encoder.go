package mandel

import (
	"io"
)

// Encoder serializes a finished buffer.
type Encoder interface {
	Encode(w io.Writer, buf *Buffer) error
	ContentType() string
}
