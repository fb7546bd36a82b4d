package payload

import "fmt"

// Payload is a fixed-length byte sequence owned by its holder. The bytes are
// copied in at construction time and never change afterwards, so any number
// of Views can be handed out without synchronization.
type Payload struct {
	data []byte
}

// New creates a Payload by copying the provided bytes. The caller keeps
// ownership of its slice; later mutations of it are not observed. A nil or
// empty slice yields a valid zero-length payload.
func New(data []byte) Payload {
	if len(data) == 0 {
		return Payload{}
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return Payload{data: owned}
}

// Len returns the payload length in bytes.
func (p Payload) Len() int {
	return len(p.data)
}

// View returns a fresh read-only view over the payload.
func (p Payload) View() View {
	return View{data: p.data}
}

// View is a read-only window over a Payload. Hooks receive a View and must
// never be able to mutate the underlying bytes through it.
type View struct {
	data []byte
}

// Len returns the number of viewable bytes.
func (v View) Len() int {
	return len(v.data)
}

// At returns the byte at index i. It panics if i is out of range, mirroring
// slice indexing.
func (v View) At(i int) byte {
	return v.data[i]
}

// Bytes returns a copy of the viewed bytes. The returned slice is owned by
// the caller; writing to it does not affect the payload.
func (v View) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

// String renders the view in debug form, e.g. "[1 2 3]".
func (v View) String() string {
	return fmt.Sprintf("%v", v.data)
}
