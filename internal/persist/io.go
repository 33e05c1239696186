// internal/persist/io.go
package persist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrStringTooLong is returned when a string does not fit the uint16 length prefix.
var ErrStringTooLong = errors.New("string too long")

// Writes — поток big-endian значений. Первая ошибка запоминается,
// последующие записи игнорируются.
type Writes struct {
	w   io.Writer
	err error
	buf [8]byte
}

func NewWrites(w io.Writer) *Writes {
	return &Writes{w: w}
}

// Err returns the first error met while writing.
func (w *Writes) Err() error {
	return w.err
}

func (w *Writes) write(p []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(p); err != nil {
		w.err = fmt.Errorf("write: %w", err)
	}
}

func (w *Writes) B(v byte) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

func (w *Writes) Bool(v bool) {
	if v {
		w.B(1)
	} else {
		w.B(0)
	}
}

func (w *Writes) S(v int16) {
	binary.BigEndian.PutUint16(w.buf[:2], uint16(v))
	w.write(w.buf[:2])
}

func (w *Writes) I(v int32) {
	binary.BigEndian.PutUint32(w.buf[:4], uint32(v))
	w.write(w.buf[:4])
}

func (w *Writes) L(v int64) {
	binary.BigEndian.PutUint64(w.buf[:8], uint64(v))
	w.write(w.buf[:8])
}

func (w *Writes) F(v float32) {
	w.I(int32(math.Float32bits(v)))
}

// Str writes a uint16 length prefix followed by the bytes of s.
func (w *Writes) Str(s string) {
	if len(s) > math.MaxUint16 {
		if w.err == nil {
			w.err = fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
		}
		return
	}
	binary.BigEndian.PutUint16(w.buf[:2], uint16(len(s)))
	w.write(w.buf[:2])
	w.write([]byte(s))
}

// Bytes writes an int32 length prefix followed by p.
func (w *Writes) Bytes(p []byte) {
	w.I(int32(len(p)))
	w.write(p)
}

// Reads читает зеркальный поток. После первой ошибки возвращает нули.
type Reads struct {
	r   io.Reader
	err error
	buf [8]byte
}

func NewReads(r io.Reader) *Reads {
	return &Reads{r: r}
}

// Err returns the first error met while reading.
func (r *Reads) Err() error {
	return r.err
}

func (r *Reads) read(p []byte) bool {
	if r.err != nil {
		return false
	}
	if _, err := io.ReadFull(r.r, p); err != nil {
		r.err = fmt.Errorf("read: %w", err)
		return false
	}
	return true
}

func (r *Reads) B() byte {
	if !r.read(r.buf[:1]) {
		return 0
	}
	return r.buf[0]
}

func (r *Reads) Bool() bool {
	return r.B() != 0
}

func (r *Reads) S() int16 {
	if !r.read(r.buf[:2]) {
		return 0
	}
	return int16(binary.BigEndian.Uint16(r.buf[:2]))
}

func (r *Reads) I() int32 {
	if !r.read(r.buf[:4]) {
		return 0
	}
	return int32(binary.BigEndian.Uint32(r.buf[:4]))
}

func (r *Reads) L() int64 {
	if !r.read(r.buf[:8]) {
		return 0
	}
	return int64(binary.BigEndian.Uint64(r.buf[:8]))
}

func (r *Reads) F() float32 {
	return math.Float32frombits(uint32(r.I()))
}

func (r *Reads) Str() string {
	if !r.read(r.buf[:2]) {
		return ""
	}
	p := make([]byte, binary.BigEndian.Uint16(r.buf[:2]))
	if !r.read(p) {
		return ""
	}
	return string(p)
}

// maxBlob bounds length-prefixed payloads so corrupt input cannot force huge allocations.
const maxBlob = 16 << 20

func (r *Reads) Bytes() []byte {
	n := r.I()
	if r.err != nil {
		return nil
	}
	if n < 0 || n > maxBlob {
		r.err = fmt.Errorf("read: invalid payload length %d", n)
		return nil
	}
	p := make([]byte, n)
	if !r.read(p) {
		return nil
	}
	return p
}
