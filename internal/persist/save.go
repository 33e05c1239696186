// internal/persist/save.go
package persist

import (
	"bytes"
	"errors"
	"fmt"
)

// Revision — текущая ревизия формата сохранения.
// 0: без эффективности генератора; 1: текущая.
const Revision byte = 1

var (
	ErrBadMagic        = errors.New("not a reactor save")
	ErrUnknownRevision = errors.New("unknown save revision")
)

var magic = [4]byte{'R', 'S', 'A', 'V'}

// Record описывает одну сущность в сохранении. Payload пишет сам блок.
type Record struct {
	DefID   string
	Q, R    int32
	Payload []byte
}

// SaveFile — снимок мира.
type SaveFile struct {
	Revision byte
	Tick     int64
	Seed     int64
	Records  []Record
}

// Encode serializes the save with the current revision.
func (s *SaveFile) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := NewWrites(&buf)
	for _, b := range magic {
		w.B(b)
	}
	w.B(Revision)
	w.L(s.Tick)
	w.L(s.Seed)
	w.I(int32(len(s.Records)))
	for _, rec := range s.Records {
		w.Str(rec.DefID)
		w.I(rec.Q)
		w.I(rec.R)
		w.Bytes(rec.Payload)
	}
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a save produced by Encode at any known revision.
func Decode(data []byte) (*SaveFile, error) {
	r := NewReads(bytes.NewReader(data))
	var got [4]byte
	for i := range got {
		got[i] = r.B()
	}
	if r.Err() != nil || got != magic {
		return nil, ErrBadMagic
	}
	s := &SaveFile{Revision: r.B()}
	if s.Revision > Revision {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRevision, s.Revision)
	}
	s.Tick = r.L()
	s.Seed = r.L()
	n := r.I()
	if n < 0 {
		return nil, fmt.Errorf("decode save: negative record count %d", n)
	}
	for i := int32(0); i < n && r.Err() == nil; i++ {
		s.Records = append(s.Records, Record{
			DefID:   r.Str(),
			Q:       r.I(),
			R:       r.I(),
			Payload: r.Bytes(),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}
	return s, nil
}
