package smpp

import "encoding/binary"

// reader decodes primitive SMPP wire types from a byte slice, advancing
// an internal cursor. Grounded on ajankovic-smpp/pdu.go's pduReader
// (ReadCString/ReadString), generalized to the full set of primitives
// spec.md §4.A names and reused by both PDU body parsing and receipt
// text parsing.
type reader struct {
	buf []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

// len returns the number of unread bytes.
func (r *reader) len() int {
	return len(r.buf) - r.pos
}

// rest returns the unread tail without consuming it.
func (r *reader) rest() []byte {
	return r.buf[r.pos:]
}

func (r *reader) u8() (byte, error) {
	if r.len() < 1 {
		return 0, newError(KindTruncatedBody, "short_read: u8", nil)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) u16() (uint16, error) {
	if r.len() < 2 {
		return 0, newError(KindTruncatedBody, "short_read: u16", nil)
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.len() < 4 {
		return 0, newError(KindTruncatedBody, "short_read: u32", nil)
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// cOctetString reads a null-terminated C-Octet String. max, if non-zero,
// bounds the number of bytes (including the terminator) that may be
// consumed before the terminator must appear; 0 means unbounded.
func (r *reader) cOctetString(max int) (string, error) {
	start := r.pos
	for {
		if r.len() == 0 {
			return "", newError(KindMissingTerminator, "missing_terminator", nil)
		}
		if max > 0 && r.pos-start >= max {
			return "", newError(KindMissingTerminator, "missing_terminator: exceeded field max", nil)
		}
		b := r.buf[r.pos]
		r.pos++
		if b == 0 {
			return string(r.buf[start : r.pos-1]), nil
		}
	}
}

// octetString reads exactly n raw bytes.
func (r *reader) octetString(n int) ([]byte, error) {
	if n < 0 || r.len() < n {
		return nil, newError(KindTruncatedBody, "short_read: octet_string", nil)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// tlv reads one Tag-Length-Value parameter.
func (r *reader) tlv() (tag uint16, value []byte, err error) {
	tag, err = r.u16()
	if err != nil {
		return 0, nil, err
	}
	length, err := r.u16()
	if err != nil {
		return 0, nil, err
	}
	value, err = r.octetString(int(length))
	if err != nil {
		return 0, nil, err
	}
	return tag, value, nil
}

// writer accumulates encoded bytes for a PDU body. Append-only, mirrors
// the teacher's pdu.write/writeByte/writeString/writeTLV helpers.
type writer struct {
	buf []byte
}

func newWriter() *writer {
	return &writer{buf: make([]byte, 0, 64)}
}

func (w *writer) u8(b byte) *writer {
	w.buf = append(w.buf, b)
	return w
}

func (w *writer) u16(v uint16) *writer {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *writer) u32(v uint32) *writer {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *writer) cOctetString(s string) *writer {
	w.buf = append(w.buf, []byte(s)...)
	w.buf = append(w.buf, 0)
	return w
}

func (w *writer) octetString(b []byte) *writer {
	w.buf = append(w.buf, b...)
	return w
}

func (w *writer) tlv(tag uint16, value []byte) *writer {
	w.u16(tag)
	w.u16(uint16(len(value)))
	w.buf = append(w.buf, value...)
	return w
}

func (w *writer) bytes() []byte {
	return w.buf
}
