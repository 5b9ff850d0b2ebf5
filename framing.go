package smpp

import (
	"encoding/binary"
	"io"
)

// minPDULen is the header-only size; maxPDULen bounds command_length
// per spec.md §4.B.
const (
	minPDULen = 16
	maxPDULen = 65536
)

// parseHeader decodes the first 16 bytes of b as a Header, ignoring any
// trailing bytes. Fails with KindHeaderTooShort if b has fewer than 16
// bytes (spec.md §4.D, scenario S2).
func parseHeader(b []byte) (Header, error) {
	if len(b) < minPDULen {
		return Header{}, newError(KindHeaderTooShort, "header_too_short", nil)
	}
	return Header{
		CommandLength: binary.BigEndian.Uint32(b[0:4]),
		CommandID:     CommandID(binary.BigEndian.Uint32(b[4:8])),
		Status:        CommandStatus(binary.BigEndian.Uint32(b[8:12])),
		Sequence:      binary.BigEndian.Uint32(b[12:16]),
	}, nil
}

// encodeHeader serializes h to its 16-byte wire form.
func encodeHeader(h Header) []byte {
	buf := make([]byte, minPDULen)
	binary.BigEndian.PutUint32(buf[0:4], h.CommandLength)
	binary.BigEndian.PutUint32(buf[4:8], uint32(h.CommandID))
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.Status))
	binary.BigEndian.PutUint32(buf[12:16], h.Sequence)
	return buf
}

// writePDU serializes p (header recomputed from len(p.Body)) and writes
// it to w as a single Write call, grounded on the teacher's
// connection.writePDU. p itself is not modified.
func writePDU(w io.Writer, p *PDU) error {
	h := p.Header
	h.CommandLength = uint32(minPDULen + len(p.Body))
	buf := make([]byte, 0, h.CommandLength)
	buf = append(buf, encodeHeader(h)...)
	buf = append(buf, p.Body...)
	_, err := w.Write(buf)
	if err != nil {
		if se, ok := err.(*Error); ok {
			return se
		}
		return newError(KindTransport, "write pdu", err)
	}
	return nil
}

// readPDU reads exactly one complete PDU from r: 16 header bytes, then
// validates bounds, then command_length-16 body bytes. Grounded on the
// teacher's connection.readPDU, generalized to bound command_length
// (the teacher trusted the peer unconditionally).
func readPDU(r io.Reader) (*PDU, error) {
	headerBuf := make([]byte, minPDULen)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newError(KindTransport, "connection closed while reading header", err)
		}
		return nil, classifyReadError(err)
	}
	h, err := parseHeader(headerBuf)
	if err != nil {
		return nil, err
	}
	if h.CommandLength < minPDULen || h.CommandLength > maxPDULen {
		return nil, newError(KindTruncatedBody, "command_length out of bounds", nil)
	}
	bodyLen := int(h.CommandLength) - minPDULen
	body := make([]byte, bodyLen)
	if bodyLen > 0 {
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, classifyReadError(err)
		}
	}
	return &PDU{Header: h, Body: body}, nil
}

// classifyReadError distinguishes a retryable timeout from a fatal
// transport error, per spec.md §7. A Transport already classifies its
// own read errors before handing them to io.ReadFull, so an *Error that
// arrives here is passed through unchanged rather than re-wrapped.
func classifyReadError(err error) error {
	if se, ok := err.(*Error); ok {
		return se
	}
	if ne, ok := err.(interface{ Timeout() bool }); ok && ne.Timeout() {
		return newError(KindTimeout, "read timeout", err)
	}
	return newError(KindTransport, "read pdu", err)
}

// transportReadWriter adapts a Transport's bounded Read(n)/Write(b) to
// io.Reader/io.Writer so Session can delegate to writePDU/readPDU above
// instead of reimplementing header/body framing itself.
type transportReadWriter struct {
	t Transport
}

func (trw transportReadWriter) Read(p []byte) (int, error) {
	b, err := trw.t.Read(len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, b), nil
}

func (trw transportReadWriter) Write(p []byte) (int, error) {
	if err := trw.t.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
