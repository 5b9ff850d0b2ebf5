package smpp

// Header is the 16-byte PDU header (spec.md §3): four network-order
// 32-bit fields. Invariant: CommandLength == 16 + len(body).
type Header struct {
	CommandLength uint32
	CommandID     CommandID
	Status        CommandStatus
	Sequence      uint32
}

// PDU is a header plus its opaque body bytes (spec.md §3). Framing
// produces PDUs; the parser interprets a PDU's body for a given
// command. PDUs are immutable once constructed, per spec.md §3's
// lifecycle note.
type PDU struct {
	Header Header
	Body   []byte
}

// newPDU builds a request PDU with a zero status; CommandLength is
// computed here from the body the caller already finished building.
// Grounded on the teacher's newPDU in pdu.go.
func newPDU(id CommandID, seq uint32, body []byte) *PDU {
	return &PDU{
		Header: Header{
			CommandLength: uint32(16 + len(body)),
			CommandID:     id,
			Sequence:      seq,
		},
		Body: body,
	}
}

// newResponsePDU builds a response PDU echoing seq with the given
// status.
func newResponsePDU(id CommandID, seq uint32, status CommandStatus, body []byte) *PDU {
	return &PDU{
		Header: Header{
			CommandLength: uint32(16 + len(body)),
			CommandID:     id,
			Status:        status,
			Sequence:      seq,
		},
		Body: body,
	}
}
