package smpp

import (
	"encoding/binary"
	"sync"
)

// Segment is one SUBMIT_SM-ready payload the segmenter produces:
// short_message bytes, any TLVs that must ride along (SAR_* tags or
// MESSAGE_PAYLOAD), and esm_class bits the caller must OR in (the UDHI
// bit for UDH-based concatenation). Spec.md §4.E.
type Segment struct {
	ShortMessage []byte
	TLVs         []TLV
	EsmClassBits byte
}

// Segmenter splits an outbound message into wire-size-bounded segments
// per data_coding and CSMSMethod (spec.md §4.E). Grounded on
// warthog618-sms/ms/sar/segment.go's Segmenter: a mutex-guarded
// wrapping reference counter plus coding-specific chunkers, generalized
// from TPDU user-data bytes to SMPP short_message/TLV segments.
type Segmenter struct {
	mu  sync.Mutex
	ref uint16
}

// NewSegmenter creates a Segmenter with its reference counter seeded at
// 1 (spec.md §4.E: "wrapping counter seeded at construction").
func NewSegmenter() *Segmenter {
	return &Segmenter{ref: 1}
}

// nextRef returns the next 16-bit reference number, wrapping from
// 0xFFFF back to 1 (0 is avoided so a reference number is never
// mistaken for "unset").
func (s *Segmenter) nextRef() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.ref
	s.ref++
	if s.ref == 0 {
		s.ref = 1
	}
	return r
}

// Segment splits message (already encoded per dataCoding) into one or
// more Segments. If the message fits the single-part budget it is
// returned untouched as one Segment with no CSMS fields (rule 1). A
// message exceeding the single-part budget on a coding other than
// DEFAULT/UCS2 fails with ErrUnsupportedCodingForSplit (rule 2).
func (s *Segmenter) Segment(message []byte, dataCoding uint8, method CSMSMethod) ([]Segment, error) {
	if len(message) <= singlePartBudget(dataCoding) {
		return []Segment{{ShortMessage: message}}, nil
	}
	if dataCoding != DataCodingDefault && dataCoding != DataCodingUCS2 {
		return nil, &Error{
			Kind:    KindUnsupportedCoding,
			Message: "message exceeds single-part budget for a coding that cannot be split",
		}
	}

	switch method {
	case CSMSPayloadTLV:
		return []Segment{{
			TLVs: []TLV{{Tag: TagMessagePayload, Value: message}},
		}}, nil

	case CSMSUdh8Bit:
		size := udhSegmentSize(dataCoding)
		chunks := chunkFor(dataCoding, message, size)
		if len(chunks) > 255 {
			return nil, &Error{Kind: KindUnsupportedCoding, Message: "message requires more than 255 segments"}
		}
		ref := byte(s.nextRef() & 0xFF)
		total := byte(len(chunks))
		segs := make([]Segment, len(chunks))
		for i, c := range chunks {
			udh := []byte{0x05, 0x00, 0x03, ref, total, byte(i + 1)}
			segs[i] = Segment{
				ShortMessage: append(udh, c...),
				EsmClassBits: esmUDHIBit,
			}
		}
		return segs, nil

	default: // CSMSSar16Bit
		size := sarSegmentSize(dataCoding)
		chunks := chunkFor(dataCoding, message, size)
		if len(chunks) > 255 {
			return nil, &Error{Kind: KindUnsupportedCoding, Message: "message requires more than 255 segments"}
		}
		ref := s.nextRef()
		var refBytes [2]byte
		binary.BigEndian.PutUint16(refBytes[:], ref)
		total := byte(len(chunks))
		segs := make([]Segment, len(chunks))
		for i, c := range chunks {
			segs[i] = Segment{
				ShortMessage: c,
				TLVs: []TLV{
					{Tag: TagSarMsgRefNum, Value: append([]byte(nil), refBytes[:]...)},
					{Tag: TagSarTotalSegments, Value: []byte{total}},
					{Tag: TagSarSegmentSeqnum, Value: []byte{byte(i + 1)}},
				},
			}
		}
		return segs, nil
	}
}

// singlePartBudget returns the largest short_message payload, in
// bytes, that needs no segmentation at all (spec.md §4.E).
func singlePartBudget(dataCoding uint8) int {
	if dataCoding == DataCodingUCS2 {
		return 140
	}
	return 160
}

// sarSegmentSize returns the per-segment payload budget when
// concatenating via SAR TLVs (spec.md §4.E).
func sarSegmentSize(dataCoding uint8) int {
	if dataCoding == DataCodingUCS2 {
		return 134
	}
	return 153
}

// udhSegmentSize returns the per-segment payload budget (excluding the
// 6-byte UDH itself) when concatenating via UDH (spec.md §4.E).
func udhSegmentSize(dataCoding uint8) int {
	if dataCoding == DataCodingUCS2 {
		return 132
	}
	return 153
}

func chunkFor(dataCoding uint8, msg []byte, size int) [][]byte {
	if dataCoding == DataCodingUCS2 {
		return chunkUCS2(msg, size)
	}
	return chunkBytes(msg, size)
}

// chunkBytes splits msg into chunks of at most size bytes, grounded on
// warthog618-sms/ms/sar/segment.go's chunk8Bit.
func chunkBytes(msg []byte, size int) [][]byte {
	if len(msg) == 0 {
		return nil
	}
	count := 1 + len(msg)/size
	chunks := make([][]byte, 0, count)
	start, end := 0, size
	for end < len(msg) {
		chunks = append(chunks, msg[start:end])
		start = end
		end = start + size
	}
	chunks = append(chunks, msg[start:])
	return chunks
}

const (
	surrHighStart = 0xd800
	surrLowStart  = 0xdc00
)

// chunkUCS2 splits a UTF-16BE msg into chunks of at most size bytes,
// never splitting a surrogate pair across a boundary and always
// cutting on an even (code-unit-aligned) offset. Grounded on
// warthog618-sms/ms/sar/segment.go's chunkUCS2.
func chunkUCS2(msg []byte, size int) [][]byte {
	if len(msg) == 0 {
		return nil
	}
	size = size &^ 0x1
	count := 1 + len(msg)/size
	chunks := make([][]byte, 0, count)
	start := 0
	end := start + size
	for end < len(msg) {
		r := binary.BigEndian.Uint16(msg[end-2 : end])
		if r >= surrHighStart && r < surrLowStart {
			end -= 2
		}
		chunks = append(chunks, msg[start:end])
		start = end
		end = start + size
	}
	chunks = append(chunks, msg[start:])
	return chunks
}
