package smpp

// TLV is a parsed Tag-Length-Value optional parameter (spec.md §3).
type TLV struct {
	Tag   uint16
	Value []byte
}

// Well-known TLV tags relevant to the core (spec.md §3).
const (
	TagMessagePayload  uint16 = 0x0424
	TagSarMsgRefNum    uint16 = 0x020C
	TagSarTotalSegments uint16 = 0x020E
	TagSarSegmentSeqnum uint16 = 0x020F
)

// parseTLVs reads a sequence of TLVs from the remainder of a PDU body.
func parseTLVs(body []byte) ([]TLV, error) {
	r := newReader(body)
	var out []TLV
	for r.len() > 0 {
		tag, value, err := r.tlv()
		if err != nil {
			return nil, err
		}
		out = append(out, TLV{Tag: tag, Value: value})
	}
	return out, nil
}

// findTLV returns the first TLV with the given tag, if present.
func findTLV(tlvs []TLV, tag uint16) (TLV, bool) {
	for _, t := range tlvs {
		if t.Tag == tag {
			return t, true
		}
	}
	return TLV{}, false
}
