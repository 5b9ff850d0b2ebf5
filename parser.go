package smpp

import "fmt"

// SMS is the parsed deliver_sm/submit_sm body view (spec.md §3).
// Produced by parseSMS; a DeliveryReceipt is an SMS whose esm_class
// receipt bit is set, carrying the additionally-parsed receipt fields.
type SMS struct {
	ServiceType         string
	Source              Address
	Dest                Address
	EsmClass            byte
	ProtocolID          byte
	Priority            byte
	ScheduleTime        string
	ValidityPeriod      string
	RegisteredDelivery  byte
	ReplaceIfPresent    byte
	DataCoding          byte
	DefaultMsgID        byte
	ShortMessage        []byte
	TLVs                []TLV
}

// esmReceiptBit is esm_class bit 0x04: "SMSC Delivery Receipt".
const esmReceiptBit = 0x04

// esmUDHIBit is esm_class bit 0x40, set on segments carrying a UDH.
const esmUDHIBit = 0x40

// IsDeliveryReceipt reports whether esm_class marks this SMS as a
// delivery receipt (spec.md §8, invariant 5).
func (s SMS) IsDeliveryReceipt() bool {
	return s.EsmClass&esmReceiptBit != 0
}

// Payload returns the message content: ShortMessage unless a
// MESSAGE_PAYLOAD TLV is present, in which case that TLV's value is
// authoritative (spec.md §3: "short_message bytes (may be empty if
// MESSAGE_PAYLOAD TLV present)").
func (s SMS) Payload() []byte {
	if tlv, ok := findTLV(s.TLVs, TagMessagePayload); ok {
		return tlv.Value
	}
	return s.ShortMessage
}

// parseSMS interprets pdu's body as a deliver_sm/submit_sm (spec.md
// §4.D). If esm_class marks a delivery receipt, the returned value is a
// *DeliveryReceipt; otherwise it is an *SMS. Grounded on
// ajankovic-smpp/pdu/deliver_sm.go's field-by-field UnmarshalBinary.
func parseSMS(pdu *PDU) (interface{}, error) {
	r := newReader(pdu.Body)

	serviceType, err := r.cOctetString(6)
	if err != nil {
		return nil, wrapTruncated("service_type", err)
	}
	srcTON, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("source_addr_ton", err)
	}
	srcNPI, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("source_addr_npi", err)
	}
	srcAddr, err := r.cOctetString(21)
	if err != nil {
		return nil, wrapTruncated("source_addr", err)
	}
	dstTON, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("dest_addr_ton", err)
	}
	dstNPI, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("dest_addr_npi", err)
	}
	dstAddr, err := r.cOctetString(21)
	if err != nil {
		return nil, wrapTruncated("destination_addr", err)
	}
	esmClass, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("esm_class", err)
	}
	protocolID, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("protocol_id", err)
	}
	priority, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("priority_flag", err)
	}
	scheduleTime, err := r.cOctetString(17)
	if err != nil {
		return nil, wrapTruncated("schedule_delivery_time", err)
	}
	validityPeriod, err := r.cOctetString(17)
	if err != nil {
		return nil, wrapTruncated("validity_period", err)
	}
	registeredDelivery, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("registered_delivery", err)
	}
	replaceIfPresent, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("replace_if_present_flag", err)
	}
	dataCoding, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("data_coding", err)
	}
	defaultMsgID, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("sm_default_msg_id", err)
	}
	smLength, err := r.u8()
	if err != nil {
		return nil, wrapTruncated("sm_length", err)
	}
	shortMessage, err := r.octetString(int(smLength))
	if err != nil {
		return nil, wrapTruncated("short_message", err)
	}
	tlvs, err := parseTLVs(r.rest())
	if err != nil {
		return nil, wrapTruncated("optional_parameters", err)
	}

	src, err := NewAddress(srcAddr, srcTON, srcNPI)
	if err != nil {
		return nil, err
	}
	dst, err := NewAddress(dstAddr, dstTON, dstNPI)
	if err != nil {
		return nil, err
	}

	sms := SMS{
		ServiceType:        serviceType,
		Source:             src,
		Dest:               dst,
		EsmClass:           esmClass,
		ProtocolID:         protocolID,
		Priority:           priority,
		ScheduleTime:       scheduleTime,
		ValidityPeriod:     validityPeriod,
		RegisteredDelivery: registeredDelivery,
		ReplaceIfPresent:   replaceIfPresent,
		DataCoding:         dataCoding,
		DefaultMsgID:       defaultMsgID,
		ShortMessage:       shortMessage,
		TLVs:               tlvs,
	}

	if !sms.IsDeliveryReceipt() {
		return &sms, nil
	}
	receipt, err := parseReceiptText(sms.Payload())
	if err != nil {
		return nil, err
	}
	return &DeliveryReceipt{SMS: sms, Receipt: receipt}, nil
}

// parseBindResp interprets a BIND_*_RESP body: system_id followed by
// optional TLVs. Empty bodies are allowed when the response carries a
// failure status (spec.md §4.D).
func parseBindResp(body []byte) (systemID string, tlvs []TLV, err error) {
	if len(body) == 0 {
		return "", nil, nil
	}
	r := newReader(body)
	systemID, err = r.cOctetString(0)
	if err != nil {
		return "", nil, wrapTruncated("system_id", err)
	}
	tlvs, err = parseTLVs(r.rest())
	if err != nil {
		return "", nil, wrapTruncated("optional_parameters", err)
	}
	return systemID, tlvs, nil
}

// parseSubmitResp interprets a SUBMIT_SM_RESP body: message_id as a
// C-Octet String (spec.md §4.D).
func parseSubmitResp(body []byte) (messageID string, err error) {
	if len(body) == 0 {
		return "", nil
	}
	r := newReader(body)
	messageID, err = r.cOctetString(0)
	if err != nil {
		return "", wrapTruncated("message_id", err)
	}
	return messageID, nil
}

// QueryResult is the parsed QUERY_SM_RESP the façade returns
// (spec.md §4.D/§4.G).
type QueryResult struct {
	MessageID    string
	FinalDate    string
	MessageState uint8
	ErrorCode    uint8
}

// parseQueryResp interprets a QUERY_SM_RESP body (spec.md §4.D).
func parseQueryResp(body []byte) (QueryResult, error) {
	r := newReader(body)
	messageID, err := r.cOctetString(0)
	if err != nil {
		return QueryResult{}, wrapTruncated("message_id", err)
	}
	finalDate, err := r.cOctetString(17)
	if err != nil {
		return QueryResult{}, wrapTruncated("final_date", err)
	}
	state, err := r.u8()
	if err != nil {
		return QueryResult{}, wrapTruncated("message_state", err)
	}
	errCode, err := r.u8()
	if err != nil {
		return QueryResult{}, wrapTruncated("error_code", err)
	}
	return QueryResult{
		MessageID:    messageID,
		FinalDate:    finalDate,
		MessageState: state,
		ErrorCode:    errCode,
	}, nil
}

func wrapTruncated(field string, err error) error {
	if e, ok := err.(*Error); ok && e.Kind == KindMissingTerminator {
		return e
	}
	return newError(KindTruncatedBody, fmt.Sprintf("truncated_body: %s", field), err)
}

// Message-state values a QUERY_SM_RESP/delivery receipt may carry
// (SMPP 3.4 §5.2.28).
const (
	MessageStateEnroute       uint8 = 1
	MessageStateDelivered     uint8 = 2
	MessageStateExpired       uint8 = 3
	MessageStateDeleted       uint8 = 4
	MessageStateUndeliverable uint8 = 5
	MessageStateAccepted      uint8 = 6
	MessageStateUnknown       uint8 = 7
	MessageStateRejected      uint8 = 8
)
