package smpp

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SessionState names where a Session sits in the bind lifecycle
// spec.md §5 describes: Closed -> Open -> Bound(Tx|Rx|Trx) ->
// Unbinding -> Closed.
type SessionState int

const (
	StateClosed SessionState = iota
	StateOpen
	StateBoundTx
	StateBoundRx
	StateBoundTrx
	StateUnbinding
)

func (s SessionState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateBoundTx:
		return "bound_tx"
	case StateBoundRx:
		return "bound_rx"
	case StateBoundTrx:
		return "bound_trx"
	case StateUnbinding:
		return "unbinding"
	default:
		return "closed"
	}
}

func boundStateFor(mode BindMode) SessionState {
	switch mode {
	case BindModeReceiver:
		return StateBoundRx
	case BindModeTransceiver:
		return StateBoundTrx
	default:
		return StateBoundTx
	}
}

// SubmitRequest carries one segment's worth of SUBMIT_SM fields
// (spec.md §4.D). The façade is responsible for segmentation; a Session
// sends exactly one submit_sm per SubmitOne call.
type SubmitRequest struct {
	ServiceType        string
	Source             Address
	Dest               Address
	EsmClass           byte
	ProtocolID         byte
	Priority           byte
	ScheduleTime       string
	ValidityPeriod     string
	RegisteredDelivery byte
	ReplaceIfPresent   byte
	DataCoding         byte
	DefaultMsgID       byte
	ShortMessage       []byte
	TLVs               []TLV
}

// Session is the ESME-side state machine spec.md §5 describes: a bound
// sequence allocator, a synchronous request/response round trip, and an
// inbox fed by unsolicited deliver_sm while waiting on something else.
// Grounded on ajankovic-smpp/session.go's makeTransition and sendPDU,
// trimmed to the ESME-only direction and to a single-goroutine "pump on
// demand" model instead of the pack's background read loop + channel
// fan-out (SPEC_FULL.md §9, Open Question 1).
type Session struct {
	transport Transport
	cfg       Config
	logger    Logger
	id        uuid.UUID

	state    SessionState
	bindMode BindMode
	seq      uint32
	inbox    []interface{}
}

// NewSession builds a Session over transport, unopened, in StateClosed.
// Each Session is tagged with a random id used only for log
// correlation (spec.md §6's ambient logging, grounded on
// sagostin-gomsggw's uuid-tagged session logs).
func NewSession(transport Transport, cfg Config) *Session {
	return &Session{
		transport: transport,
		cfg:       cfg,
		logger:    cfg.Logger,
		id:        uuid.New(),
		state:     StateClosed,
		seq:       1,
	}
}

// ID returns the Session's log-correlation identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State reports the session's current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Open dials the transport and moves Closed -> Open.
func (s *Session) Open() error {
	if err := s.transport.Open(); err != nil {
		return err
	}
	s.state = StateOpen
	return nil
}

// Close tears down the transport unconditionally, moving to Closed.
// Never returns an error the caller must act on beyond logging;
// mirrors spec.md §4.G's close() contract.
func (s *Session) Close() error {
	err := s.transport.Close()
	s.state = StateClosed
	s.bindMode = BindNone
	return err
}

func (s *Session) nextSeq() uint32 {
	seq := s.seq
	s.seq++
	if s.seq > 0x7fffffff {
		s.seq = 1
	}
	return seq
}

// Bind sends the BIND_* request for mode and waits for its response,
// moving Open -> Bound(mode) on success (spec.md §5).
func (s *Session) Bind(mode BindMode, systemID, password string) error {
	if s.state != StateOpen {
		return newError(KindProtocolViolation, "bind called outside state open", nil)
	}
	w := newWriter().
		cOctetString(systemID).
		cOctetString(password).
		cOctetString(s.cfg.SystemType).
		u8(0x34). // interface_version 3.4
		u8(s.cfg.SourceTON).
		u8(s.cfg.SourceNPI).
		cOctetString(s.cfg.AddressRange)

	resp, err := s.roundTrip(bindCommandFor(mode), w.bytes())
	if err != nil {
		return err
	}
	if resp.Header.Status != StatusOK {
		s.Close()
		return newStatusError(KindBindFailed, resp.Header.Status)
	}
	if _, _, err := parseBindResp(resp.Body); err != nil {
		s.Close()
		return err
	}
	s.bindMode = mode
	s.state = boundStateFor(mode)
	s.logger.Infof("session %s bound as %s (system_id=%s)", s.id, mode, systemID)
	return nil
}

// SubmitOne sends one submit_sm and returns the message_id the SMSC
// assigns (spec.md §4.D).
func (s *Session) SubmitOne(req SubmitRequest) (string, error) {
	w := newWriter().
		cOctetString(req.ServiceType).
		u8(req.Source.TON).u8(req.Source.NPI).cOctetString(req.Source.Value).
		u8(req.Dest.TON).u8(req.Dest.NPI).cOctetString(req.Dest.Value).
		u8(req.EsmClass).
		u8(req.ProtocolID).
		u8(req.Priority).
		cOctetString(req.ScheduleTime).
		cOctetString(req.ValidityPeriod).
		u8(req.RegisteredDelivery).
		u8(req.ReplaceIfPresent).
		u8(req.DataCoding).
		u8(req.DefaultMsgID).
		u8(byte(len(req.ShortMessage))).
		octetString(req.ShortMessage)
	for _, t := range req.TLVs {
		w.tlv(t.Tag, t.Value)
	}

	resp, err := s.roundTrip(SubmitSm, w.bytes())
	if err != nil {
		return "", err
	}
	if resp.Header.Status != StatusOK {
		return "", newStatusError(KindSubmitFailed, resp.Header.Status)
	}
	return parseSubmitResp(resp.Body)
}

// Query sends a query_sm for messageID, originated by source, and
// returns the parsed response (spec.md §4.D).
func (s *Session) Query(messageID string, source Address) (QueryResult, error) {
	w := newWriter().
		cOctetString(messageID).
		u8(source.TON).u8(source.NPI).cOctetString(source.Value)

	resp, err := s.roundTrip(QuerySm, w.bytes())
	if err != nil {
		return QueryResult{}, err
	}
	if resp.Header.Status != StatusOK {
		return QueryResult{}, newStatusError(KindQueryFailed, resp.Header.Status)
	}
	return parseQueryResp(resp.Body)
}

// EnquireLink sends an enquire_link and waits for its response, the
// session's keep-alive primitive. Returns the response PDU for
// introspection (spec.md §4.F, §4.G).
func (s *Session) EnquireLink() (*PDU, error) {
	return s.roundTrip(EnquireLink, nil)
}

// Unbind sends an unbind request, waits for its response regardless of
// status, and moves to Closed (spec.md §5).
func (s *Session) Unbind() error {
	if s.state == StateClosed {
		return nil
	}
	s.state = StateUnbinding
	_, err := s.roundTrip(Unbind, nil)
	closeErr := s.transport.Close()
	s.state = StateClosed
	s.bindMode = BindNone
	if err != nil && !errors.Is(err, ErrTimeout) {
		return err
	}
	return closeErr
}

// PopInbox returns and removes the oldest queued unsolicited entry (an
// *SMS, *DeliveryReceipt or alert_notification *PDU), if any (spec.md
// §4.G: read_sms is inbox-first).
func (s *Session) PopInbox() (interface{}, bool) {
	if len(s.inbox) == 0 {
		return nil, false
	}
	v := s.inbox[0]
	s.inbox = s.inbox[1:]
	return v, true
}

// ReceiveOne performs a single bounded read from the transport: it
// returns the oldest inbox entry if there is one, and otherwise attempts
// exactly one PDU read. A deliver_sm is auto-acknowledged and returned;
// an enquire_link is auto-acknowledged and reported as ErrTimeout
// (nothing delivered this round); an outbind is logged and ignored; an
// alert_notification is returned as its raw *PDU and never
// acknowledged, since it carries no response PDU (spec.md §4.C). Any
// other PDU closes the session with a protocol violation. Grounded on spec.md
// §4.G's read_sms contract and §9's resolution of Open Question 1 (no
// background reader goroutine).
func (s *Session) ReceiveOne() (interface{}, error) {
	if v, ok := s.PopInbox(); ok {
		return v, nil
	}
	pdu, err := s.readPDU()
	if err != nil {
		return nil, err
	}
	switch pdu.Header.CommandID {
	case DeliverSm:
		parsed, err := parseSMS(pdu)
		if err != nil {
			return nil, err
		}
		s.replyEmpty(DeliverSmResp, pdu.Header.Sequence)
		return parsed, nil
	case EnquireLink:
		s.writePDU(newResponsePDU(EnquireLinkResp, pdu.Header.Sequence, StatusOK, nil))
		return nil, ErrTimeout
	case Outbind:
		s.logger.Infof("session %s received outbind, ignoring", s.id)
		return nil, ErrTimeout
	case AlertNotification:
		return pdu, nil
	default:
		closeErr := s.Close()
		_ = closeErr
		return nil, newError(KindProtocolViolation, fmt.Sprintf("unexpected pdu %s while idle", pdu.Header.CommandID), nil)
	}
}

// roundTrip sends one request and blocks until its matching response
// arrives, servicing the interleaved PDUs handleUnsolicited accepts
// (a generic_nack ends the wait with an error). Any PDU it does not
// accept is a protocol violation: the session closes and the error is
// returned (spec.md §9, Open Question 2).
func (s *Session) roundTrip(id CommandID, body []byte) (*PDU, error) {
	seq := s.nextSeq()
	if err := s.writePDU(newPDU(id, seq, body)); err != nil {
		return nil, err
	}
	want := id.ResponseID()
	for {
		resp, err := s.readPDU()
		if err != nil {
			return nil, err
		}
		if resp.Header.CommandID == want && resp.Header.Sequence == seq {
			return resp, nil
		}
		handled, herr := s.handleUnsolicited(resp)
		if herr != nil {
			return nil, herr
		}
		if handled {
			continue
		}
		s.Close()
		return nil, newError(KindProtocolViolation,
			fmt.Sprintf("unsolicited %s/seq=%d while awaiting %s/seq=%d", resp.Header.CommandID, resp.Header.Sequence, want, seq), nil)
	}
}

// handleUnsolicited services the PDUs a bound session may legitimately
// receive while a roundTrip is waiting on something else: inbound
// deliver_sm (queued, auto-acked), inbound enquire_link (auto-acked,
// the SMSC's own keep-alive), a stray enquire_link_resp (dropped),
// outbind (logged and ignored), and alert_notification (queued to the
// inbox, never acked) per spec.md
// §4.C. A generic_nack resolves the in-flight request it answers with a
// protocol failure rather than being silently absorbed (spec.md §4.F
// rule (d), SPEC_FULL.md §4.F). Anything else is reported unhandled so
// the caller can treat it as a protocol violation.
func (s *Session) handleUnsolicited(pdu *PDU) (handled bool, err error) {
	switch pdu.Header.CommandID {
	case DeliverSm:
		parsed, perr := parseSMS(pdu)
		if perr != nil {
			return true, perr
		}
		s.inbox = append(s.inbox, parsed)
		s.replyEmpty(DeliverSmResp, pdu.Header.Sequence)
		return true, nil
	case EnquireLink:
		s.writePDU(newResponsePDU(EnquireLinkResp, pdu.Header.Sequence, StatusOK, nil))
		return true, nil
	case EnquireLinkResp:
		return true, nil
	case Outbind:
		s.logger.Infof("session %s received outbind, ignoring", s.id)
		return true, nil
	case AlertNotification:
		s.inbox = append(s.inbox, pdu)
		return true, nil
	case GenericNack:
		s.Close()
		return true, newStatusError(KindProtocolViolation, pdu.Header.Status)
	default:
		return false, nil
	}
}

func (s *Session) replyEmpty(id CommandID, seq uint32) {
	s.writePDU(newResponsePDU(id, seq, StatusOK, newWriter().cOctetString("").bytes()))
}

// writePDU serializes p and writes it through the transport in one
// call, delegating to framing.go's writePDU over an io.Writer adapter
// so the header/body encoding lives in exactly one place.
func (s *Session) writePDU(p *PDU) error {
	return writePDU(transportReadWriter{s.transport}, p)
}

// readPDU reads exactly one PDU through the transport's bounded Read,
// delegating to framing.go's readPDU over an io.Reader adapter. A
// framing or transport error closes the session, since the byte stream
// can no longer be trusted to align; a timeout does not.
func (s *Session) readPDU() (*PDU, error) {
	p, err := readPDU(transportReadWriter{s.transport})
	if err != nil && !errors.Is(err, ErrTimeout) {
		s.Close()
	}
	return p, err
}
