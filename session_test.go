package smpp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionBindSubmitRoundTrip(t *testing.T) {
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		switch h.CommandID {
		case BindTransmitter:
			return []*PDU{newResponsePDU(BindTransmitterResp, h.Sequence, StatusOK, newWriter().cOctetString("smsc").bytes())}
		case SubmitSm:
			return []*PDU{newResponsePDU(SubmitSmResp, h.Sequence, StatusOK, newWriter().cOctetString("msg-1").bytes())}
		}
		return nil
	}}

	sess := NewSession(ft, NewConfig())
	require.NoError(t, sess.Open())
	require.NoError(t, sess.Bind(BindModeTransmitter, "user", "pass"))
	assert.Equal(t, StateBoundTx, sess.State())

	src, err := NewAddress("1234", TONInternational, NPIISDN)
	require.NoError(t, err)
	dst, err := NewAddress("5678", TONInternational, NPIISDN)
	require.NoError(t, err)

	msgID, err := sess.SubmitOne(SubmitRequest{
		Source:       src,
		Dest:         dst,
		ShortMessage: []byte("Hello World"),
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", msgID)
}

func TestSessionBindFailure(t *testing.T) {
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		return []*PDU{newResponsePDU(BindTransmitterResp, h.Sequence, StatusInvPaswd, nil)}
	}}
	sess := NewSession(ft, NewConfig())
	require.NoError(t, sess.Open())

	err := sess.Bind(BindModeTransmitter, "user", "wrong")
	require.Error(t, err)
	var smppErr *Error
	require.True(t, errors.As(err, &smppErr))
	assert.Equal(t, KindBindFailed, smppErr.Kind)
	assert.Equal(t, StatusInvPaswd, smppErr.Status)
	assert.True(t, errors.Is(err, ErrBindFailed))
	assert.Equal(t, StateClosed, sess.State(), "a failed bind must close the transport")
	assert.True(t, ft.closed)
}

func TestSessionAutoRepliesEnquireLink(t *testing.T) {
	var acked bool
	ft := &fakeTransport{}
	ft.responder = func(h Header, body []byte) []*PDU {
		switch h.CommandID {
		case QuerySm:
			return []*PDU{
				newPDU(EnquireLink, 9001, nil),
				newResponsePDU(QuerySmResp, h.Sequence, StatusOK,
					newWriter().cOctetString("msg-1").cOctetString("").u8(MessageStateDelivered).u8(0).bytes()),
			}
		case EnquireLinkResp:
			acked = true
			return nil
		}
		return nil
	}

	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundTrx // bypass bind for this unit test

	src, _ := NewAddress("1234", TONInternational, NPIISDN)
	result, err := sess.Query("msg-1", src)
	require.NoError(t, err)
	assert.True(t, acked, "session must auto-acknowledge an interleaved enquire_link")
	assert.Equal(t, "msg-1", result.MessageID)
	assert.Equal(t, MessageStateDelivered, result.MessageState)
}

func TestSessionUnsolicitedResponseIsProtocolViolation(t *testing.T) {
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		// Respond with a submit_sm_resp carrying the wrong sequence
		// number: never matches what Query is waiting for, and isn't one
		// of the recognized unsolicited PDUs either.
		return []*PDU{newResponsePDU(SubmitSmResp, h.Sequence+1, StatusOK, nil)}
	}}
	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundTrx

	src, _ := NewAddress("1234", TONInternational, NPIISDN)
	_, err := sess.Query("msg-1", src)
	require.Error(t, err)
	var smppErr *Error
	require.True(t, errors.As(err, &smppErr))
	assert.Equal(t, KindProtocolViolation, smppErr.Kind)
	assert.Equal(t, StateClosed, sess.State(), "session must close on a protocol violation")
}

func TestSessionGenericNackResolvesInFlightRequestAsFailure(t *testing.T) {
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		// A real GENERIC_NACK, not merely a mismatched-sequence response:
		// the SMSC rejected the request outright.
		return []*PDU{newResponsePDU(GenericNack, h.Sequence, StatusInvCmdID, nil)}
	}}
	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundTrx

	_, err := sess.EnquireLink()
	require.Error(t, err)
	var smppErr *Error
	require.True(t, errors.As(err, &smppErr))
	assert.Equal(t, KindProtocolViolation, smppErr.Kind)
	assert.Equal(t, StatusInvCmdID, smppErr.Status)
	assert.Equal(t, StateClosed, sess.State(), "a generic_nack must close the session")
}

func TestSessionOutbindIsLoggedAndIgnored(t *testing.T) {
	ft := &fakeTransport{}
	ft.toRead = append(ft.toRead, encodeHeader(Header{CommandLength: minPDULen, CommandID: Outbind, Sequence: 7})...)

	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundRx

	_, err := sess.ReceiveOne()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "outbind must be ignored, not treated as a protocol violation")
	assert.Equal(t, StateBoundRx, sess.State(), "outbind must not close the session")
}

func TestSessionAlertNotificationReturnedUnacked(t *testing.T) {
	var acked bool
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		acked = true
		return nil
	}}
	ft.toRead = append(ft.toRead, encodeHeader(Header{CommandLength: minPDULen, CommandID: AlertNotification, Sequence: 7})...)

	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundRx

	got, err := sess.ReceiveOne()
	require.NoError(t, err)
	pdu, ok := got.(*PDU)
	require.True(t, ok)
	assert.Equal(t, AlertNotification, pdu.Header.CommandID)
	assert.False(t, acked, "alert_notification carries no response and must never be acked")
}

func TestSessionDeliverSmReturnedAndAcked(t *testing.T) {
	var ackedSeq uint32
	ft := &fakeTransport{}
	ft.responder = func(h Header, body []byte) []*PDU {
		if h.CommandID == DeliverSmResp {
			ackedSeq = h.Sequence
		}
		return nil
	}
	sess := NewSession(ft, NewConfig())
	sess.state = StateBoundRx

	src, _ := NewAddress("1234", TONInternational, NPIISDN)
	dst, _ := NewAddress("5678", TONInternational, NPIISDN)
	body := newWriter().
		cOctetString("").
		u8(src.TON).u8(src.NPI).cOctetString(src.Value).
		u8(dst.TON).u8(dst.NPI).cOctetString(dst.Value).
		u8(0).u8(0).u8(0).cOctetString("").cOctetString("").
		u8(0).u8(0).u8(DataCodingDefault).u8(0).
		u8(byte(len("hi"))).octetString([]byte("hi")).bytes()
	ft.toRead = append(encodeHeader(Header{CommandLength: uint32(minPDULen + len(body)), CommandID: DeliverSm, Sequence: 42}), body...)

	got, err := sess.ReceiveOne()
	require.NoError(t, err)
	sms, ok := got.(*SMS)
	require.True(t, ok)
	assert.Equal(t, "hi", string(sms.ShortMessage))
	assert.Equal(t, uint32(42), ackedSeq)
}

func TestSequenceWrapsBeforeOverflow(t *testing.T) {
	sess := NewSession(&fakeTransport{}, NewConfig())
	sess.seq = 0x7fffffff
	first := sess.nextSeq()
	second := sess.nextSeq()
	assert.Equal(t, uint32(0x7fffffff), first)
	assert.Equal(t, uint32(1), second, "sequence must wrap back to 1, never emit 0")
}
