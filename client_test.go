package smpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBindAndSendSMS(t *testing.T) {
	var submitted [][]byte
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		switch h.CommandID {
		case BindTransceiver:
			return []*PDU{newResponsePDU(BindTransceiverResp, h.Sequence, StatusOK, newWriter().cOctetString("smsc").bytes())}
		case SubmitSm:
			submitted = append(submitted, append([]byte(nil), body...))
			return []*PDU{newResponsePDU(SubmitSmResp, h.Sequence, StatusOK, newWriter().cOctetString("msg-1").bytes())}
		case Unbind:
			return []*PDU{newResponsePDU(UnbindResp, h.Sequence, StatusOK, nil)}
		}
		return nil
	}}

	client := NewClientWithTransport(ft, "user", "pass", NewConfig())
	require.NoError(t, client.BindTransceiver())

	id, err := client.SendSMS("1234", "5678", []byte("Hello World"), DataCodingDefault)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Len(t, submitted, 1)

	client.Close()
	assert.Equal(t, StateClosed, client.session.State())
}

func TestClientSendTextPicksUCS2ForNonASCII(t *testing.T) {
	var dataCoding byte
	ft := &fakeTransport{responder: func(h Header, body []byte) []*PDU {
		switch h.CommandID {
		case BindTransceiver:
			return []*PDU{newResponsePDU(BindTransceiverResp, h.Sequence, StatusOK, nil)}
		case SubmitSm:
			r := newReader(body)
			_, _ = r.cOctetString(6)
			_, _ = r.u8()
			_, _ = r.u8()
			_, _ = r.cOctetString(21)
			_, _ = r.u8()
			_, _ = r.u8()
			_, _ = r.cOctetString(21)
			_, _ = r.u8() // esm_class
			_, _ = r.u8() // protocol_id
			_, _ = r.u8() // priority
			_, _ = r.cOctetString(17)
			_, _ = r.cOctetString(17)
			_, _ = r.u8() // registered_delivery
			_, _ = r.u8() // replace_if_present
			dc, _ := r.u8()
			dataCoding = dc
			return []*PDU{newResponsePDU(SubmitSmResp, h.Sequence, StatusOK, newWriter().cOctetString("msg-2").bytes())}
		}
		return nil
	}}

	client := NewClientWithTransport(ft, "user", "pass", NewConfig())
	require.NoError(t, client.BindTransceiver())
	_, err := client.SendText("1234", "5678", "héllo")
	require.NoError(t, err)
	assert.Equal(t, DataCodingUCS2, dataCoding)
}
