package smpp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryResp(t *testing.T) {
	body := newWriter().
		cOctetString("msg-42").
		cOctetString("2501011200000R").
		u8(MessageStateDelivered).
		u8(0).
		bytes()

	got, err := parseQueryResp(body)
	require.NoError(t, err)
	assert.Equal(t, "msg-42", got.MessageID)
	assert.Equal(t, "2501011200000R", got.FinalDate)
	assert.Equal(t, MessageStateDelivered, got.MessageState)
	assert.Zero(t, got.ErrorCode)
}

func TestParseReceiptText(t *testing.T) {
	text := "id:1234567890 sub:001 dlvrd:001 submit date:2501011200 done date:2501011201 stat:DELIVRD err:000 text:Hello World"
	r, err := parseReceiptText([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, "1234567890", r.ID)
	assert.Equal(t, "001", r.Sub)
	assert.Equal(t, "001", r.Dlvrd)
	assert.Equal(t, StatDelivered, r.Stat)
	assert.Equal(t, "000", r.Err)
	assert.Equal(t, "Hello World", r.Text)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), r.SubmitDate)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC), r.DoneDate)
}

func TestParseSMSDetectsDeliveryReceipt(t *testing.T) {
	src, err := NewAddress("5678", TONInternational, NPIISDN)
	require.NoError(t, err)
	dst, err := NewAddress("1234", TONInternational, NPIISDN)
	require.NoError(t, err)

	receiptText := "id:1 sub:001 dlvrd:001 submit date:2501011200 done date:2501011201 stat:DELIVRD err:000 text:"
	body := newWriter().
		cOctetString("").
		u8(src.TON).u8(src.NPI).cOctetString(src.Value).
		u8(dst.TON).u8(dst.NPI).cOctetString(dst.Value).
		u8(esmReceiptBit).
		u8(0).u8(0).cOctetString("").cOctetString("").
		u8(0).u8(0).u8(DataCodingDefault).u8(0).
		u8(byte(len(receiptText))).octetString([]byte(receiptText)).
		bytes()

	pdu := newPDU(DeliverSm, 1, body)
	parsed, err := parseSMS(pdu)
	require.NoError(t, err)
	dr, ok := parsed.(*DeliveryReceipt)
	require.True(t, ok, "esm_class receipt bit must route to *DeliveryReceipt")
	assert.True(t, dr.IsDeliveryReceipt())
	assert.Equal(t, StatDelivered, dr.Receipt.Stat)
}

func TestParseSMSOrdinaryMessage(t *testing.T) {
	src, _ := NewAddress("5678", TONInternational, NPIISDN)
	dst, _ := NewAddress("1234", TONInternational, NPIISDN)
	body := newWriter().
		cOctetString("").
		u8(src.TON).u8(src.NPI).cOctetString(src.Value).
		u8(dst.TON).u8(dst.NPI).cOctetString(dst.Value).
		u8(0).
		u8(0).u8(0).cOctetString("").cOctetString("").
		u8(0).u8(0).u8(DataCodingDefault).u8(0).
		u8(byte(len("hi"))).octetString([]byte("hi")).
		bytes()

	pdu := newPDU(DeliverSm, 1, body)
	parsed, err := parseSMS(pdu)
	require.NoError(t, err)
	sms, ok := parsed.(*SMS)
	require.True(t, ok)
	assert.False(t, sms.IsDeliveryReceipt())
	assert.Equal(t, "hi", string(sms.Payload()))
}
