package smpp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := newWriter().
		u8(0x34).
		u16(0x0102).
		u32(0xdeadbeef).
		cOctetString("hello").
		octetString([]byte{1, 2, 3}).
		tlv(TagSarMsgRefNum, []byte{0x00, 0x01})

	r := newReader(w.bytes())
	b, err := r.u8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x34), b)

	u16, err := r.u16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	u32, err := r.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), u32)

	s, err := r.cOctetString(0)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	oct, err := r.octetString(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, oct)

	tag, val, err := r.tlv()
	require.NoError(t, err)
	assert.Equal(t, TagSarMsgRefNum, tag)
	assert.Equal(t, []byte{0x00, 0x01}, val)
	assert.Zero(t, r.len())
}

func TestCOctetStringMissingTerminator(t *testing.T) {
	r := newReader([]byte("no-terminator"))
	_, err := r.cOctetString(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTerminator))
}

func TestCOctetStringExceedsFieldMax(t *testing.T) {
	r := newReader([]byte("123456789\x00"))
	_, err := r.cOctetString(6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTerminator))
}
