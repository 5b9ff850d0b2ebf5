package smpp

import "golang.org/x/text/encoding/unicode"

var ucs2 = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// EncodeUCS2 transcodes s (UTF-8) to UCS-2 (big-endian UTF-16) bytes,
// the wire form for data_coding 0x08. Grounded on the UTF-16BE
// transcoding florentchauveau-go-smpp and akonovalovdev-smpp-with-emojis
// perform via golang.org/x/text for outbound Unicode messages.
func EncodeUCS2(s string) ([]byte, error) {
	return ucs2.NewEncoder().Bytes([]byte(s))
}

// DecodeUCS2 transcodes UCS-2 (big-endian UTF-16) bytes back to a Go
// string.
func DecodeUCS2(b []byte) (string, error) {
	out, err := ucs2.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// isASCII reports whether s is pure 7-bit ASCII, the signal SendText
// uses to prefer DEFAULT encoding over UCS-2.
func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
