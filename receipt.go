package smpp

import (
	"strings"
	"time"
)

// Delivery receipt stat values (spec.md §3).
const (
	StatDelivered    = "DELIVRD"
	StatExpired      = "EXPIRED"
	StatDeleted      = "DELETED"
	StatUndeliverable = "UNDELIV"
	StatAccepted     = "ACCEPTD"
	StatUnknown      = "UNKNOWN"
	StatRejected     = "REJECTD"
)

// receiptKeys is the fixed, ordered key list spec.md §4.D names. Parsing
// is positional against this list rather than a free-form key=value
// split, since the text value itself (the last field) may contain
// spaces and SMSC implementations vary in whitespace around the
// separators.
var receiptKeys = []string{"id", "sub", "dlvrd", "submit date", "done date", "stat", "err", "text"}

// Receipt holds the fields parsed out of a delivery receipt's textual
// short_message body (spec.md §3).
type Receipt struct {
	ID         string
	Sub        string
	Dlvrd      string
	SubmitDate time.Time
	DoneDate   time.Time
	Stat       string
	Err        string
	Text       string
}

// DeliveryReceipt is an SMS whose esm_class receipt bit is set, with
// the additional Receipt fields spec.md §3 names. Produced by parseSMS,
// never constructed directly by callers.
type DeliveryReceipt struct {
	SMS
	Receipt Receipt
}

// parseReceiptText extracts the id/sub/dlvrd/submit date/done date/
// stat/err/text fields from a receipt's short_message body, per
// spec.md §4.D's positional parsing rule.
func parseReceiptText(body []byte) (Receipt, error) {
	s := string(body)
	values := make(map[string]string, len(receiptKeys))
	pos := 0
	for i, key := range receiptKeys {
		label := key + ":"
		idx := strings.Index(s[pos:], label)
		if idx < 0 {
			return Receipt{}, newError(KindTruncatedBody, "truncated_body: receipt field "+key, nil)
		}
		valStart := pos + idx + len(label)
		var value string
		if i+1 < len(receiptKeys) {
			nextLabel := receiptKeys[i+1] + ":"
			nextIdx := strings.Index(s[valStart:], nextLabel)
			if nextIdx < 0 {
				value = s[valStart:]
				pos = len(s)
			} else {
				value = s[valStart : valStart+nextIdx]
				pos = valStart + nextIdx
			}
		} else {
			value = s[valStart:]
		}
		values[key] = strings.TrimSpace(value)
	}

	submitDate, err := parseReceiptTime(values["submit date"])
	if err != nil {
		return Receipt{}, err
	}
	doneDate, err := parseReceiptTime(values["done date"])
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{
		ID:         values["id"],
		Sub:        values["sub"],
		Dlvrd:      values["dlvrd"],
		SubmitDate: submitDate,
		DoneDate:   doneDate,
		Stat:       values["stat"],
		Err:        values["err"],
		Text:       values["text"],
	}, nil
}
