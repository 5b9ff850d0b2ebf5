package smpp

import "fmt"

// Kind classifies the failure modes a Client or its internals can
// surface. See SPEC_FULL.md §7.
type Kind int

const (
	// KindTransport covers dial/read/write failures on the byte stream.
	// Fatal to the session.
	KindTransport Kind = iota
	// KindTimeout is a retryable expiry of a read or response wait.
	KindTimeout
	// KindHeaderTooShort means fewer than 16 bytes were available where a
	// PDU header was expected.
	KindHeaderTooShort
	// KindTruncatedBody means a PDU body ran out of bytes mid-field.
	KindTruncatedBody
	// KindMissingTerminator means a C-Octet String exceeded its field's
	// maximum length without a null terminator.
	KindMissingTerminator
	// KindUnknownCommand means a PDU carried a command_id this core does
	// not recognize.
	KindUnknownCommand
	// KindBindFailed means a bind request's response carried a non-zero
	// command_status.
	KindBindFailed
	// KindSubmitFailed means a submit_sm response carried a non-zero
	// command_status.
	KindSubmitFailed
	// KindQueryFailed means a query_sm response carried a non-zero
	// command_status.
	KindQueryFailed
	// KindUnsupportedCoding means the segmenter was asked to split a
	// message whose data_coding does not support the requested csms_method.
	KindUnsupportedCoding
	// KindInvalidAddress means an Address violates its length invariant.
	KindInvalidAddress
	// KindProtocolViolation means a received PDU could not be reconciled
	// against the pending table or the set of recognized unsolicited PDUs.
	KindProtocolViolation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport_error"
	case KindTimeout:
		return "timeout"
	case KindHeaderTooShort:
		return "header_too_short"
	case KindTruncatedBody:
		return "truncated_body"
	case KindMissingTerminator:
		return "missing_terminator"
	case KindUnknownCommand:
		return "unknown_command"
	case KindBindFailed:
		return "bind_failed"
	case KindSubmitFailed:
		return "submit_failed"
	case KindQueryFailed:
		return "query_failed"
	case KindUnsupportedCoding:
		return "unsupported_coding_for_split"
	case KindInvalidAddress:
		return "invalid_address"
	case KindProtocolViolation:
		return "protocol_violation"
	default:
		return "unknown"
	}
}

// Error is the single error type this core raises. Kind classifies the
// failure; Status carries the SMPP command_status for the
// status-bearing kinds (bind/submit/query failed); Err wraps the
// underlying cause, if any.
type Error struct {
	Kind    Kind
	Status  CommandStatus
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("smpp: %s: %s (status=%s)", e.Kind, e.Message, e.Status)
	case e.Status != 0:
		return fmt.Sprintf("smpp: %s: status=%s", e.Kind, e.Status)
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("smpp: %s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("smpp: %s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("smpp: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("smpp: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is supports errors.Is against the sentinel Kind values below: two
// *Error values match if they share a Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func newStatusError(kind Kind, status CommandStatus) *Error {
	return &Error{Kind: kind, Status: status}
}

// Sentinel errors for errors.Is comparisons. Each carries only a Kind so
// that any *Error of the same Kind matches it, regardless of Message,
// Status, or wrapped Err.
var (
	// ErrTransport is fatal to the session: the transport is unusable.
	ErrTransport = &Error{Kind: KindTransport}
	// ErrTimeout is retryable: the caller may try again.
	ErrTimeout = &Error{Kind: KindTimeout}
	// ErrHeaderTooShort means a PDU header could not be read in full.
	ErrHeaderTooShort = &Error{Kind: KindHeaderTooShort}
	// ErrTruncatedBody means a PDU body ended before a mandatory field did.
	ErrTruncatedBody = &Error{Kind: KindTruncatedBody}
	// ErrMissingTerminator means a C-Octet String field had no terminator.
	ErrMissingTerminator = &Error{Kind: KindMissingTerminator}
	// ErrUnknownCommand means a request PDU's command_id is unrecognized.
	ErrUnknownCommand = &Error{Kind: KindUnknownCommand}
	// ErrBindFailed wraps a non-zero status bind response.
	ErrBindFailed = &Error{Kind: KindBindFailed}
	// ErrSubmitFailed wraps a non-zero status submit_sm response.
	ErrSubmitFailed = &Error{Kind: KindSubmitFailed}
	// ErrQueryFailed wraps a non-zero status query_sm response.
	ErrQueryFailed = &Error{Kind: KindQueryFailed}
	// ErrUnsupportedCodingForSplit is the typed sentinel behind send_sms's
	// historical "false on unsupported coding" contract (SPEC_FULL.md §7).
	ErrUnsupportedCodingForSplit = &Error{Kind: KindUnsupportedCoding}
	// ErrInvalidAddress means an Address violates its TON/length invariant.
	ErrInvalidAddress = &Error{Kind: KindInvalidAddress}
	// ErrProtocolViolation means the stream can no longer be trusted to
	// align; the session is closed alongside this error.
	ErrProtocolViolation = &Error{Kind: KindProtocolViolation}
)
