package smpp

// CommandID identifies the kind of PDU a command_id field names. Response
// IDs are their request's ID with the high bit (0x80000000) set.
//
// Grounded on the command-ID switch in ajankovic-smpp/session.go and
// pdu/pdu.go's NewPDU factory, trimmed to the ESME-only direction this
// core implements (see SPEC_FULL.md §4.C).
type CommandID uint32

const (
	respBit = 0x80000000

	GenericNack CommandID = 0x80000000

	BindReceiver         CommandID = 0x00000001
	BindReceiverResp     CommandID = 0x80000001
	BindTransmitter      CommandID = 0x00000002
	BindTransmitterResp  CommandID = 0x80000002
	QuerySm              CommandID = 0x00000003
	QuerySmResp          CommandID = 0x80000003
	SubmitSm             CommandID = 0x00000004
	SubmitSmResp         CommandID = 0x80000004
	DeliverSm            CommandID = 0x00000005
	DeliverSmResp        CommandID = 0x80000005
	Unbind               CommandID = 0x00000006
	UnbindResp           CommandID = 0x80000006
	ReplaceSm            CommandID = 0x00000007
	ReplaceSmResp        CommandID = 0x80000007
	CancelSm             CommandID = 0x00000008
	CancelSmResp         CommandID = 0x80000008
	BindTransceiver      CommandID = 0x00000009
	BindTransceiverResp  CommandID = 0x80000009
	Outbind              CommandID = 0x0000000B
	EnquireLink          CommandID = 0x00000015
	EnquireLinkResp      CommandID = 0x80000015
	SubmitMulti          CommandID = 0x00000021
	SubmitMultiResp      CommandID = 0x80000021
	AlertNotification    CommandID = 0x00000102
	DataSm               CommandID = 0x00000103
	DataSmResp           CommandID = 0x80000103
)

// IsResponse reports whether id carries the SMPP response bit.
func (id CommandID) IsResponse() bool {
	return id&respBit != 0
}

// ResponseID returns the response command for a request command, e.g.
// SubmitSm -> SubmitSmResp.
func (id CommandID) ResponseID() CommandID {
	return id | respBit
}

var commandNames = map[CommandID]string{
	GenericNack:         "generic_nack",
	BindReceiver:        "bind_receiver",
	BindReceiverResp:    "bind_receiver_resp",
	BindTransmitter:     "bind_transmitter",
	BindTransmitterResp: "bind_transmitter_resp",
	QuerySm:             "query_sm",
	QuerySmResp:         "query_sm_resp",
	SubmitSm:            "submit_sm",
	SubmitSmResp:        "submit_sm_resp",
	DeliverSm:           "deliver_sm",
	DeliverSmResp:       "deliver_sm_resp",
	Unbind:              "unbind",
	UnbindResp:          "unbind_resp",
	ReplaceSm:           "replace_sm",
	ReplaceSmResp:       "replace_sm_resp",
	CancelSm:            "cancel_sm",
	CancelSmResp:        "cancel_sm_resp",
	BindTransceiver:     "bind_transceiver",
	BindTransceiverResp: "bind_transceiver_resp",
	Outbind:             "outbind",
	EnquireLink:         "enquire_link",
	EnquireLinkResp:     "enquire_link_resp",
	SubmitMulti:         "submit_multi",
	SubmitMultiResp:     "submit_multi_resp",
	AlertNotification:   "alert_notification",
	DataSm:              "data_sm",
	DataSmResp:          "data_sm_resp",
}

// String implements fmt.Stringer for log output.
func (id CommandID) String() string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return "unknown_command"
}

// knownCommand reports whether id is in the closed set this core
// recognizes at all (as either a request or response), per SPEC_FULL.md
// §4.C.
func knownCommand(id CommandID) bool {
	_, ok := commandNames[id]
	return ok
}

// BindMode names which bind operation produced a Bound session.
type BindMode int

const (
	// BindNone means the session has not completed a bind.
	BindNone BindMode = iota
	BindModeTransmitter
	BindModeReceiver
	BindModeTransceiver
)

func (m BindMode) String() string {
	switch m {
	case BindModeTransmitter:
		return "transmitter"
	case BindModeReceiver:
		return "receiver"
	case BindModeTransceiver:
		return "transceiver"
	default:
		return "none"
	}
}

// bindCommandFor returns the BIND_* command id to send for mode.
func bindCommandFor(mode BindMode) CommandID {
	switch mode {
	case BindModeReceiver:
		return BindReceiver
	case BindModeTransceiver:
		return BindTransceiver
	default:
		return BindTransmitter
	}
}
