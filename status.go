package smpp

// CommandStatus is the 32-bit command_status field of a PDU header.
// ESME_ROK (0) indicates success; every other value names a failure
// reason. Table grounded on the toError switch in
// ajankovic-smpp/session.go.
type CommandStatus uint32

const (
	StatusOK               CommandStatus = 0x00000000 // ESME_ROK
	StatusInvMsgLen        CommandStatus = 0x00000001
	StatusInvCmdLen        CommandStatus = 0x00000002
	StatusInvCmdID         CommandStatus = 0x00000003
	StatusInvBnd           CommandStatus = 0x00000004
	StatusAlyBnd           CommandStatus = 0x00000005
	StatusInvPrtFlg        CommandStatus = 0x00000006
	StatusInvRegDlvFlg     CommandStatus = 0x00000007
	StatusSysErr           CommandStatus = 0x00000008
	StatusInvSrcAdr        CommandStatus = 0x0000000A
	StatusInvDstAdr        CommandStatus = 0x0000000B
	StatusInvMsgID         CommandStatus = 0x0000000C
	StatusBindFail         CommandStatus = 0x0000000D
	StatusInvPaswd         CommandStatus = 0x0000000E
	StatusInvSysID         CommandStatus = 0x0000000F
	StatusCancelFail       CommandStatus = 0x00000011
	StatusReplaceFail      CommandStatus = 0x00000013
	StatusMsgQFul          CommandStatus = 0x00000014
	StatusInvSerTyp        CommandStatus = 0x00000015
	StatusInvNumDe         CommandStatus = 0x00000033
	StatusInvDLName        CommandStatus = 0x00000034
	StatusInvDestFlag      CommandStatus = 0x00000040
	StatusInvSubRep        CommandStatus = 0x00000042
	StatusInvEsmClass      CommandStatus = 0x00000043
	StatusCntSubDL         CommandStatus = 0x00000044
	StatusSubmitFail       CommandStatus = 0x00000045
	StatusInvSrcTON        CommandStatus = 0x00000048
	StatusInvSrcNPI        CommandStatus = 0x00000049
	StatusInvDstTON        CommandStatus = 0x00000050
	StatusInvDstNPI        CommandStatus = 0x00000051
	StatusInvSysTyp        CommandStatus = 0x00000053
	StatusInvRepFlag       CommandStatus = 0x00000054
	StatusInvNumMsgs       CommandStatus = 0x00000055
	StatusThrottled        CommandStatus = 0x00000058
	StatusInvSched         CommandStatus = 0x00000061
	StatusInvExpiry        CommandStatus = 0x00000062
	StatusInvDftMsgID      CommandStatus = 0x00000063
	StatusTempAppErr       CommandStatus = 0x00000064
	StatusPermAppErr       CommandStatus = 0x00000065
	StatusRejeAppErr       CommandStatus = 0x00000066
	StatusQueryFail        CommandStatus = 0x00000067
	StatusInvOptParStream  CommandStatus = 0x000000C0
	StatusOptParNotAllwd   CommandStatus = 0x000000C1
	StatusInvParLen        CommandStatus = 0x000000C2
	StatusMissingOptParam  CommandStatus = 0x000000C3
	StatusInvOptParamVal   CommandStatus = 0x000000C4
	StatusDeliveryFailure  CommandStatus = 0x000000FE
	StatusUnknownErr       CommandStatus = 0x000000FF
	// ESME_RINVCMDID is the status GENERIC_NACK carries in reply to an
	// unrecognized request command_id (SPEC_FULL.md §6).
	StatusInvCmdIDGeneric CommandStatus = StatusInvCmdID
)

var statusNames = map[CommandStatus]string{
	StatusOK:              "ESME_ROK",
	StatusInvMsgLen:       "ESME_RINVMSGLEN",
	StatusInvCmdLen:       "ESME_RINVCMDLEN",
	StatusInvCmdID:        "ESME_RINVCMDID",
	StatusInvBnd:          "ESME_RINVBNDSTS",
	StatusAlyBnd:          "ESME_RALYBND",
	StatusInvPrtFlg:       "ESME_RINVPRTFLG",
	StatusInvRegDlvFlg:    "ESME_RINVREGDLVFLG",
	StatusSysErr:          "ESME_RSYSERR",
	StatusInvSrcAdr:       "ESME_RINVSRCADR",
	StatusInvDstAdr:       "ESME_RINVDSTADR",
	StatusInvMsgID:        "ESME_RINVMSGID",
	StatusBindFail:        "ESME_RBINDFAIL",
	StatusInvPaswd:        "ESME_RINVPASWD",
	StatusInvSysID:        "ESME_RINVSYSID",
	StatusCancelFail:      "ESME_RCANCELFAIL",
	StatusReplaceFail:     "ESME_RREPLACEFAIL",
	StatusMsgQFul:         "ESME_RMSGQFUL",
	StatusInvSerTyp:       "ESME_RINVSERTYP",
	StatusInvNumDe:        "ESME_RINVNUMDESTS",
	StatusInvDLName:       "ESME_RINVDLNAME",
	StatusInvDestFlag:     "ESME_RINVDESTFLAG",
	StatusInvSubRep:       "ESME_RINVSUBREP",
	StatusInvEsmClass:     "ESME_RINVESMCLASS",
	StatusCntSubDL:        "ESME_RCNTSUBDL",
	StatusSubmitFail:      "ESME_RSUBMITFAIL",
	StatusInvSrcTON:       "ESME_RINVSRCTON",
	StatusInvSrcNPI:       "ESME_RINVSRCNPI",
	StatusInvDstTON:       "ESME_RINVDSTTON",
	StatusInvDstNPI:       "ESME_RINVDSTNPI",
	StatusInvSysTyp:       "ESME_RINVSYSTYP",
	StatusInvRepFlag:      "ESME_RINVREPFLAG",
	StatusInvNumMsgs:      "ESME_RINVNUMMSGS",
	StatusThrottled:       "ESME_RTHROTTLED",
	StatusInvSched:        "ESME_RINVSCHED",
	StatusInvExpiry:       "ESME_RINVEXPIRY",
	StatusInvDftMsgID:     "ESME_RINVDFTMSGID",
	StatusTempAppErr:      "ESME_RX_T_APPN",
	StatusPermAppErr:      "ESME_RX_P_APPN",
	StatusRejeAppErr:      "ESME_RX_R_APPN",
	StatusQueryFail:       "ESME_RQUERYFAIL",
	StatusInvOptParStream: "ESME_RINVOPTPARSTREAM",
	StatusOptParNotAllwd:  "ESME_ROPTPARNOTALLWD",
	StatusInvParLen:       "ESME_RINVPARLEN",
	StatusMissingOptParam: "ESME_RMISSINGOPTPARAM",
	StatusInvOptParamVal:  "ESME_RINVOPTPARAMVAL",
	StatusDeliveryFailure: "ESME_RDELIVERYFAILURE",
	StatusUnknownErr:      "ESME_RUNKNOWNERR",
}

// String implements fmt.Stringer for log and error output.
func (s CommandStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "ESME_RUNKNOWNERR"
}
