package smpp

import "fmt"

// Client is the ESME façade spec.md §4.G names: bind, send, read,
// query, keepalive, close, all driven through a Session and Segmenter.
// Grounded on the teacher's api.go Client/NewClient/Connect/SendSMS,
// generalized from a single hard-coded transmitter bind and a
// truncate-on-overflow SendLongSMS to the full bind-mode and
// CSMSMethod-aware operation set spec.md §4.E/§4.G require.
//
// A Client is not safe for concurrent use: nothing serializes access to
// its Session or transport.
type Client struct {
	session   *Session
	segmenter *Segmenter
	cfg       Config
	systemID  string
	password  string
}

// NewClient builds a Client over a new, not yet dialed TCPTransport to
// host:port, applying opts to its Config (spec.md §6). The first Bind*
// call opens the connection.
func NewClient(host string, port int, systemID, password string, opts ...Option) *Client {
	cfg := NewConfig(opts...)
	transport := NewTCPTransport(host, port, cfg.ConnectTimeout, cfg.ReadTimeout, cfg.WriteTimeout)
	return NewClientWithTransport(transport, systemID, password, cfg)
}

// NewClientWithTransport builds a Client over a caller-supplied
// Transport (e.g. NewTLSTransport, or a test double), for callers who
// want the façade's bind/send/read/query/close surface without
// NewClient's plain-TCP default.
func NewClientWithTransport(transport Transport, systemID, password string, cfg Config) *Client {
	return &Client{
		session:   NewSession(transport, cfg),
		segmenter: NewSegmenter(),
		cfg:       cfg,
		systemID:  systemID,
		password:  password,
	}
}

func (c *Client) bind(mode BindMode) error {
	if c.session.State() == StateClosed {
		if err := c.session.Open(); err != nil {
			return err
		}
	}
	return c.session.Bind(mode, c.systemID, c.password)
}

// BindTransmitter binds for outbound-only traffic (submit_sm/query_sm).
func (c *Client) BindTransmitter() error { return c.bind(BindModeTransmitter) }

// BindReceiver binds for inbound-only traffic (deliver_sm/receipts).
func (c *Client) BindReceiver() error { return c.bind(BindModeReceiver) }

// BindTransceiver binds for both directions over one session.
func (c *Client) BindTransceiver() error { return c.bind(BindModeTransceiver) }

// sendParams holds send_sms's optional arguments (spec.md §4.G:
// tags, priority, schedule, validity), defaulted so a bare SendSMS
// call behaves exactly as before these were added.
type sendParams struct {
	tags     []TLV
	priority byte
	schedule string
	validity string
}

// SendOption customizes a single SendSMS/SendText call beyond its
// required arguments.
type SendOption func(*sendParams)

// WithTags attaches caller-supplied optional TLV parameters to every
// segment submitted for this call.
func WithTags(tags ...TLV) SendOption {
	return func(p *sendParams) { p.tags = tags }
}

// WithPriority sets submit_sm's priority_flag (0-3).
func WithPriority(priority byte) SendOption {
	return func(p *sendParams) { p.priority = priority }
}

// WithScheduleTime sets submit_sm's schedule_delivery_time (spec.md §6
// time format).
func WithScheduleTime(t string) SendOption {
	return func(p *sendParams) { p.schedule = t }
}

// WithValidityPeriod sets submit_sm's validity_period (spec.md §6 time
// format).
func WithValidityPeriod(t string) SendOption {
	return func(p *sendParams) { p.validity = t }
}

// SendSMS submits message (already encoded per dataCoding), segmenting
// it per the configured CSMSMethod if it exceeds the single-part
// budget, and returns the message_id of the first segment submitted.
// Fails with ErrUnsupportedCodingForSplit if message is over-length for
// a coding this core cannot split (spec.md §4.E, §8 invariant 4).
// Optional tags/priority/schedule/validity (spec.md §4.G's full
// send_sms signature) are supplied via opts and applied to every
// segment.
func (c *Client) SendSMS(source, dest string, message []byte, dataCoding uint8, opts ...SendOption) (string, error) {
	var p sendParams
	for _, o := range opts {
		o(&p)
	}

	src, err := NewAddress(source, c.cfg.SourceTON, c.cfg.SourceNPI)
	if err != nil {
		return "", err
	}
	dst, err := NewAddress(dest, c.cfg.DestTON, c.cfg.DestNPI)
	if err != nil {
		return "", err
	}

	segments, err := c.segmenter.Segment(message, dataCoding, c.cfg.CSMSMethod)
	if err != nil {
		return "", err
	}

	var firstID string
	for i, seg := range segments {
		req := SubmitRequest{
			Source:             src,
			Dest:               dst,
			EsmClass:           seg.EsmClassBits,
			Priority:           p.priority,
			ScheduleTime:       p.schedule,
			ValidityPeriod:     p.validity,
			RegisteredDelivery: c.cfg.RegisteredDelivery,
			DataCoding:         dataCoding,
			ShortMessage:       seg.ShortMessage,
			TLVs:               append(append([]TLV(nil), seg.TLVs...), p.tags...),
		}
		id, err := c.session.SubmitOne(req)
		if err != nil {
			return "", fmt.Errorf("segment %d/%d: %w", i+1, len(segments), err)
		}
		if i == 0 {
			firstID = id
		}
	}
	return firstID, nil
}

// SendText is a convenience over SendSMS: text is sent as GSM-default
// opaque bytes if it is pure ASCII, or transcoded to UCS-2 otherwise.
func (c *Client) SendText(source, dest, text string, opts ...SendOption) (string, error) {
	if isASCII(text) {
		return c.SendSMS(source, dest, []byte(text), DataCodingDefault, opts...)
	}
	encoded, err := EncodeUCS2(text)
	if err != nil {
		return "", newError(KindUnsupportedCoding, "ucs2 encode failed", err)
	}
	return c.SendSMS(source, dest, encoded, DataCodingUCS2, opts...)
}

// ReadSMS returns the next inbound *SMS or *DeliveryReceipt (or an
// alert_notification's raw *PDU): inbox-first,
// then a single bounded transport read (spec.md §4.G). ErrTimeout means
// nothing arrived within the configured read timeout; callers poll again.
func (c *Client) ReadSMS() (interface{}, error) {
	return c.session.ReceiveOne()
}

// QueryStatus queries messageID's delivery state, originated by source
// (spec.md §4.G).
func (c *Client) QueryStatus(source, messageID string) (QueryResult, error) {
	src, err := NewAddress(source, c.cfg.SourceTON, c.cfg.SourceNPI)
	if err != nil {
		return QueryResult{}, err
	}
	return c.session.Query(messageID, src)
}

// EnquireLink sends a keep-alive and waits for its response, returning
// the response PDU for introspection (spec.md §4.G).
func (c *Client) EnquireLink() (*PDU, error) { return c.session.EnquireLink() }

// Close unbinds (best-effort) and closes the transport. Never raises:
// spec.md §4.G's close() contract is that cleanup cannot fail the
// caller's shutdown path.
func (c *Client) Close() {
	_ = c.session.Unbind()
	_ = c.session.Close()
}
