package smpp

import "time"

// CSMSMethod selects how a multi-part message is concatenated on the
// wire (spec.md §4.E).
type CSMSMethod int

const (
	// CSMSSar16Bit concatenates via the SAR_* TLVs with a 16-bit
	// reference number. Default.
	CSMSSar16Bit CSMSMethod = iota
	// CSMSUdh8Bit concatenates via a 6-byte User Data Header prepended
	// to short_message, with an 8-bit reference number.
	CSMSUdh8Bit
	// CSMSPayloadTLV avoids segmentation entirely by carrying the whole
	// message in a single MESSAGE_PAYLOAD TLV.
	CSMSPayloadTLV
)

// DataCoding values this core understands at the façade (spec.md §4.G).
const (
	DataCodingDefault uint8 = 0x00 // GSM 03.38, treated as opaque bytes
	DataCodingBinary  uint8 = 0x04
	DataCodingUCS2    uint8 = 0x08
)

// Config is the immutable (once the session is built) configuration
// surface spec.md §6 enumerates. Built via NewConfig + functional
// options, mirroring the SegmenterOption/SessionConf idiom found across
// the pack (warthog618-sms/ms/sar, ajankovic-smpp/session.go).
type Config struct {
	CSMSMethod      CSMSMethod
	SystemType      string
	AddressRange    string
	SourceTON       uint8
	SourceNPI       uint8
	DestTON         uint8
	DestNPI         uint8
	RegisteredDelivery uint8
	ReadTimeout     time.Duration
	ConnectTimeout  time.Duration
	WriteTimeout    time.Duration
	Logger          Logger
}

// Option configures a Config at construction time.
type Option func(*Config)

// NewConfig builds a Config with spec.md §6's defaults (SAR segmentation,
// empty system_type/address_range, no registered delivery, 30s read
// timeout, 10s connect timeout), applying opts in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		CSMSMethod:     CSMSSar16Bit,
		SystemType:     "",
		AddressRange:   "",
		SourceTON:      TONInternational,
		SourceNPI:      NPIISDN,
		DestTON:        TONInternational,
		DestNPI:        NPIISDN,
		ReadTimeout:    30 * time.Second,
		ConnectTimeout: 10 * time.Second,
		WriteTimeout:   30 * time.Second,
		Logger:         noopLogger{},
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithCSMSMethod sets the concatenation method used for over-length
// messages.
func WithCSMSMethod(m CSMSMethod) Option {
	return func(c *Config) { c.CSMSMethod = m }
}

// WithSystemType sets the system_type field sent on bind.
func WithSystemType(systemType string) Option {
	return func(c *Config) { c.SystemType = systemType }
}

// WithAddressRange sets the address_range field sent on bind.
func WithAddressRange(addressRange string) Option {
	return func(c *Config) { c.AddressRange = addressRange }
}

// WithRegisteredDelivery sets the registered_delivery flag send_sms puts
// on every submit_sm; SendSMS has no per-call override for it.
func WithRegisteredDelivery(flag uint8) Option {
	return func(c *Config) { c.RegisteredDelivery = flag }
}

// WithReadTimeout sets the transport's read deadline and, by extension,
// how long response waits and read_sms block before returning a
// retryable timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) { c.ReadTimeout = d }
}

// WithConnectTimeout sets the dial deadline used by Open.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Config) { c.ConnectTimeout = d }
}

// WithWriteTimeout sets the transport's write deadline.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) { c.WriteTimeout = d }
}

// WithLogger sets the Logger the session and client log through.
// Defaults to a silent no-op logger if never set.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}
