package smpp

// fakeTransport is an in-memory Transport double: each Write is handed
// to responder, whose returned PDUs are appended to the read buffer as
// if the SMSC had sent them back. Lets session_test.go drive the
// session engine without a real socket.
type fakeTransport struct {
	toRead    []byte
	responder func(h Header, body []byte) []*PDU
	closed    bool
}

func (f *fakeTransport) Open() error  { return nil }
func (f *fakeTransport) Close() error { f.closed = true; return nil }
func (f *fakeTransport) IsOpen() bool { return !f.closed }

func (f *fakeTransport) Write(b []byte) error {
	h, err := parseHeader(b)
	if err != nil {
		return err
	}
	body := b[minPDULen:]
	if f.responder != nil {
		for _, p := range f.responder(h, body) {
			f.toRead = append(f.toRead, encodeHeader(p.Header)...)
			f.toRead = append(f.toRead, p.Body...)
		}
	}
	return nil
}

func (f *fakeTransport) Read(n int) ([]byte, error) {
	if len(f.toRead) < n {
		return nil, newError(KindTransport, "fakeTransport: short read buffer", nil)
	}
	b := f.toRead[:n]
	f.toRead = f.toRead[n:]
	return b, nil
}
