package modem_test

import (
	"sync"

	gomock "go.uber.org/mock/gomock"
	"i4.energy/across/smsport/at"
	"i4.energy/across/smsport/modem"
)

const (
	respOK    = "\r\nOK\r\n"
	respError = "\r\nERROR\r\n"
	respCPMS  = "+CPMS: \"SM\",4,20,\"SM\",0,20,\"ME\",186,1000\r\n\r\nOK\r\n"
)

// dataLine stands in for the transport's reader goroutine: it holds the
// callback the Modem registers and fires it when the scripted modem
// "sends" bytes.
type dataLine struct {
	mu sync.Mutex
	fn func()
}

func (l *dataLine) register(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fn = fn
}

func (l *dataLine) signal() {
	l.mu.Lock()
	fn := l.fn
	l.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type MockSequenceBuilder struct {
	transport *modem.MockTransport
	line      *dataLine
	calls     []any
}

func NewMockSequence(transport *modem.MockTransport, line *dataLine) *MockSequenceBuilder {
	return &MockSequenceBuilder{
		transport: transport,
		line:      line,
		calls:     []any{},
	}
}

// Open scripts a successful Modem.Open.
func (b *MockSequenceBuilder) Open() *MockSequenceBuilder {
	b.calls = append(b.calls,
		b.transport.EXPECT().OnDataReceived(gomock.Not(gomock.Nil())).Do(b.line.register),
		b.transport.EXPECT().Open(gomock.Any()).Return(nil),
		b.transport.EXPECT().SetDTR(true).Return(nil),
		b.transport.EXPECT().SetRTS(true).Return(nil),
	)
	return b
}

// Exchange scripts one command: buffers are discarded, cmd is written and
// the modem answers with chunks, one notification per chunk.
func (b *MockSequenceBuilder) Exchange(cmd string, chunks ...string) *MockSequenceBuilder {
	b.calls = append(b.calls,
		b.transport.EXPECT().DiscardOutBuffer().Return(nil),
		b.transport.EXPECT().DiscardInBuffer().Return(nil),
		b.transport.EXPECT().WriteString(cmd+"\r").DoAndReturn(func(string) error {
			if len(chunks) > 0 {
				b.line.signal()
			}
			return nil
		}),
	)
	for i, chunk := range chunks {
		more := i < len(chunks)-1
		b.calls = append(b.calls,
			b.transport.EXPECT().ReadExisting().DoAndReturn(func() (string, error) {
				if more {
					b.line.signal()
				}
				return chunk, nil
			}),
		)
	}
	return b
}

func (b *MockSequenceBuilder) AT() *MockSequenceBuilder {
	return b.Exchange(at.CmdAt, respOK)
}

func (b *MockSequenceBuilder) SMSTextMode() *MockSequenceBuilder {
	return b.Exchange(at.CmdSetTextMode, respOK)
}

func (b *MockSequenceBuilder) Build() []any {
	return b.calls
}
