package modem

import (
	"log/slog"
	"sync"
	"time"

	"go.bug.st/serial"
	"golang.org/x/text/encoding"
)

const (
	readBufferSize = 1024
	// pollInterval bounds how long the reader blocks in Read when no read
	// timeout is configured, so Close is noticed promptly.
	pollInterval = 100 * time.Millisecond
)

// SerialTransport is a Transport backed by a go.bug.st/serial port.
//
// A background goroutine owns all reads from the port. Received bytes are
// appended to an internal buffer and the OnDataReceived callback is invoked
// from that goroutine, which is the only concurrent context in the session.
type SerialTransport struct {
	mu      sync.Mutex
	port    serial.Port
	cfg     LineConfig
	pending []byte
	onData  func()
	closing chan struct{}
	done    chan struct{}
	logger  *slog.Logger

	// open is swapped in tests.
	open func(name string, mode *serial.Mode) (serial.Port, error)
}

// NewSerialTransport returns a closed SerialTransport. A nil logger
// discards log output.
func NewSerialTransport(logger *slog.Logger) *SerialTransport {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SerialTransport{
		logger: logger,
		open:   serial.Open,
	}
}

// ListPorts returns the names of the serial ports present on the system.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

func (t *SerialTransport) Open(cfg LineConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port != nil {
		return ErrPortAlreadyOpen
	}

	port, err := t.open(cfg.PortName, cfg.mode())
	if err != nil {
		return err
	}

	timeout := cfg.ReadTimeout
	if timeout <= 0 {
		timeout = pollInterval
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return err
	}

	t.port = port
	t.cfg = cfg
	t.pending = nil
	t.closing = make(chan struct{})
	t.done = make(chan struct{})
	go t.readLoop(port, t.closing, t.done)

	t.logger.Debug("serial port opened", "port", cfg.PortName, "baud_rate", cfg.BaudRate, "data_bits", cfg.DataBits)
	return nil
}

func (t *SerialTransport) readLoop(port serial.Port, closing, done chan struct{}) {
	defer close(done)
	buf := make([]byte, readBufferSize)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			t.mu.Lock()
			t.pending = append(t.pending, buf[:n]...)
			fn := t.onData
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
		if err != nil {
			select {
			case <-closing:
			default:
				t.logger.Warn("serial reader stopped", "error", err)
			}
			return
		}
		select {
		case <-closing:
			return
		default:
		}
	}
}

func (t *SerialTransport) Close() error {
	t.mu.Lock()
	port, closing, done, name := t.port, t.closing, t.done, t.cfg.PortName
	t.port = nil
	t.pending = nil
	t.mu.Unlock()

	if port == nil {
		return ErrPortClosed
	}

	close(closing)
	err := port.Close()
	<-done

	t.logger.Debug("serial port closed", "port", name)
	return err
}

func (t *SerialTransport) SetDTR(on bool) error {
	port, err := t.current()
	if err != nil {
		return err
	}
	return port.SetDTR(on)
}

func (t *SerialTransport) SetRTS(on bool) error {
	port, err := t.current()
	if err != nil {
		return err
	}
	return port.SetRTS(on)
}

func (t *SerialTransport) WriteString(s string) error {
	t.mu.Lock()
	port, cfg := t.port, t.cfg
	t.mu.Unlock()
	if port == nil {
		return ErrPortClosed
	}

	p := []byte(s)
	if cfg.Encoding != nil {
		p = encode(cfg.Encoding, s)
	}

	if cfg.WriteTimeout <= 0 {
		_, err := port.Write(p)
		return err
	}

	errc := make(chan error, 1)
	go func() {
		_, err := port.Write(p)
		errc <- err
	}()

	timer := time.NewTimer(cfg.WriteTimeout)
	defer timer.Stop()
	select {
	case err := <-errc:
		return err
	case <-timer.C:
		return ErrWriteTimeout
	}
}

func (t *SerialTransport) ReadExisting() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return "", ErrPortClosed
	}

	p := t.pending
	t.pending = nil
	if t.cfg.Encoding == nil {
		return string(p), nil
	}
	out, err := t.cfg.Encoding.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (t *SerialTransport) DiscardInBuffer() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return ErrPortClosed
	}
	t.pending = nil
	return t.port.ResetInputBuffer()
}

func (t *SerialTransport) DiscardOutBuffer() error {
	port, err := t.current()
	if err != nil {
		return err
	}
	return port.ResetOutputBuffer()
}

func (t *SerialTransport) OnDataReceived(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onData = fn
}

func (t *SerialTransport) current() (serial.Port, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil, ErrPortClosed
	}
	return t.port, nil
}

// encode converts s to enc, writing '?' for every rune enc cannot
// represent. The charmap substitute byte 0x1a is Ctrl-Z and must never
// appear inside an SMS body.
func encode(enc encoding.Encoding, s string) []byte {
	if p, err := enc.NewEncoder().Bytes([]byte(s)); err == nil {
		return p
	}

	var p []byte
	e := enc.NewEncoder()
	for _, r := range s {
		b, err := e.Bytes([]byte(string(r)))
		if err != nil {
			b = []byte{'?'}
		}
		p = append(p, b...)
	}
	return p
}

var _ Transport = (*SerialTransport)(nil)
