package modem

import (
	"time"

	"go.bug.st/serial"
	"golang.org/x/text/encoding"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=modem

// Transport is the byte channel to a GSM modem.
//
// Bytes arrive asynchronously: the transport buffers them and invokes the
// callback registered with OnDataReceived from its own goroutine. The
// protocol engine then drains whatever is available with ReadExisting.
// Implementations are serial ports in production and generated mocks in
// tests.
type Transport interface {
	// Open applies the line parameters and opens the port. Configuration
	// and I/O errors are returned unchanged to the caller.
	Open(cfg LineConfig) error
	// Close closes the port. The transport may be opened again afterwards.
	Close() error

	SetDTR(on bool) error
	SetRTS(on bool) error

	// WriteString encodes s with the configured encoding and writes it.
	WriteString(s string) error
	// ReadExisting returns every byte received since the previous call,
	// decoded with the configured encoding. It never blocks.
	ReadExisting() (string, error)

	DiscardInBuffer() error
	DiscardOutBuffer() error

	// OnDataReceived registers fn to be called whenever new bytes arrive.
	// A nil fn removes the registration.
	OnDataReceived(fn func())
}

// LineConfig carries the serial line parameters applied by Transport.Open.
type LineConfig struct {
	PortName     string
	BaudRate     int
	DataBits     int
	Parity       serial.Parity
	StopBits     serial.StopBits
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// Encoding converts between Go strings and bytes on the wire. Nil means
	// bytes are passed through unchanged.
	Encoding encoding.Encoding
}

func (c LineConfig) validate() error {
	if c.PortName == "" {
		return ErrInvalidPortName
	}
	if c.BaudRate <= 0 {
		return ErrInvalidBaudRate
	}
	if c.DataBits < 5 || c.DataBits > 8 {
		return ErrInvalidDataBits
	}
	return nil
}

func (c LineConfig) mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
		Parity:   c.Parity,
		StopBits: c.StopBits,
	}
}
