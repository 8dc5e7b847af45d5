package modem

import "errors"

var (
	// ErrNoTransport is returned when a Modem is constructed without a
	// Transport.
	ErrNoTransport = errors.New("no transport configured")

	// ErrNoData is returned when a wait for the modem's answer timed out
	// before a single byte arrived.
	ErrNoData = errors.New("no data received from modem")

	// ErrIncompleteResponse is returned when a wait timed out after some
	// bytes arrived but before a terminator was seen.
	ErrIncompleteResponse = errors.New("response received is incomplete")

	// ErrNoSuccess is returned when a complete response ended in neither OK
	// nor the SMS prompt.
	//
	// Workflows return it for every failed step without saying which one;
	// the step is logged at debug level.
	ErrNoSuccess = errors.New("no success message was received")

	// ErrUnexpectedResponse is returned when a successful response does not
	// carry the information line the workflow needs.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrNilReader is returned when ParseMessages is given no input.
	ErrNilReader = errors.New("reader cannot be nil")

	// ErrPortClosed is returned when an operation needs an open port.
	ErrPortClosed = errors.New("port is not open")

	// ErrPortAlreadyOpen is returned when Open is called on an open port.
	ErrPortAlreadyOpen = errors.New("port already open")

	// ErrInvalidPortName is returned when no serial port name is configured.
	ErrInvalidPortName = errors.New("serial port name is required")

	// ErrInvalidBaudRate is returned for a non-positive baud rate.
	ErrInvalidBaudRate = errors.New("baud rate must be positive")

	// ErrInvalidDataBits is returned for data bits outside 5..8.
	ErrInvalidDataBits = errors.New("data bits must be between 5 and 8")

	// ErrWriteTimeout is returned when a write did not complete within the
	// configured write timeout.
	ErrWriteTimeout = errors.New("write timeout")
)
