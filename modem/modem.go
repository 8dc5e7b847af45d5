package modem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"i4.energy/across/smsport/at"
)

// Per-step response timeouts. Each bounds a single wait for more bytes, not
// the whole response.
const (
	pingTimeout    = 300 * time.Millisecond
	setupTimeout   = 300 * time.Millisecond
	storageTimeout = 1000 * time.Millisecond
	listTimeout    = 5000 * time.Millisecond
	submitTimeout  = 3000 * time.Millisecond
)

// Modem is a session with a GSM modem over one Transport. It drives the
// modem in SMS text mode with a strictly sequential request/response
// exchange: one command is written, its full response is awaited, and only
// then is the next command written.
//
// A Modem is safe for use by multiple goroutines; calls are serialised so
// the steps of two workflows never interleave. Closing the port while a
// command is in flight waits for that command to finish.
type Modem struct {
	mu sync.Mutex
	// transport is the byte channel to the modem
	transport Transport
	// waker bridges the transport's data callback into exec
	waker *waker
	// open is true between a successful Open and the next Close
	open   bool
	logger *slog.Logger
}

// Option configures a Modem.
type Option func(*Modem)

// WithLogger sets the logger used for per-command debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Modem) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a closed Modem session on top of transport. Call Open before
// executing commands.
func New(transport Transport, opts ...Option) (*Modem, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	m := &Modem{
		transport: transport,
		waker:     newWaker(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Open configures and opens the port: no parity, one stop bit, ISO-8859-1,
// with DTR and RTS asserted once the port is open. Errors from the
// transport are returned as they are.
func (m *Modem) Open(config Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open {
		return ErrPortAlreadyOpen
	}

	config.setDefaults()
	m.transport.OnDataReceived(m.waker.notify)
	if err := m.transport.Open(config.lineConfig()); err != nil {
		m.transport.OnDataReceived(nil)
		return err
	}

	if err := m.transport.SetDTR(true); err != nil {
		m.abandon()
		return err
	}
	if err := m.transport.SetRTS(true); err != nil {
		m.abandon()
		return err
	}

	m.open = true
	m.logger.Info("Modem port opened", "port", config.PortName, "baud_rate", config.BaudRate)
	return nil
}

func (m *Modem) abandon() {
	m.transport.OnDataReceived(nil)
	if err := m.transport.Close(); err != nil {
		m.logger.Warn("Failed to close port after failed open", "error", err)
	}
}

// Close unregisters the data callback and closes the port. The session is
// closed afterwards even when the transport reports an error.
func (m *Modem) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return ErrPortClosed
	}
	m.open = false

	m.transport.OnDataReceived(nil)
	return m.transport.Close()
}

// IsOpen reports whether the session's port is open.
func (m *Modem) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Exec writes cmd followed by a carriage return and returns the modem's raw
// response, terminators included.
//
// timeout bounds each wait for more bytes. Exec fails with ErrNoData or
// ErrIncompleteResponse when a wait times out, and with ErrNoSuccess when
// the response ends in neither OK nor the SMS prompt; in the latter case the
// response is returned alongside the error.
func (m *Modem) Exec(cmd string, timeout time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exec(cmd, timeout)
}

// exec must be called with m.mu held.
func (m *Modem) exec(cmd string, timeout time.Duration) (string, error) {
	if !m.open {
		return "", ErrPortClosed
	}

	start := time.Now()
	resp, err := m.roundTrip(cmd, timeout)
	m.logger.Debug("AT command executed",
		"command", cmd,
		"response", resp,
		"elapsed", time.Since(start),
		"error", err,
	)
	return resp, err
}

func (m *Modem) roundTrip(cmd string, timeout time.Duration) (string, error) {
	if err := m.transport.DiscardOutBuffer(); err != nil {
		return "", err
	}
	if err := m.transport.DiscardInBuffer(); err != nil {
		return "", err
	}

	m.waker.arm()
	if err := m.transport.WriteString(cmd + at.CR); err != nil {
		return "", err
	}

	resp, err := readResponse(m.transport, m.waker, timeout)
	if err != nil {
		return resp, err
	}
	if !at.Classify(resp).Success() {
		return resp, ErrNoSuccess
	}
	return resp, nil
}

type step struct {
	cmd     string
	timeout time.Duration
}

// run executes steps in order and returns the response of the last one.
// The first failing step aborts the sequence; the modem keeps whatever
// state the completed steps left it in. ctx is only checked between steps.
func (m *Modem) run(ctx context.Context, steps ...step) (string, error) {
	var resp string
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var err error
		resp, err = m.exec(s.cmd, s.timeout)
		if err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// preamble checks the modem answers and selects SMS text mode.
func preamble() []step {
	return []step{
		{at.CmdAt, pingTimeout},
		{at.CmdSetTextMode, setupTimeout},
	}
}

// CountMessages returns the number of messages in the first storage area
// reported by AT+CPMS?.
func (m *Modem) CountMessages(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, err := m.run(ctx, append(preamble(), step{at.CmdStorageStatus, storageTimeout})...)
	if err != nil {
		return 0, err
	}
	return parseStorageCount(resp)
}

// parseStorageCount reads the second comma-separated field of the +CPMS:
// line, the used count of the first storage area. Quoted fields containing
// commas are not supported.
func parseStorageCount(resp string) (int, error) {
	for line := range strings.Lines(resp) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, at.StoragePrefix) {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return 0, fmt.Errorf("%w: %q", ErrUnexpectedResponse, line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnexpectedResponse, line)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: no %s line", ErrUnexpectedResponse, at.StoragePrefix)
}

// ReadMessages lists the messages held in SIM storage. listCmd is the full
// listing command, e.g. at.ListCommand(at.FilterAll).
func (m *Modem) ReadMessages(ctx context.Context, listCmd string) ([]SMS, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	steps := append(preamble(),
		step{at.CmdCharsetPCCP437, setupTimeout},
		step{at.CmdStorageSIM, setupTimeout},
		step{listCmd, listTimeout},
	)
	resp, err := m.run(ctx, steps...)
	if err != nil {
		return nil, err
	}
	return ParseMessages(strings.NewReader(resp))
}

// DeleteMessage runs deleteCmd, e.g. at.DeleteCommand("1,3"), and reports
// whether the modem confirmed the deletion. A response ending in ERROR
// yields false without an error.
func (m *Modem) DeleteMessage(ctx context.Context, deleteCmd string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.run(ctx, preamble()...); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	resp, err := m.exec(deleteCmd, setupTimeout)
	if err != nil && !errors.Is(err, ErrNoSuccess) {
		return false, err
	}

	deleted := false
	if strings.HasSuffix(resp, at.TerminatorOK) {
		deleted = true
	}
	// Checked independently of the suffix above.
	if strings.Contains(resp, at.TerminatorError) {
		deleted = false
	}
	return deleted, nil
}
