package modem

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"i4.energy/across/smsport/at"
)

// SMS represents a text message stored on the modem.
type SMS struct {
	// Index is the storage slot exactly as reported by the modem.
	Index    string `json:"index"`
	Status   string `json:"status"` // "REC UNREAD", "REC READ", "STO UNSENT", "STO SENT"
	Sender   string `json:"sender"`
	Alphabet string `json:"alphabet,omitempty"`
	Time     string `json:"time"`
	Text     string `json:"text"`
}

// listingRecord matches one +CMGL record in text mode: the header line
// followed by the message body line.
var listingRecord = regexp.MustCompile(`\+CMGL: (\d+),"(.+)","(.+)",(.*),"(.+)"\r\n(.+)\r\n`)

// ParseMessages extracts every listing record from an AT+CMGL response, in
// the order they appear. Text that does not match is skipped, so a response
// without records yields an empty slice. Fields are taken verbatim.
func ParseMessages(r io.Reader) ([]SMS, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	matches := listingRecord.FindAllStringSubmatch(string(input), -1)
	messages := make([]SMS, 0, len(matches))
	for _, match := range matches {
		messages = append(messages, SMS{
			Index:    match[1],
			Status:   match[2],
			Sender:   match[3],
			Alphabet: match[4],
			Time:     match[5],
			Text:     match[6],
		})
	}
	return messages, nil
}

// SendMessage sends a text message to the specified recipient.
//
// The message is sent in text mode (not PDU mode). The recipient should be
// in international format (e.g., "+1234567890").
//
// It reports true once the modem confirms submission with OK and false when
// the submission ends in ERROR. Failures of the preparatory commands are
// returned as errors.
func (m *Modem) SendMessage(ctx context.Context, recipient, message string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// AT+CMGS answers with the body prompt rather than OK
	steps := append(preamble(), step{at.SendCommand(recipient), setupTimeout})
	if _, err := m.run(ctx, steps...); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// The modem transmits over the air before answering
	resp, err := m.exec(at.MessageBody(message), submitTimeout)
	if err != nil && !errors.Is(err, ErrNoSuccess) {
		return false, err
	}

	// A response ending in ERROR, or in an unexpected second prompt, is a
	// rejected submission rather than a failure.
	return strings.HasSuffix(resp, at.TerminatorOK), nil
}
