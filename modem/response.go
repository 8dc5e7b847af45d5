package modem

import (
	"strings"
	"time"

	"i4.energy/across/smsport/at"
)

// readResponse accumulates bytes from t until the buffer ends with a
// terminator recognised by at.Classify.
//
// The timeout applies to each wait for new bytes, not to the whole response:
// a modem that keeps trickling data in bursts closer together than timeout
// is waited for indefinitely.
func readResponse(t Transport, w *waker, timeout time.Duration) (string, error) {
	var buf strings.Builder
	for {
		if !w.wait(timeout) {
			if buf.Len() == 0 {
				return "", ErrNoData
			}
			return buf.String(), ErrIncompleteResponse
		}

		chunk, err := t.ReadExisting()
		if err != nil {
			return buf.String(), err
		}
		buf.WriteString(chunk)

		if at.Terminated(buf.String()) {
			return buf.String(), nil
		}
	}
}
