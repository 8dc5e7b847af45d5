package at_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"i4.energy/across/smsport/at"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected at.ResponseType
	}{
		{
			name:     "Bare OK",
			input:    "\r\nOK\r\n",
			expected: at.TypeOK,
		},
		{
			name:     "Echoed command followed by OK",
			input:    "AT\r\r\nOK\r\n",
			expected: at.TypeOK,
		},
		{
			name:     "Storage query",
			input:    "+CPMS: \"SM\",4,20,\"SM\",0,20,\"ME\",186,1000\r\n\r\nOK\r\n",
			expected: at.TypeOK,
		},
		{
			name:     "SMS prompt",
			input:    "AT+CMGS=\"+31628870634\"\r\r\n> ",
			expected: at.TypePrompt,
		},
		{
			name:     "Error",
			input:    "\r\nERROR\r\n",
			expected: at.TypeError,
		},
		{
			name:     "Empty",
			input:    "",
			expected: at.TypeIncomplete,
		},
		{
			name:     "Partial OK",
			input:    "\r\nO",
			expected: at.TypeIncomplete,
		},
		{
			name:     "OK without leading CRLF",
			input:    "OK\r\n",
			expected: at.TypeIncomplete,
		},
		{
			name:     "OK not at the tail",
			input:    "\r\nOK\r\n+CMTI: \"SM\",1\r\n",
			expected: at.TypeIncomplete,
		},
		{
			name:     "Prompt without trailing space",
			input:    "\r\n>",
			expected: at.TypeIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, at.Classify(tt.input))
		})
	}
}

func TestClassifyAcrossChunks(t *testing.T) {
	// Every split of the terminator must be recognised once the last chunk
	// has been appended, and never before.
	for _, term := range []string{at.TerminatorOK, at.TerminatorPrompt, at.TerminatorError} {
		for i := 1; i < len(term); i++ {
			var buf strings.Builder
			buf.WriteString(term[:i])
			assert.False(t, at.Terminated(buf.String()), "terminator %q split at %d", term, i)
			buf.WriteString(term[i:])
			assert.True(t, at.Terminated(buf.String()), "terminator %q split at %d", term, i)
		}
	}
}

func TestResponseTypeSuccess(t *testing.T) {
	assert.True(t, at.TypeOK.Success())
	assert.True(t, at.TypePrompt.Success())
	assert.False(t, at.TypeError.Success())
	assert.False(t, at.TypeIncomplete.Success())
}

func TestCommands(t *testing.T) {
	assert.Equal(t, `AT+CMGL="ALL"`, at.ListCommand(at.FilterAll))
	assert.Equal(t, `AT+CMGL="REC UNREAD"`, at.ListCommand(at.FilterUnread))
	assert.Equal(t, `AT+CMGS="+31628870634"`, at.SendCommand("+31628870634"))
	assert.Equal(t, "AT+CMGD=1,3", at.DeleteCommand("1,3"))
	assert.Equal(t, "Hello World!\x1a\r", at.MessageBody("Hello World!"))
}
