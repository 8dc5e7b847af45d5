// Package at holds the wire-level vocabulary of the Hayes AT command set as
// spoken by GSM modems in SMS text mode.
package at

import "fmt"

const (
	// Terminal Control
	CR    = "\r"
	CRLF  = "\r\n"
	CtrlZ = "\x1a"

	// Response terminators. A response is complete once the accumulated
	// buffer ends with one of these.
	TerminatorOK     = "\r\nOK\r\n"
	TerminatorPrompt = "\r\n> "
	TerminatorError  = "\r\nERROR\r\n"

	// Commands
	CmdAt             = "AT"
	CmdSetTextMode    = "AT+CMGF=1"
	CmdStorageStatus  = "AT+CPMS?"
	CmdCharsetPCCP437 = `AT+CSCS="PCCP437"`
	CmdStorageSIM     = `AT+CPMS="SM"`

	// Information responses
	StoragePrefix = "+CPMS:"
	ListingPrefix = "+CMGL:"
)

// Message status filters accepted by AT+CMGL in text mode.
const (
	FilterUnread = "REC UNREAD"
	FilterRead   = "REC READ"
	FilterUnsent = "STO UNSENT"
	FilterSent   = "STO SENT"
	FilterAll    = "ALL"
)

// ListCommand returns the AT+CMGL command listing messages with the given
// status filter.
func ListCommand(filter string) string {
	return fmt.Sprintf(`AT+CMGL="%s"`, filter)
}

// SendCommand returns the AT+CMGS command addressing the given recipient.
func SendCommand(number string) string {
	return fmt.Sprintf(`AT+CMGS="%s"`, number)
}

// DeleteCommand returns the AT+CMGD command with args appended verbatim,
// e.g. "1" or "1,3".
func DeleteCommand(args string) string {
	return "AT+CMGD=" + args
}

// MessageBody returns the text written after the AT+CMGS prompt: the body,
// Ctrl-Z and the carriage return that ends every command line.
func MessageBody(body string) string {
	return body + CtrlZ + CR
}
