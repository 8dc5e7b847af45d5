package at

import "strings"

type ResponseType int

const (
	TypeIncomplete ResponseType = iota // No terminator yet
	TypeOK                             // Final result code OK
	TypePrompt                         // SMS body input prompt
	TypeError                          // Final result code ERROR
)

func (t ResponseType) String() string {
	switch t {
	case TypeOK:
		return "ok"
	case TypePrompt:
		return "prompt"
	case TypeError:
		return "error"
	default:
		return "incomplete"
	}
}

// Success reports whether the response may be handed to the caller: a final
// OK, or the prompt that precedes the SMS body.
func (t ResponseType) Success() bool {
	return t == TypeOK || t == TypePrompt
}

// Classify identifies the terminator that ends buf, if any.
//
// The match is always against the tail of the whole accumulated response, so
// a terminator that arrived split across several reads is still recognised.
func Classify(buf string) ResponseType {
	switch {
	case strings.HasSuffix(buf, TerminatorOK):
		return TypeOK
	case strings.HasSuffix(buf, TerminatorPrompt):
		return TypePrompt
	case strings.HasSuffix(buf, TerminatorError):
		return TypeError
	default:
		return TypeIncomplete
	}
}

// Terminated reports whether buf ends with any recognised terminator.
func Terminated(buf string) bool {
	return Classify(buf) != TypeIncomplete
}
