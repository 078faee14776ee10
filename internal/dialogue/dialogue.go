// Package dialogue implements clients for the conversational-reply service
// the bot forwards user text to.
package dialogue

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the service answered without an utterance.
var ErrEmptyResponse = errors.New("dialogue service returned an empty utterance")

// Client issues one blocking request per inbound message.
type Client interface {
	Request(ctx context.Context, req *Request) (*Response, error)
}

// Request is the text to answer plus optional hints about the speaker.
type Request struct {
	Utt      string
	Nickname string
}

// NewRequest builds a request for text without a nickname hint.
func NewRequest(text string) *Request {
	return &Request{Utt: text}
}

// Response is the service's answer. Only Utt is guaranteed to be set.
type Response struct {
	Utt     string `json:"utt"`
	Yomi    string `json:"yomi"`
	Mode    string `json:"mode"`
	DA      string `json:"da"`
	Context string `json:"context"`
}

// Persona selects the character that answers.
type Persona int

const (
	PersonaSakurako Persona = iota
	PersonaKansai
	PersonaAkachan
)

// ParsePersona maps a config name to a Persona.
func ParsePersona(name string) (Persona, error) {
	switch name {
	case "sakurako", "":
		return PersonaSakurako, nil
	case "kansai":
		return PersonaKansai, nil
	case "akachan":
		return PersonaAkachan, nil
	default:
		return 0, fmt.Errorf("unknown dialogue persona %q", name)
	}
}

func (p Persona) String() string {
	switch p {
	case PersonaSakurako:
		return "sakurako"
	case PersonaKansai:
		return "kansai"
	case PersonaAkachan:
		return "akachan"
	default:
		return fmt.Sprintf("persona(%d)", int(p))
	}
}

// characterType is the docomo "t" parameter. The default character is sent
// without it.
func (p Persona) characterType() string {
	switch p {
	case PersonaKansai:
		return "20"
	case PersonaAkachan:
		return "30"
	default:
		return ""
	}
}
