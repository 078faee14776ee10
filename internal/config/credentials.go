package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCredentialsPath is where the credential file is looked up when no
// path is given.
const DefaultCredentialsPath = "key.json"

// Credentials holds the two service identifiers read at startup.
type Credentials struct {
	// Slack is the chat service bot token.
	Slack string
	// Docomo is the dialogue service API key.
	Docomo string
}

// credentialsFile mirrors the JSON layout. Pointers distinguish an absent
// field from an empty string.
type credentialsFile struct {
	Slack  *string `json:"slack"  validate:"required"`
	Docomo *string `json:"docomo" validate:"required"`
}

// LoadCredentials reads and parses the credential file at path. Both fields
// must be present JSON strings; unknown fields are ignored.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	var raw credentialsFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidCredentials, path, err)
	}
	if err := validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCredentials, path, err)
	}

	return &Credentials{Slack: *raw.Slack, Docomo: *raw.Docomo}, nil
}

// String hides the secrets when the record is logged.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Slack:%s Docomo:%s}", mask(c.Slack), mask(c.Docomo))
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
