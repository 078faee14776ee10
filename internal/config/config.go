// Package config loads the bot's runtime configuration and the credential
// file holding the chat and dialogue service identifiers.
package config

import "errors"

var (
	// ErrConfiguration marks failures while reading or validating config.yaml.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidCredentials marks a credential file that is malformed or incomplete.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
