// Package config handles configuration loading, parsing, and validation.
// Values come from defaults, an optional config.yaml, an optional .env file
// and CONTACTS_-prefixed environment variables, in increasing precedence.
package config
