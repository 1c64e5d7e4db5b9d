// Package redact scrubs sensitive values from strings before they are logged
// or embedded in error responses. The main concern in this service is the
// caller-supplied LLM API key, which travels through request bodies and can
// surface in upstream error messages.
package redact

import "regexp"

// RedactedKeyPlaceholder replaces API keys and similar credentials.
const RedactedKeyPlaceholder = "[REDACTED_KEY]"

// RedactedCredentialPlaceholder replaces connection-string credentials.
const RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"

var (
	// Sutra-issued keys carry a recognizable prefix.
	sutraKeyRegex = regexp.MustCompile(`sutra_[A-Za-z0-9]{8,}`)

	// Bearer tokens in echoed request headers.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// Generic key/token assignments in error text.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Database connection strings with inline credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mongodb)://[^@\s]+@`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := sutraKeyRegex.ReplaceAllString(input, RedactedKeyPlaceholder)
	result = bearerRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "$1$2"+RedactedKeyPlaceholder)
	result = dbConnRegex.ReplaceAllString(result, RedactedCredentialPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
