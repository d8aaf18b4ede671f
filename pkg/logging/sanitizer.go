package logging

import "regexp"

// RedactedText is the replacement text for sensitive data.
const RedactedText = "[REDACTED]"

var (
	// Pattern to match bearer tokens in headers or error text.
	bearerPattern = regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._\-]+`)

	// Pattern to match Databricks personal access tokens ("dapi" prefix).
	patPattern = regexp.MustCompile(`\bdapi[A-Za-z0-9]{16,}\b`)

	// Pattern to match token/key query or form parameters.
	tokenParamPattern = regexp.MustCompile(`(?i)(token|api[_-]?key)=[^;&\s]+`)
)

// Sanitize removes credentials from a string before it is logged. Transport
// errors can echo request headers, so every error destined for a log line
// goes through here.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	sanitized := bearerPattern.ReplaceAllString(s, "Bearer "+RedactedText)
	sanitized = patPattern.ReplaceAllString(sanitized, RedactedText)
	sanitized = tokenParamPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	return sanitized
}

// SanitizeError sanitizes an error message for logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return Sanitize(err.Error())
}
