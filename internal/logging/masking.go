// Package logging provides utilities for secure logging with data masking.
package logging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// sensitiveFields are JSON body fields that are always redacted in logs.
// Plaintext passwords and issued tokens must never reach the log stream.
var sensitiveFields = map[string]bool{
	"password":        true,
	"currentpassword": true,
	"newpassword":     true,
	"token":           true,
	"password_hash":   true,
}

// MaskHeader redacts sensitive header values based on header name.
// Returns the redacted value suitable for logging.
//
// Rules:
// - Password/secret headers: "[REDACTED]" (no partial reveal)
// - Authorization/API key headers: "****" + last 4 chars
// - Other headers: returned unchanged
func MaskHeader(name, value string) string {
	lowerName := strings.ToLower(name)

	if strings.Contains(lowerName, "password") ||
		strings.Contains(lowerName, "secret") {
		return "[REDACTED]"
	}

	if lowerName == "authorization" ||
		lowerName == "accesskey" ||
		lowerName == "x-api-key" {
		if len(value) < 4 {
			return "****"
		}
		return "****" + value[len(value)-4:]
	}

	return value
}

// MaskJSONBody redacts sensitive fields in a JSON body. Field names are
// matched case-insensitively against the sensitive-field set, at any depth.
// Returns the masked JSON as bytes, or the original if parsing fails.
func MaskJSONBody(body []byte) []byte {
	if len(body) == 0 {
		return body
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return body
	}

	masked := maskJSONValue(data)

	result, err := json.Marshal(masked)
	if err != nil {
		return body
	}

	return result
}

// maskJSONValue recursively masks sensitive fields in decoded JSON.
func maskJSONValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{})
		for key, val := range v {
			if sensitiveFields[strings.ToLower(key)] {
				result[key] = "[REDACTED]"
			} else {
				result[key] = maskJSONValue(val)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = maskJSONValue(item)
		}
		return result
	default:
		return value
	}
}

// FormatBinaryData summarizes non-UTF-8 body content for logging instead of
// dumping raw bytes (e.g. multipart uploads).
func FormatBinaryData(data []byte) string {
	return fmt.Sprintf("[binary data, %d bytes]", len(data))
}
