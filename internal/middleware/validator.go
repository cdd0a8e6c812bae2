package middleware

import (
	"fmt"
	"net/url"
	"strings"
)

// Input validation and sanitization for the three analysis entry points

// ValidateURL checks the target of a URL scan. The fetcher runs server-side,
// so localhost and private ranges are blocked to prevent SSRF.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s (allowed: http, https)", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("URL host cannot be empty")
	}
	blocked := []string{"localhost", "127.0.0.1", "0.0.0.0", "[::]", "::1"}
	for _, b := range blocked {
		if strings.Contains(host, b) {
			return fmt.Errorf("localhost/internal IPs are not allowed")
		}
	}

	if strings.HasPrefix(host, "10.") ||
		strings.HasPrefix(host, "192.168.") ||
		strings.HasPrefix(host, "172.16.") ||
		strings.HasPrefix(host, "172.31.") {
		return fmt.Errorf("private IP ranges are not allowed")
	}

	return nil
}

// ValidateText checks a free-text submission
func ValidateText(text string, maxBytes int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if maxBytes > 0 && len(text) > maxBytes {
		return fmt.Errorf("text too large: %d bytes (max %d)", len(text), maxBytes)
	}
	return nil
}

// ValidateImageType checks the MIME type of an uploaded image
func ValidateImageType(mime string) error {
	allowed := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}
	if !allowed[strings.ToLower(mime)] {
		return fmt.Errorf("unsupported image type: %s (allowed: jpeg, png)", mime)
	}
	return nil
}

// SanitizeString removes null bytes and control characters
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
