package redis

import "fmt"

const (
	// KeyPrefixPage is the prefix for rendered page keys
	KeyPrefixPage = "bunni:page:"
)

// PageKey returns the Redis key for a rendered page by fingerprint
func PageKey(fingerprint string) string {
	return KeyPrefixPage + fingerprint
}

// ExtractFingerprint extracts the fingerprint from a Redis page key
func ExtractFingerprint(key string) (string, error) {
	if len(key) <= len(KeyPrefixPage) || key[:len(KeyPrefixPage)] != KeyPrefixPage {
		return "", fmt.Errorf("invalid page key: %s", key)
	}
	return key[len(KeyPrefixPage):], nil
}
