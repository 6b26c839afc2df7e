package redis

// Key prefix for all banker data
const keyPrefix = "boardbanker"

// sessionKey is the fixed well-known key the whole session snapshot lives
// under. There is exactly one session per deployment.
func sessionKey() string {
	return keyPrefix + ":session"
}

// tokenKey is the key an issued banker token lives under
func tokenKey(token string) string {
	return keyPrefix + ":token:" + token
}
