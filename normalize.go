package reqfreq

import "strings"

// NormalizeEndpoint rewrites a trailing all-digit path segment of endpoint to
// the placeholder '#', so that "/users/123" becomes "/users/#". Only the
// segment after the last slash is considered. An endpoint with no slash, one
// ending in a slash, or one whose last segment contains anything other than
// ASCII digits is returned unchanged. NormalizeEndpoint is idempotent.
func NormalizeEndpoint(endpoint string) string {
	slash := strings.LastIndexByte(endpoint, '/')
	if slash < 0 || slash == len(endpoint)-1 {
		return endpoint
	}
	for i := slash + 1; i < len(endpoint); i++ {
		if endpoint[i] < '0' || endpoint[i] > '9' {
			return endpoint
		}
	}
	return endpoint[:slash+1] + "#"
}
