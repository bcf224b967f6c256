// package identifier classifies bare strings as YouTube channel or video IDs.
//
// Checks are purely structural (length, prefix, alphabet) and never touch the network.
package identifier

import "regexp"

const (
	ChannelIDLength = 24
	VideoIDLength   = 11
)

var (
	tokenPattern   = regexp.MustCompile(`[A-Za-z0-9_-]+`)
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// IsChannelID reports whether s is shaped like a channel ID: 24 bytes starting with "UC".
func IsChannelID(s string) bool {
	return len(s) == ChannelIDLength && s[0] == 'U' && s[1] == 'C'
}

// IsVideoID reports whether s is shaped like a video ID: 11 bytes, all drawn from [A-Za-z0-9_-].
func IsVideoID(s string) bool {
	return len(s) == VideoIDLength && videoIDPattern.MatchString(s)
}

// HasToken reports whether s contains at least one run of ID characters.
func HasToken(s string) bool {
	return tokenPattern.MatchString(s)
}
