package domain

import (
	"regexp"
	"strings"
)

var (
	tweetLinkRe = regexp.MustCompile(`(?i)^(https?://)?(mobile\.|www\.)?(twitter|x)\.com/\w{1,15}/status/([0-9]+)(?:[/?#]|$)`)
	tweetIDRe   = regexp.MustCompile(`^[0-9]{1,20}$`)
)

// ParseTweetRef extracts a status id from a bare id or a status link.
func ParseTweetRef(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if tweetIDRe.MatchString(ref) {
		return ref, true
	}
	m := tweetLinkRe.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[4], true
}

// ParseTweetRefs parses every reference and drops duplicates while keeping
// the first-seen order. It fails if any reference is unparseable or if
// nothing remains.
func ParseTweetRefs(refs []string) ([]string, bool) {
	ids := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		id, ok := ParseTweetRef(ref)
		if !ok {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, len(ids) > 0
}
