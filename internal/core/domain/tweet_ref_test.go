package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTweetRef(t *testing.T) {
	for in, want := range map[string]string{
		"1390000000000000001":                              "1390000000000000001",
		" 42 ":                                             "42",
		"https://twitter.com/someone/status/123":           "123",
		"twitter.com/some_one/status/456?s=20":             "456",
		"http://mobile.twitter.com/abc/status/789/photo/1": "789",
		"https://x.com/handle/status/1011":                 "1011",
		"HTTPS://WWW.TWITTER.COM/Handle/status/1213":       "1213",
		"https://x.com/handle/status/1415#top":             "1415",
	} {
		got, ok := ParseTweetRef(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{
		"",
		"abc",
		"12a",
		"https://twitter.com/someone",
		"https://example.com/a/status/1",
		"twitter.com/u/status/123abc",
		"https://twitter.com/u/status/99.5",
	} {
		_, ok := ParseTweetRef(in)
		assert.False(t, ok, in)
	}
}

func TestParseTweetRefs(t *testing.T) {
	ids, ok := ParseTweetRefs([]string{"1", "https://twitter.com/a/status/2", "1"})
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, ids)

	_, ok = ParseTweetRefs([]string{"1", "nope"})
	assert.False(t, ok)

	_, ok = ParseTweetRefs(nil)
	assert.False(t, ok)
}
