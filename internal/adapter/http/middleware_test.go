package httpadapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestViewerLimiterEvictsFullBuckets(t *testing.T) {
	clock := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	l := newViewerLimiter(rate.Every(time.Hour), 1)
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("alice"))
	assert.False(t, l.allow("alice"))

	// alice has refilled 50/60 of a token and is kept.
	clock = clock.Add(50 * time.Minute)
	assert.True(t, l.allow("bob"))
	assert.Len(t, l.limiters, 2)

	// alice is full again and dropped; bob is still draining.
	clock = clock.Add(20 * time.Minute)
	assert.True(t, l.allow("carol"))
	assert.Len(t, l.limiters, 2)
	assert.NotContains(t, l.limiters, "alice")
	assert.Contains(t, l.limiters, "bob")
	assert.False(t, l.allow("bob"))
}
