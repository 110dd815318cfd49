package domain

import "time"

const (
	// urgencyBias lifts every started campaign into a visible urgency tier.
	urgencyBias = 0.4
	// unpostedBias surfaces campaigns nobody has posted to yet.
	unpostedBias = 0.33
	// PostCooldown is how long after a viewer's own post their progress
	// is shown in the "just posted" state.
	PostCooldown = 12 * time.Hour
)

// Completion holds the derived progress figures of a campaign.
//
// DatePercentage is not capped at 1: overdue campaigns keep growing so the
// urgency sort still orders them. CompletionOffBy may be negative.
type Completion struct {
	DatePercentage      float64 `json:"datePercentage"`
	TweetPercentage     float64 `json:"tweetPercentage"`
	UserTweetPercentage float64 `json:"userTweetPercentage"`
	CompletionOffBy     float64 `json:"completionOffBy"`
	ViewerUrgency       float64 `json:"viewerUrgency"`
}

// ScoreCampaign computes the completion figures of c at now, from the
// point of view of viewerID. It reads the unredacted tweet list.
func ScoreCampaign(c Campaign, viewerID string, now time.Time) Completion {
	var out Completion
	out.DatePercentage = DatePercentage(c.StartDate, c.EndDate, now)
	out.TweetPercentage = TweetPercentage(c)
	out.UserTweetPercentage = userTweetPercentage(c, viewerID)
	out.CompletionOffBy = CompletionOffBy(out.DatePercentage, out.TweetPercentage)

	urgency := max(out.CompletionOffBy, 0)
	out.ViewerUrgency = min(urgency, cooldownCap(c, viewerID, now))
	return out
}

// DatePercentage is the elapsed fraction of the [start, end] window. A
// missing bound, a window that has not started or a non-positive window
// length yield 0.
func DatePercentage(start, end *time.Time, now time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	elapsed := now.Sub(*start)
	window := end.Sub(*start)
	if elapsed <= 0 || window <= 0 {
		return 0
	}
	return float64(elapsed) / float64(window)
}

// TweetPercentage is the share of required posts that were submitted, over
// all influencers. A missing or zero target yields 0.
func TweetPercentage(c Campaign) float64 {
	if c.TweetCount == nil || *c.TweetCount <= 0 || c.SubmittedTweets == nil {
		return 0
	}
	required := *c.TweetCount * len(c.Influencers)
	if required <= 0 {
		return 0
	}
	return float64(len(c.SubmittedTweets)) / float64(required)
}

func userTweetPercentage(c Campaign, viewerID string) float64 {
	if c.TweetCount == nil || *c.TweetCount <= 0 || viewerID == "" {
		return 0
	}
	return float64(len(c.TweetsBy(viewerID))) / float64(*c.TweetCount)
}

// CompletionOffBy is the urgency score used as the sort key. It is 0 when
// the campaign has not started or its target is already met.
func CompletionOffBy(datePct, tweetPct float64) float64 {
	if datePct == 0 || tweetPct >= 1 {
		return 0
	}
	score := datePct - tweetPct + urgencyBias
	if tweetPct == 0 {
		score += unpostedBias
	}
	return score
}

// cooldownCap limits the viewer-facing urgency right after the viewer has
// posted. It returns 1 when the viewer has no post inside PostCooldown.
func cooldownCap(c Campaign, viewerID string, now time.Time) float64 {
	if viewerID == "" {
		return 1
	}
	var latest time.Time
	for _, t := range c.SubmittedTweets {
		if t.AuthorID == viewerID && t.CreatedAt.After(latest) {
			latest = t.CreatedAt
		}
	}
	if latest.IsZero() {
		return 1
	}
	elapsed := max(now.Sub(latest), 0)
	if elapsed >= PostCooldown {
		return 1
	}
	return float64(elapsed) / float64(PostCooldown) * unpostedBias
}
