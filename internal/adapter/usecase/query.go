package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"campaign-tracker/internal/core/domain"
)

// ListCampaigns runs the read pipeline for the campaign list. Stages run in
// a fixed order: visibility, search, hide filter, scoring, sort, paging,
// identity resolution, tweet redaction and permission attachment.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, viewerID string, opts domain.ListOptions) ([]domain.CampaignView, error) {
	opts = opts.Normalize()

	stored, err := u.campaigns.FindVisible(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("find visible campaigns: %w", err)
	}

	views := matchVisible(viewerID, stored)
	views = matchSearch(views, opts.Search)
	views = filterHidden(views, viewerID, opts.IncludeHidden)
	scoreViews(views, viewerID, u.now())
	sortViews(views, opts.Sort)
	views = paginate(views, opts.Page, opts.PageSize)
	if err = u.resolveUsers(ctx, views); err != nil {
		return nil, err
	}
	redactTweets(views, viewerID)
	attachPermissions(views, viewerID)
	return views, nil
}

// GetCampaigns returns the named campaigns the viewer can see, with the same
// derived fields as the list.
func (u *CampaignUseCase) GetCampaigns(ctx context.Context, viewerID string, ids []string) ([]domain.CampaignView, domain.Status, error) {
	if len(ids) == 0 {
		return nil, domain.StatusInvalid, nil
	}
	stored, err := u.campaigns.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("find campaigns: %w", err)
	}
	views := matchVisible(viewerID, stored)
	if len(views) == 0 {
		return nil, domain.StatusNotFound, nil
	}
	markHidden(views, viewerID)
	scoreViews(views, viewerID, u.now())
	if err = u.resolveUsers(ctx, views); err != nil {
		return nil, 0, err
	}
	redactTweets(views, viewerID)
	attachPermissions(views, viewerID)
	return views, domain.StatusOK, nil
}

// matchVisible keeps campaigns where the viewer holds any role.
func matchVisible(viewerID string, campaigns []domain.Campaign) []domain.CampaignView {
	views := make([]domain.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		if !domain.ResolvePermissions(viewerID, c).Influencer {
			continue
		}
		views = append(views, domain.CampaignView{Campaign: c})
	}
	return views
}

// matchSearch keeps campaigns whose name starts with, or fuzzily contains,
// the search text. Empty text keeps everything.
func matchSearch(views []domain.CampaignView, search string) []domain.CampaignView {
	search = strings.TrimSpace(search)
	if search == "" {
		return views
	}
	lowered := strings.ToLower(search)
	return slices.DeleteFunc(views, func(v domain.CampaignView) bool {
		if strings.HasPrefix(strings.ToLower(v.Name), lowered) {
			return false
		}
		return !fuzzy.MatchNormalizedFold(search, v.Name)
	})
}

// filterHidden drops campaigns the viewer has hidden unless includeHidden.
// Kept campaigns are flagged so the urgency sort can push them last.
func filterHidden(views []domain.CampaignView, viewerID string, includeHidden bool) []domain.CampaignView {
	markHidden(views, viewerID)
	if includeHidden {
		return views
	}
	return slices.DeleteFunc(views, func(v domain.CampaignView) bool { return v.Hidden })
}

func markHidden(views []domain.CampaignView, viewerID string) {
	for i := range views {
		views[i].Hidden = views[i].IsHiddenFor(viewerID)
	}
}

// scoreViews attaches the completion figures. It must run before
// redaction because the aggregate percentage counts every tweet.
func scoreViews(views []domain.CampaignView, viewerID string, now time.Time) {
	for i := range views {
		views[i].Completion = domain.ScoreCampaign(views[i].Campaign, viewerID, now)
	}
}

// sortViews orders views in place. Every strategy falls back to dateAdded
// ascending and then id so the order is deterministic.
func sortViews(views []domain.CampaignView, sort domain.Sort) {
	byAdded := func(a, b domain.CampaignView) int {
		if c := a.DateAdded.Compare(b.DateAdded); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}

	var less func(a, b domain.CampaignView) int
	switch sort {
	case domain.SortName:
		col := collate.New(language.English)
		less = func(a, b domain.CampaignView) int {
			if c := col.CompareString(a.Name, b.Name); c != 0 {
				return c
			}
			return byAdded(a, b)
		}
	case domain.SortDateAddedAsc:
		less = byAdded
	case domain.SortDateAddedDesc:
		less = func(a, b domain.CampaignView) int { return byAdded(b, a) }
	case domain.SortEndDate:
		less = func(a, b domain.CampaignView) int {
			if c := compareOptionalTime(a.EndDate, b.EndDate); c != 0 {
				return c
			}
			return byAdded(a, b)
		}
	default:
		less = func(a, b domain.CampaignView) int {
			if a.Hidden != b.Hidden {
				if a.Hidden {
					return 1
				}
				return -1
			}
			if c := cmp.Compare(b.CompletionOffBy, a.CompletionOffBy); c != 0 {
				return c
			}
			return byAdded(a, b)
		}
	}
	slices.SortStableFunc(views, less)
}

// compareOptionalTime orders missing times before present ones.
func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

// paginate returns page (0-indexed) of size pageSize. Pages past the end
// are empty.
func paginate(views []domain.CampaignView, page, pageSize int) []domain.CampaignView {
	if len(views) == 0 || pageSize <= 0 || page > (len(views)-1)/pageSize {
		return []domain.CampaignView{}
	}
	skip := page * pageSize
	end := min(skip+pageSize, len(views))
	return views[skip:end]
}

// resolveUsers expands member ids into user identities with one store
// lookup for the whole page. Unknown ids are skipped.
func (u *CampaignUseCase) resolveUsers(ctx context.Context, views []domain.CampaignView) error {
	if len(views) == 0 {
		return nil
	}
	var ids []string
	for i := range views {
		ids = append(ids, views[i].MemberIDs()...)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	users, err := u.users.FindUsersByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("find users: %w", err)
	}
	byID := make(map[string]domain.User, len(users))
	for _, usr := range users {
		byID[usr.ID] = usr
	}
	for i := range views {
		members := views[i].MemberIDs()
		views[i].Users = make([]domain.User, 0, len(members))
		for _, id := range members {
			if usr, ok := byID[id]; ok {
				views[i].Users = append(views[i].Users, usr)
			}
		}
	}
	return nil
}

// redactTweets fills userTweets and, for non-managers, replaces the full
// tweet list with the viewer's own tweets. Both lists are newest first.
func redactTweets(views []domain.CampaignView, viewerID string) {
	for i := range views {
		all := append([]domain.SubmittedTweet{}, views[i].SubmittedTweets...)
		domain.SortTweets(all)
		views[i].SubmittedTweets = all

		own := views[i].TweetsBy(viewerID)
		views[i].UserTweets = own
		if !domain.ResolvePermissions(viewerID, views[i].Campaign).Manager {
			views[i].SubmittedTweets = slices.Clone(own)
		}
	}
}

func attachPermissions(views []domain.CampaignView, viewerID string) {
	for i := range views {
		views[i].Permissions = domain.ResolvePermissions(viewerID, views[i].Campaign)
	}
}
