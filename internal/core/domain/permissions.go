package domain

import "slices"

// Permissions is the capability set of one viewer on one campaign. Owner
// implies Manager, Manager implies Influencer.
type Permissions struct {
	Owner      bool `json:"owner"`
	Manager    bool `json:"manager"`
	Influencer bool `json:"influencer"`
}

// ResolvePermissions derives the viewer's roles from the stored campaign.
// The result must not be cached across requests.
func ResolvePermissions(viewerID string, c Campaign) Permissions {
	if viewerID == "" {
		return Permissions{}
	}
	owner := c.Creator == viewerID
	manager := owner || slices.Contains(c.Managers, viewerID)
	influencer := manager || slices.Contains(c.Influencers, viewerID)
	return Permissions{Owner: owner, Manager: manager, Influencer: influencer}
}
