package domain

import "time"

// User is a resolved identity of a campaign member.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ScreenName string    `json:"screenName,omitempty"`
	Image      string    `json:"image,omitempty"`
	Location   string    `json:"location,omitempty"`
	DateAdded  time.Time `json:"dateAdded"`
}
