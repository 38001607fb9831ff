package models

import "time"

// Post is a published entry. Title holds the slugified form, the same
// string used in the /:username/:post address, not the display title.
type Post struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
}
