package models

import "time"

type Comment struct {
	ID        string       `json:"id"`
	PostID    string       `json:"post_id"`
	AuthorID  string       `json:"author_id"`
	Author    *UserSummary `json:"author,omitempty"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
}

func (c Comment) OwnerID() string { return c.AuthorID }
