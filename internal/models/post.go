package models

import "time"

type Post struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Image     string        `json:"image,omitempty"`
	AuthorID  string        `json:"author_id"`
	Author    *UserSummary  `json:"author,omitempty"`
	Likes     []UserSummary `json:"likes,omitempty"`
	LikeCount int           `json:"like_count"`
	Comments  []Comment     `json:"comments,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (p Post) OwnerID() string { return p.AuthorID }
