// Package memory holds an in-memory implementation of the repository
// interfaces for tests. It mirrors the postgres behavior that callers rely
// on: apperr translations, email uniqueness, liker-set semantics and the
// delete cascades the schema's foreign keys provide.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

type postRow struct {
	models.Post
	seq int
}

type commentRow struct {
	models.Comment
	seq int
}

type Store struct {
	mu       sync.Mutex
	seq      int
	users    map[string]models.User
	posts    map[string]postRow
	comments map[string]commentRow
	likes    map[string]map[string]bool // post id -> liker set
}

func New() *Store {
	return &Store{
		users:    map[string]models.User{},
		posts:    map[string]postRow{},
		comments: map[string]commentRow{},
		likes:    map[string]map[string]bool{},
	}
}

func (s *Store) UserRepo() repository.Users       { return users{s} }
func (s *Store) PostRepo() repository.Posts       { return posts{s} }
func (s *Store) CommentRepo() repository.Comments { return comments{s} }

func (s *Store) next() int {
	s.seq++
	return s.seq
}

// ---------- users ----------

type users struct{ s *Store }

func (r users) Create(_ context.Context, name, email, hash, role string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return models.User{}, apperr.Duplicate("email already registered")
		}
	}
	now := time.Now()
	u := models.User{
		ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash,
		Role: role, CreatedAt: now, UpdatedAt: now,
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r users) GetByID(_ context.Context, id string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, apperr.NotFound("user")
	}
	return u, nil
}

func (r users) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFound("user")
}

func (r users) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r users) Update(_ context.Context, u models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.ID]
	if !ok {
		return apperr.NotFound("user")
	}
	cur.Name, cur.AvatarURL, cur.Role = u.Name, u.AvatarURL, u.Role
	cur.UpdatedAt = time.Now()
	r.s.users[u.ID] = cur
	return nil
}

func (r users) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return apperr.NotFound("user")
	}
	delete(r.s.users, id)
	// FK cascade: authored posts go, then anything hanging off them.
	for pid, p := range r.s.posts {
		if p.AuthorID == id {
			r.s.deletePostLocked(pid)
		}
	}
	for cid, c := range r.s.comments {
		if c.AuthorID == id {
			delete(r.s.comments, cid)
		}
	}
	for _, set := range r.s.likes {
		delete(set, id)
	}
	return nil
}

// ---------- posts ----------

type posts struct{ s *Store }

func (r posts) Create(_ context.Context, title, content, image, authorID string) (models.Post, error) {
	r.s.mu.Lock()
	now := time.Now()
	p := postRow{
		Post: models.Post{
			ID: uuid.NewString(), Title: title, Content: content, Image: image,
			AuthorID: authorID, CreatedAt: now, UpdatedAt: now,
		},
		seq: r.s.next(),
	}
	r.s.posts[p.ID] = p
	r.s.mu.Unlock()
	return r.GetByID(context.Background(), p.ID)
}

func (r posts) GetByID(_ context.Context, id string) (models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.posts[id]
	if !ok {
		return models.Post{}, apperr.NotFound("post")
	}
	return r.s.projectLocked(row), nil
}

func (s *Store) projectLocked(row postRow) models.Post {
	p := row.Post
	if author, ok := s.users[p.AuthorID]; ok {
		sum := author.Summary()
		p.Author = &sum
	}
	for uid := range s.likes[p.ID] {
		if u, ok := s.users[uid]; ok {
			p.Likes = append(p.Likes, u.Summary())
		}
	}
	sort.Slice(p.Likes, func(i, j int) bool { return p.Likes[i].Name < p.Likes[j].Name })
	p.LikeCount = len(p.Likes)

	var rows []commentRow
	for _, c := range s.comments {
		if c.PostID == p.ID {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	for _, c := range rows {
		cm := c.Comment
		if u, ok := s.users[cm.AuthorID]; ok {
			sum := u.Summary()
			cm.Author = &sum
		}
		p.Comments = append(p.Comments, cm)
	}
	return p
}

func (r posts) List(_ context.Context, query string, limit, offset int) ([]models.Post, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	var rows []postRow
	for _, p := range r.s.posts {
		if q == "" || strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	total := len(rows)
	if offset > len(rows) {
		offset = len(rows)
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	out := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		p := r.s.projectLocked(row)
		p.Comments = nil // list is the summary projection
		out = append(out, p)
	}
	return out, total, nil
}

func (r posts) Update(_ context.Context, p models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.posts[p.ID]
	if !ok {
		return apperr.NotFound("post")
	}
	row.Title, row.Content, row.Image = p.Title, p.Content, p.Image
	row.UpdatedAt = time.Now()
	r.s.posts[p.ID] = row
	return nil
}

func (r posts) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return apperr.NotFound("post")
	}
	r.s.deletePostLocked(id)
	return nil
}

func (s *Store) deletePostLocked(id string) {
	delete(s.posts, id)
	delete(s.likes, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
}

func (r posts) ToggleLike(_ context.Context, postID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	set := r.s.likes[postID]
	if set == nil {
		set = map[string]bool{}
		r.s.likes[postID] = set
	}
	if set[userID] {
		delete(set, userID)
		return false, nil
	}
	set[userID] = true
	return true, nil
}

// ---------- comments ----------

type comments struct{ s *Store }

func (r comments) Create(_ context.Context, postID, authorID, text string) (models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := commentRow{
		Comment: models.Comment{
			ID: uuid.NewString(), PostID: postID, AuthorID: authorID,
			Text: text, CreatedAt: time.Now(),
		},
		seq: r.s.next(),
	}
	r.s.comments[c.ID] = c
	return c.Comment, nil
}

func (r comments) GetByID(_ context.Context, id string) (models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return models.Comment{}, apperr.NotFound("comment")
	}
	return c.Comment, nil
}

func (r comments) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return apperr.NotFound("comment")
	}
	delete(r.s.comments, id)
	return nil
}
