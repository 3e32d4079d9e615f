package store

import (
	"sort"
	"sync"
	"time"

	"github.com/shoply/server/models"
)

// PostStore keeps storefront posts in process memory. Posts are append-only;
// ids are a process-lifetime counter and restart from 1 on boot.
type PostStore struct {
	mu     sync.RWMutex
	posts  []*models.Post
	nextID int
}

// NewPostStore creates an empty post store.
func NewPostStore() *PostStore {
	return &PostStore{nextID: 1}
}

// Create appends a post authored by the given identity and returns it.
func (s *PostStore) Create(title, content, category, author, authorID string) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		Category:  category,
		Author:    author,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		Featured:  false,
	}
	s.nextID++
	s.posts = append(s.posts, post)
	return post
}

// List returns all posts sorted newest-first.
func (s *PostStore) List() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Post, len(s.posts))
	copy(out, s.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Len reports the number of stored posts.
func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
