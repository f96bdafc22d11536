package memory

import (
	"context"
	"strings"

	"pet-care-hub/internal/domain/posts"
)

type postRepo struct {
	s *Store
}

func (r *postRepo) Create(ctx context.Context, p posts.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errIDRequired
	}
	if _, exists := r.s.posts[p.ID]; exists {
		return errAlreadyExists
	}
	r.s.posts[p.ID] = copyPost(p)
	return nil
}

func (r *postRepo) Update(ctx context.Context, p posts.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.posts[p.ID]
	if !ok {
		return posts.ErrNotFound
	}
	// Contadores y comentarios tienen sus propias operaciones.
	cur.Title = p.Title
	cur.Content = p.Content
	cur.Category = p.Category
	cur.Status = p.Status
	cur.UpdatedAt = p.UpdatedAt
	r.s.posts[p.ID] = cur
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (posts.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return posts.Post{}, posts.ErrNotFound
	}
	return copyPost(p), nil
}

func (r *postRepo) List(ctx context.Context) ([]posts.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]posts.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		out = append(out, copyPost(p))
	}
	return out, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return false, nil
	}
	delete(r.s.posts, id)
	for k := range r.s.likes {
		if k.postID == id {
			delete(r.s.likes, k)
		}
	}
	return true, nil
}

func (r *postRepo) IncrementLikes(ctx context.Context, id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return posts.ErrNotFound
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	r.s.posts[id] = p
	return nil
}

func (r *postRepo) IncrementViews(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return posts.ErrNotFound
	}
	p.Views++
	r.s.posts[id] = p
	return nil
}

func (r *postRepo) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := likeKey{postID: postID, userID: userID}
	if _, ok := r.s.likes[k]; ok {
		return false, nil
	}
	r.s.likes[k] = struct{}{}
	return true, nil
}

func (r *postRepo) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := likeKey{postID: postID, userID: userID}
	if _, ok := r.s.likes[k]; !ok {
		return false, nil
	}
	delete(r.s.likes, k)
	return true, nil
}

func (r *postRepo) AddComment(ctx context.Context, c posts.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[c.PostID]
	if !ok {
		return posts.ErrNotFound
	}
	p.Comments = append(append([]posts.Comment{}, p.Comments...), c)
	r.s.posts[c.PostID] = p
	return nil
}

func (r *postRepo) DeleteComment(ctx context.Context, postID, commentID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return false, nil
	}
	kept := make([]posts.Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(p.Comments) {
		return false, nil
	}
	p.Comments = kept
	r.s.posts[postID] = p
	return true, nil
}

func copyPost(p posts.Post) posts.Post {
	p.Comments = append([]posts.Comment{}, p.Comments...)
	return p
}
