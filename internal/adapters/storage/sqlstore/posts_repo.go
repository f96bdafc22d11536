package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-hub/internal/domain/posts"
)

type PostsRepo struct {
	db *sql.DB
}

const postColumns = `
	id, author_id, author_name,
	title, content, category,
	likes, views, status,
	created_at, updated_at`

func (r *PostsRepo) Create(ctx context.Context, p posts.Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ID,
		p.AuthorID,
		p.AuthorName,
		p.Title,
		p.Content,
		string(p.Category),
		p.Likes,
		p.Views,
		string(p.Status),
		utc(p.CreatedAt),
		utc(p.UpdatedAt),
	)
	return err
}

// Update no toca contadores ni comentarios.
func (r *PostsRepo) Update(ctx context.Context, p posts.Post) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET
			title = $1,
			content = $2,
			category = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
	`,
		p.Title,
		p.Content,
		string(p.Category),
		string(p.Status),
		utc(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id string) (posts.Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return posts.Post{}, posts.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return posts.Post{}, posts.ErrNotFound
	}
	if err != nil {
		return posts.Post{}, err
	}

	byPost, err := r.comments(ctx, `WHERE post_id = $1`, id)
	if err != nil {
		return posts.Post{}, err
	}
	p.Comments = byPost[id]
	if p.Comments == nil {
		p.Comments = []posts.Comment{}
	}
	return p, nil
}

func (r *PostsRepo) List(ctx context.Context) ([]posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posts.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byPost, err := r.comments(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Comments = byPost[out[i].ID]
		if out[i].Comments == nil {
			out[i].Comments = []posts.Comment{}
		}
	}
	return out, nil
}

func (r *PostsRepo) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_comments WHERE post_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = rowsAffected(res) > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// IncrementLikes nunca deja el contador por debajo de cero.
func (r *PostsRepo) IncrementLikes(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET likes = CASE WHEN likes + $1 < 0 THEN 0 ELSE likes + $1 END
		WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) IncrementViews(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return posts.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) AddLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, postID, userID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

func (r *PostsRepo) RemoveLike(ctx context.Context, postID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

func (r *PostsRepo) AddComment(ctx context.Context, c posts.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO post_comments (id, post_id, author_id, author_name, text, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		c.ID,
		c.PostID,
		c.AuthorID,
		c.AuthorName,
		c.Text,
		utc(c.CreatedAt),
	)
	return err
}

func (r *PostsRepo) DeleteComment(ctx context.Context, postID, commentID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM post_comments WHERE post_id = $1 AND id = $2
	`, postID, commentID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

// comments agrupa por post, en orden de inserción.
func (r *PostsRepo) comments(ctx context.Context, where string, args ...any) (map[string][]posts.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, post_id, author_id, author_name, text, created_at
		FROM post_comments
		`+where+`
		ORDER BY position ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]posts.Comment)
	for rows.Next() {
		var c posts.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		out[c.PostID] = append(out[c.PostID], c)
	}
	return out, rows.Err()
}

func scanPost(s scanner) (posts.Post, error) {
	var p posts.Post
	var category, status string
	if err := s.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorName,
		&p.Title,
		&p.Content,
		&category,
		&p.Likes,
		&p.Views,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return posts.Post{}, err
	}
	p.Category = posts.Category(category)
	p.Status = posts.Status(status)
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}
