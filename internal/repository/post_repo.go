package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"xpdev/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Ensure implementation of Posts interface at compile time.
var _ Posts = (*PostRepository)(nil)

// Listing queries order by id so the feed is insertion order,
// most-recent-last. (username, title) carries no uniqueness constraint;
// ByUsernameAndSlug resolves collisions to the lowest id, so the first
// stored post wins the address.
const (
	insertPostSQL           = `INSERT INTO posts (username, title, content, date) VALUES (?, ?, ?, ?)`
	selectAllPostsSQL       = `SELECT id, username, title, content, date FROM posts ORDER BY id`
	selectPostsByUserSQL    = `SELECT id, username, title, content, date FROM posts WHERE username = ? ORDER BY id`
	selectPostByUserSlugSQL = `SELECT id, username, title, content, date FROM posts WHERE username = ? AND title = ? ORDER BY id LIMIT 1`
)

// sqliteTimeLayout is the TIMESTAMP format the driver round-trips cleanly.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Create inserts a new post and returns its ID. The caller supplies the
// already-slugified title and the creation timestamp.
func (r *PostRepository) Create(ctx context.Context, p models.Post) (int, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL,
		p.Username,
		p.Title,
		p.Content,
		p.Date.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert post %q by %q: %w", p.Title, p.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// All returns every post in insertion order.
func (r *PostRepository) All(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, selectAllPostsSQL)
}

// ByUsername returns the posts of one author in insertion order.
func (r *PostRepository) ByUsername(ctx context.Context, username string) ([]models.Post, error) {
	return r.list(ctx, selectPostsByUserSQL, username)
}

// ByUsernameAndSlug fetches a post by its address. Returns (nil, nil) if not found.
func (r *PostRepository) ByUsernameAndSlug(ctx context.Context, username, slug string) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByUserSlugSQL, username, slug).
		Scan(&p.ID, &p.Username, &p.Title, &p.Content, &p.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q/%q: %w", username, slug, err)
	}
	p.Date = p.Date.UTC()
	return &p, nil
}

func (r *PostRepository) list(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 16)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Username, &p.Title, &p.Content, &p.Date); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.Date = p.Date.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}
