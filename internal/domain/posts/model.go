package posts

import (
	"time"

	"pet-care-hub/internal/domain/users"
)

type Post struct {
	ID         string
	AuthorID   string
	AuthorName string

	Title    string
	Content  string
	Category Category

	Likes    int
	Comments []Comment // orden de inserción
	Views    int

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID         string
	PostID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// Actor es quien ejecuta la operación (resuelto desde los claims).
type Actor struct {
	ID   string
	Name string
	Role users.Role
}

func (a Actor) canManage(authorID string) bool {
	return a.ID == authorID || a.Role.CanModerate()
}
