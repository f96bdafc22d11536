package notifications

import "time"

type Kind string

const (
	KindPostLiked      Kind = "post_liked"
	KindPostCommented  Kind = "post_commented"
	KindPostModerated  Kind = "post_moderated"
	KindReportReviewed Kind = "report_reviewed"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      Kind      `json:"kind"`
	PostID    string    `json:"post_id,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Input es lo que mandan los otros módulos para notificar a alguien.
type Input struct {
	UserID  string
	Kind    Kind
	PostID  string
	Message string
}
