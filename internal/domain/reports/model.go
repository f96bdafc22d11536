package reports

import "time"

// Reason del reporte.
// @Enum spam, harassment, inappropriate, misinformation, other
type Reason string

const (
	ReasonSpam           Reason = "spam"
	ReasonHarassment     Reason = "harassment"
	ReasonInappropriate  Reason = "inappropriate"
	ReasonMisinformation Reason = "misinformation"
	ReasonOther          Reason = "other"
)

var reasons = []Reason{ReasonSpam, ReasonHarassment, ReasonInappropriate, ReasonMisinformation, ReasonOther}

type Status string

const (
	StatusPending   Status = "pending"
	StatusResolved  Status = "resolved"
	StatusDismissed Status = "dismissed"
)

type Report struct {
	ID          string     `json:"id"`
	PostID      string     `json:"post_id"`
	ReporterID  string     `json:"reporter_id"`
	Reason      Reason     `json:"reason"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
