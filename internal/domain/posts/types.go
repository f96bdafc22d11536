package posts

// Category de un post del feed.
// @Enum general, advice, question, adoption, health, tips
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryAdvice   Category = "advice"
	CategoryQuestion Category = "question"
	CategoryAdoption Category = "adoption"
	CategoryHealth   Category = "health"
	CategoryTips     Category = "tips"
)

var categories = []Category{CategoryGeneral, CategoryAdvice, CategoryQuestion, CategoryAdoption, CategoryHealth, CategoryTips}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Sort del feed.
const (
	SortRecent    = "recent"
	SortPopular   = "popular"
	SortDiscussed = "discussed"
)
