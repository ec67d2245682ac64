package faq

// Entry is one question/answer pair in the knowledge store. Questions are
// unique case-insensitively; answers are never overwritten once stored.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
