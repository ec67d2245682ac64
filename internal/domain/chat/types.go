package chat

// Request is the inbound user message in any language.
type Request struct {
	Message string `json:"message" binding:"required"`
}

// Response is the fully resolved reply: text in the user's language with
// emphasis rendered as bold tags, plus a best-effort audio rendition.
type Response struct {
	Text     string
	Language string
	Audio    []byte
	Source   Source
}

// Source tags how the answer was resolved, driving disclaimer injection
// and observability. It is not part of the wire response.
type Source string

const (
	// SourceDatabase means the knowledge store resolved the query.
	SourceDatabase Source = "database"
	// SourceGenerated means the generative gateway produced the answer.
	SourceGenerated Source = "generated"
	// SourceNotFound means every lookup tier and the fallback came up empty.
	SourceNotFound Source = "not_found"
	// SourceOutOfDomain means the query was not medically relevant.
	SourceOutOfDomain Source = "out_of_domain"
)
