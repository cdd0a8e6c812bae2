package analysis

import "time"

// Kind enum for request variants
type Kind string

const (
	KindText  Kind = "text"
	KindURL   Kind = "url"
	KindImage Kind = "image"
)

// Request is one user-submitted piece of content. Exactly one variant is
// active: Body carries the raw text (KindText) or the page URL (KindURL);
// Instruction, ImageData and ImageMIME are set for KindImage only.
// A Request is created per user action and consumed once.
type Request struct {
	Kind        Kind
	Body        string
	Instruction string
	ImageData   []byte
	ImageMIME   string
}

// RedFlag is one structured indicator of suspicious content.
type RedFlag struct {
	FlagType    string `json:"flag_type"`
	Description string `json:"description"`
}

// Report is the normalized verdict produced by the pipeline. Every field is
// populated: missing model output is replaced by defaults during
// normalization, never left zero-valued by accident.
type Report struct {
	ID                 string    `json:"id"`
	Kind               Kind      `json:"kind"`
	CredibilityScore   float64   `json:"credibility_score"`
	Summary            string    `json:"summary"`
	RedFlags           []RedFlag `json:"red_flags"`
	EducationalInsight string    `json:"educational_insight"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
	DurationMS         int64     `json:"duration_ms"`
}
