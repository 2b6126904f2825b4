package models

// Digest modes reported by the manager agent.
const (
	ModePreviewOnly = "preview_only"
	ModeFullDigest  = "full_digest"
)

type Paper struct {
	Title      string `json:"title"`
	Authors    string `json:"authors"`
	Abstract   string `json:"abstract"`
	KeyInsight string `json:"key_insight"`
	ArxivLink  string `json:"arxiv_link"`
	Categories string `json:"categories"` // comma-separated, rendered as badges
}

// DisplayID identifies a paper for UI purposes. Collisions are possible and
// accepted when both the link and the title are missing.
func (p *Paper) DisplayID() string {
	if p.ArxivLink != "" {
		return p.ArxivLink
	}
	return p.Title
}

type TopicResult struct {
	Topic string `json:"topic"`
	// PapersFound is advisory display data from the agent. It is not
	// reconciled against len(Papers).
	PapersFound int     `json:"papers_found"`
	Papers      []Paper `json:"papers"`
}

// ManagerResponse is the digest payload produced by the manager agent. Any
// field may be absent on the wire; Normalize fills the safe display defaults.
type ManagerResponse struct {
	Mode             string        `json:"mode"`
	TopicsSearched   int           `json:"topics_searched"`
	TotalPapersFound int           `json:"total_papers_found"`
	TopicsResults    []TopicResult `json:"topics_results"`
	EmailSent        bool          `json:"email_sent"`
	EmailStatus      string        `json:"email_status"`
	DigestDate       string        `json:"digest_date"`
}

// Normalize defaults every optional field so downstream display code can
// assume presence: slices are never nil. Numeric and string zero values
// already match the display defaults.
func (m *ManagerResponse) Normalize() {
	if m.TopicsResults == nil {
		m.TopicsResults = []TopicResult{}
	}
	for i := range m.TopicsResults {
		if m.TopicsResults[i].Papers == nil {
			m.TopicsResults[i].Papers = []Paper{}
		}
	}
}
