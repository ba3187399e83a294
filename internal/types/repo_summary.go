package types

import "time"

// RepoSummary is the normalized output of the external repository
// ingestion: one entry per repo with the fields the aggregator scores
// on. Languages holds the full language set when the ingestion could
// fetch it; otherwise it is empty and PrimaryLanguage is the fallback.
type RepoSummary struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PrimaryLanguage string    `json:"primary_language"`
	Languages       []string  `json:"languages,omitempty"`
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	Size            int       `json:"size"`
	UpdatedAt       time.Time `json:"updated_at"`
}
