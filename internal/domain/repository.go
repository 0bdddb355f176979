// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository is the normalized record for one repository as received from the
// listing endpoint. It is the data contract the rest of the pipeline relies
// on: optional upstream fields (description, homepage, language) collapse to
// empty strings at the gateway boundary so no stage downstream deals with
// pointers or missing keys.
type Repository struct {
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description,omitempty"`
	Homepage      string    `json:"homepage,omitempty"`
	HTMLURL       string    `json:"html_url"`
	DefaultBranch string    `json:"default_branch"`
	Language      string    `json:"language,omitempty"`
	Stars         int       `json:"stargazers_count"`
	Forks         int       `json:"forks_count"`
	UpdatedAt     time.Time `json:"updated_at"`
	Fork          bool      `json:"fork"`
	Private       bool      `json:"private"`
	HasPages      bool      `json:"has_pages"`
}
