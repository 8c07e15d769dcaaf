package models

// Project is the identity the board belongs to
type Project struct {
	Name    string     `json:"name"`
	Logo    string     `json:"logo,omitempty"` // image reference, empty when unset
	Members []Assignee `json:"members"`
}
