package entities

// FAQ is a frequently asked question shown on the storefront
type FAQ struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
