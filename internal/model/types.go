package model

// Match is one matching line with the position of the first occurrence.
type Match struct {
	Line int    `json:"line"`
	Col  int    `json:"col"`
	Text string `json:"text"`
}
