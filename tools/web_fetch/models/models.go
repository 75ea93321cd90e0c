package models

import "strings"

// Result is the outcome of fetching one page. Fetch failures are carried in
// Text with an "Error" prefix rather than as Go errors, so a broken page can
// never abort a whole turn.
type Result struct {
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
	Status int    `json:"status"`
}

// Failed reports whether the fetch produced usable text.
func (r Result) Failed() bool {
	return strings.HasPrefix(r.Text, "Error")
}
