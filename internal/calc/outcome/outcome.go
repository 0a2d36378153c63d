// Package outcome holds the result contract shared by every
// calculator: a titled, unit-tagged headline number plus a
// human-readable description. This is the shape the record store
// persists and the history endpoint returns.
package outcome

type Outcome struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Units       string  `json:"units"`
}
