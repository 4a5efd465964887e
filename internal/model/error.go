package model

// ErrorResult is the failure payload for any tool. Context fields are
// echoed back when known.
type ErrorResult struct {
	Error    string `json:"error"`
	Chain    string `json:"chain,omitempty"`
	Protocol string `json:"protocol,omitempty"`
}
