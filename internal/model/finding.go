package model

// Finding severities.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// Finding flags a risk pattern detected in contract bytecode.
type Finding struct {
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ScanResult is the check_vulnerabilities success payload. HIGH findings
// go into Vulnerabilities, MEDIUM and LOW into Warnings.
type ScanResult struct {
	Chain           string    `json:"chain"`
	Contract        string    `json:"contract"`
	BytecodeSize    int       `json:"bytecode_size"`
	Vulnerabilities []Finding `json:"vulnerabilities"`
	Warnings        []Finding `json:"warnings"`
	ScanTimestamp   string    `json:"scan_timestamp"`
	Recommendation  string    `json:"recommendation"`
}
