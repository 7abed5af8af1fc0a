package crawl

// Metadata describes the crawler build. It is constructed once at process
// start and attached to error payloads so failed runs still identify the
// crawler that produced them.
type Metadata struct {
	Version     string   `json:"version"`
	TestedOn    []string `json:"tested_on"`
	RateLimit   string   `json:"rate_limit"`
	Description string   `json:"description"`
}

// DefaultMetadata returns the static metadata for this crawler build.
func DefaultMetadata() Metadata {
	return Metadata{
		Version:     "1.0.0",
		TestedOn:    []string{"lewz.cn/jprj"},
		RateLimit:   "20 RPM",
		Description: "Extracts Baidu Netdisk links and metadata from Lewz knowledge base",
	}
}

// errorPayload is the JSON document emitted on an unrecoverable failure.
type errorPayload struct {
	Error    string   `json:"error"`
	Metadata Metadata `json:"metadata"`
}
