package extract

// Result statuses. The extractor is an untrusted producer: transport and API
// failures downgrade to an error result, replies that are not valid JSON
// downgrade to partial success, and a timed-out call is classified
// separately from a parse failure. Nothing here panics or propagates.
const (
	StatusProcessed = "processed"
	StatusPartial   = "partial_success"
	StatusError     = "error"
	StatusTimeout   = "timeout"
)

// Result is what the extractor hands back for one document text.
type Result struct {
	Status          string         `json:"status"`
	DocumentType    string         `json:"document_type"`
	Fields          map[string]any `json:"fields"`
	ConfidenceScore float64        `json:"confidence_score"`
	RawResponse     string         `json:"raw_response,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// Field returns the first present, non-empty value among the given keys as a
// string, or "Not found" when none is set. Extracted data is sparse, so
// display code always goes through this default.
func (r Result) Field(keys ...string) string {
	for _, key := range keys {
		v, ok := r.Fields[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if s == "" {
				continue
			}
			return s
		}
		return stringify(v)
	}
	return "Not found"
}

// Amount returns the first numeric value among the given keys, if any.
func (r Result) Amount(keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := r.Fields[key].(float64); ok {
			return v, true
		}
	}
	return 0, false
}
