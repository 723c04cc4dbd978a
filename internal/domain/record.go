package domain

import "sort"

// SavedRequest is the on-disk representation of a request: one record per
// file. Headers collapse to a map (duplicate keys last-write-wins); row
// order and enabled flags are not persisted.
type SavedRequest struct {
	Name    string            `json:"name" yaml:"name"`
	Method  string            `json:"method" yaml:"method"`
	URL     string            `json:"url" yaml:"url"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    string            `json:"body,omitempty" yaml:"body,omitempty"`
}

// RecordFromRequest builds the persisted form of a request. Empty-key
// header rows are excluded; disabled rows are excluded; duplicates
// collapse to the last value.
func RecordFromRequest(req Request) SavedRequest {
	headers := make(map[string]string)
	for _, kv := range req.EffectiveHeaders() {
		headers[kv.Key] = kv.Value
	}
	return SavedRequest{
		Name:    req.Name,
		Method:  string(req.Method),
		URL:     req.URL,
		Headers: headers,
		Body:    req.Body,
	}
}

// ToRequest decodes the record back into composer state. The method is
// parsed case-insensitively with a GET fallback, and a trailing empty
// header row is appended so the editor always has room to add one more.
func (s SavedRequest) ToRequest() Request {
	headers := make([]KeyValue, 0, len(s.Headers)+1)
	for _, key := range sortedKeys(s.Headers) {
		headers = append(headers, KeyValue{Key: key, Value: s.Headers[key], Enabled: true})
	}
	headers = append(headers, KeyValue{Enabled: true})

	return Request{
		Name:    s.Name,
		Method:  ParseMethod(s.Method),
		URL:     s.URL,
		Headers: headers,
		Params:  []KeyValue{{Enabled: true}},
		Body:    s.Body,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
