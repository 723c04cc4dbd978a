package httpclient

import (
	"net/url"
	"strings"

	"github.com/restdeck/restdeck/internal/domain"
)

// BuildURL appends the enabled, non-empty-key parameter rows to the base
// URL as a percent-encoded query string. The base URL may already carry a
// query, in which case the rows are appended with "&".
func BuildURL(base string, params []domain.KeyValue) string {
	pairs := make([]string, 0, len(params))
	for _, kv := range params {
		if !kv.Enabled || kv.Key == "" {
			continue
		}
		pairs = append(pairs, url.QueryEscape(kv.Key)+"="+url.QueryEscape(kv.Value))
	}
	if len(pairs) == 0 {
		return base
	}
	query := strings.Join(pairs, "&")

	if strings.Contains(base, "?") {
		return base + "&" + query
	}
	return base + "?" + query
}
