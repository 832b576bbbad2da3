package nemlig

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// HTTPError is returned for any non-2xx response from the vendor API.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := redactSensitive(e.Body)
	if len(body) > 300 {
		body = body[:300] + "…"
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// IsUnauthorized reports whether the error is an authentication failure.
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// ProductNotFoundError is returned by ProductDetails when the ID does not
// resolve to a product page.
type ProductNotFoundError struct {
	ProductID string
	Reason    string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found: %s", e.ProductID, e.Reason)
}

var sensitiveJSONKeys = map[string]struct{}{
	"password":     {},
	"access_token": {},
	"token":        {},
}

var sensitiveJSONValueRE = regexp.MustCompile(`(?i)("(?:password|access_token|token)"\s*:\s*)"[^"]*"`)

func redactSensitive(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	var v any
	if err := json.Unmarshal(b, &v); err == nil {
		redactAny(v)
		if out, err := json.Marshal(v); err == nil {
			return string(out)
		}
	}

	// Best-effort: redact common JSON patterns in string bodies.
	s := string(b)
	return sensitiveJSONValueRE.ReplaceAllString(s, `$1"***"`)
}

func redactAny(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			if _, ok := sensitiveJSONKeys[strings.ToLower(k)]; ok {
				t[k] = "***"
				continue
			}
			redactAny(vv)
		}
	case []any:
		for i := range t {
			redactAny(t[i])
		}
	}
}
