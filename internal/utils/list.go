package utils

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

// CleanList trims every element and drops the blank ones. The result is
// never nil so it serializes as [] rather than null.
func CleanList(values []string) []string {
	out := lo.Compact(lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	}))
	if out == nil {
		return []string{}
	}
	return out
}

// ParseList reads the loose list encodings the browser forms send: a JSON
// array literal or a comma separated string.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			return CleanList(arr)
		}
	}
	return CleanList(strings.Split(raw, ","))
}
