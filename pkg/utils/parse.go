package utils

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a loosely-typed price value like "$1,299.99" into a decimal.
// Unparsable or negative values return nil, meaning "unknown", never an error.
func ParsePrice(raw any) *decimal.Decimal {
	var d decimal.Decimal

	switch v := raw.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		d = v
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(v))
		if cleaned == "" {
			return nil
		}
		parsed, err := decimal.NewFromString(cleaned)
		if err != nil {
			return nil
		}
		d = parsed
	default:
		return nil
	}

	if d.IsNegative() {
		return nil
	}
	return &d
}

// ParseRating parses a rating value like 4.5 or "4.5 out of 5" into a float,
// clamped to [0,5]. Unparsable values return nil, meaning "unknown".
func ParseRating(raw any) *float64 {
	var f float64

	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if idx := strings.Index(strings.ToLower(s), "out of"); idx >= 0 {
			s = strings.TrimSpace(s[:idx])
		}
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if f < 0 {
		f = 0
	}
	if f > 5 {
		f = 5
	}
	return &f
}

// ParseCount parses a non-negative integer count from loosely-typed input.
// Unparsable or negative values return nil, meaning "unknown".
func ParseCount(raw any) *int {
	var n int

	switch v := raw.(type) {
	case nil:
		return nil
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		n = int(parsed)
	default:
		return nil
	}

	if n < 0 {
		return nil
	}
	return &n
}

// ParseBool parses truthy representations ("Yes", "true", "1", "y") into a bool.
// A present but unrecognized value is false; absent (nil) input returns nil.
func ParseBool(raw any) *bool {
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		return &v
	case int:
		b := v == 1
		return &b
	case int64:
		b := v == 1
		return &b
	case float64:
		b := v == 1
		return &b
	case string:
		b := false
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "y":
			b = true
		}
		return &b
	default:
		b := false
		return &b
	}
}

// SplitFeatureTags splits free-text feature descriptions (comma or pipe
// separated) into a sorted, deduplicated set of lowercase tags.
func SplitFeatureTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '|'
	})

	tagSet := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NormalizeIdentifier converts a string to a normalized identifier used for
// identity keys: lowercase, alphanumeric runs joined by single underscores.
func NormalizeIdentifier(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	lastUnderscore := false

	for _, ch := range trimmed {
		isAlphaNum := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
		if isAlphaNum {
			b.WriteRune(ch)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	return strings.Trim(b.String(), "_")
}
