package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultSummary     = "No summary available."
	defaultInsight     = "No educational insight available."
	defaultDescription = "No description provided."
	generalFlagType    = "General Flag"
)

// StripFences removes the markdown code fences models often wrap JSON in.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Normalize turns the raw model output into a fully-populated Report. Keys
// missing from the response fall back to defaults rather than failing the
// analysis; only unparseable JSON is an error. The envelope fields (ID, Kind,
// timestamps) are left for the caller to stamp.
func Normalize(raw string) (*Report, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(StripFences(raw)), &doc); err != nil {
		return nil, err
	}
	return &Report{
		CredibilityScore:   scoreOf(doc["credibility_score"]),
		Summary:            stringOr(doc["summary"], defaultSummary),
		RedFlags:           flagsOf(doc["red_flags"]),
		EducationalInsight: stringOr(doc["educational_insight"], defaultInsight),
	}, nil
}

func scoreOf(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// flagsOf accepts the red_flags value in whichever shape the model produced:
// structured objects, plain strings, or a mix. Entries are never dropped and
// order is preserved.
func flagsOf(v any) []RedFlag {
	items, ok := v.([]any)
	if !ok {
		return []RedFlag{}
	}
	flags := make([]RedFlag, 0, len(items))
	for _, it := range items {
		switch f := it.(type) {
		case map[string]any:
			flags = append(flags, RedFlag{
				FlagType:    stringOr(f["flag_type"], generalFlagType),
				Description: stringOr(f["description"], defaultDescription),
			})
		case string:
			flags = append(flags, RedFlag{FlagType: generalFlagType, Description: f})
		default:
			flags = append(flags, RedFlag{FlagType: generalFlagType, Description: fmt.Sprint(f)})
		}
	}
	return flags
}
