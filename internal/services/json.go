package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/ryan-the-brodsky/tastemaker/internal/analyzer"
	"github.com/ryan-the-brodsky/tastemaker/internal/types"
)

// decodeJSONMap decodes a JSON column into a map. Malformed or empty data
// decodes to an empty map so callers never branch on decode errors.
func decodeJSONMap(raw datatypes.JSON) map[string]any {
	out := map[string]any{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func decodeJSONStringMap(raw datatypes.JSON) map[string]string {
	generic := decodeJSONMap(raw)
	out := make(map[string]string, len(generic))
	for k, v := range generic {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// decodeJSONInto decodes a JSON column into a typed destination.
func decodeJSONInto(raw datatypes.JSON, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func encodeJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

// analyzerResults converts stored comparison rows into the analyzer's input
// shape.
func analyzerResults(rows []*types.ComparisonResult) []analyzer.Result {
	results := make([]analyzer.Result, 0, len(rows))
	for _, row := range rows {
		r := analyzer.Result{
			OptionAStyles: decodeJSONMap(row.OptionAStyles),
			OptionBStyles: decodeJSONMap(row.OptionBStyles),
			Choice:        row.Choice,
		}
		if len(row.QuestionResponses) > 0 {
			var answers []analyzer.QuestionResponse
			if err := json.Unmarshal(row.QuestionResponses, &answers); err == nil {
				r.QuestionResponses = answers
			}
		}
		results = append(results, r)
	}
	return results
}
