// Package scoring converts free-form audit responses into a normalized
// percentage score and a pass/fail compliance verdict. All functions are
// pure and never return an error: malformed values degrade the score
// instead of rejecting the submission.
package scoring

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/auditline/auditline/internal/domain/schema"
)

// positiveKeywords mark a select answer as fully compliant.
var positiveKeywords = map[string]bool{
	"yes":       true,
	"true":      true,
	"pass":      true,
	"compliant": true,
	"excellent": true,
	"good":      true,
}

// truthyStrings are string encodings of a checked checkbox.
var truthyStrings = map[string]bool{
	"true": true,
	"yes":  true,
	"1":    true,
	"on":   true,
}

// Score computes the weighted percentage score for a set of responses
// against a form schema. Fields absent from the responses are skipped and
// do not count against the denominator. With no schema, or when none of
// the schema's fields were answered, it falls back to the unweighted mean
// of the numeric response values.
func Score(responses map[string]any, sc *schema.Schema) float64 {
	if sc == nil || len(sc.Fields) == 0 {
		return round2(numericMean(responses))
	}

	var sumContribution, sumWeight float64
	for _, f := range sc.Fields {
		raw, answered := responses[f.ID]
		if !answered {
			continue
		}
		w := f.EffectiveWeight()
		sumContribution += normalize(raw, f) / f.Scale() * w
		sumWeight += w
	}

	if sumWeight == 0 {
		return round2(numericMean(responses))
	}
	return round2(100 * sumContribution / sumWeight)
}

// normalize maps a raw response value to its numeric contribution before
// scaling. The switch is exhaustive over schema.FieldType; unknown types
// contribute nothing.
func normalize(raw any, f schema.Field) float64 {
	switch f.Type {
	case schema.FieldNumber, schema.FieldRating:
		v, _ := asNumber(raw)
		return v
	case schema.FieldCheckbox:
		if truthy(raw) {
			return 1
		}
		return 0
	case schema.FieldSelect:
		if s, ok := raw.(string); ok && positiveKeywords[strings.ToLower(strings.TrimSpace(s))] {
			return 1
		}
		if v, ok := asNumber(raw); ok {
			return v
		}
		return 0
	case schema.FieldText:
		return 0
	default:
		return 0
	}
}

// numericMean is the schema-less fallback: the arithmetic mean of every
// numeric response value, 0 when there are none. Booleans count as 0/1,
// matching how checkbox answers arrive without a schema to say otherwise.
func numericMean(responses map[string]any) float64 {
	var total float64
	count := 0
	for _, raw := range responses {
		if b, ok := raw.(bool); ok {
			if b {
				total++
			}
			count++
			continue
		}
		if v, ok := asNumber(raw); ok {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return truthyStrings[strings.ToLower(strings.TrimSpace(v))]
	default:
		if f, ok := asNumber(raw); ok {
			return f != 0
		}
		return false
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
