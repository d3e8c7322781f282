package scoring

import (
	"strings"

	"github.com/auditline/auditline/internal/domain/schema"
)

// Verdict is the stored compliance outcome of a submitted audit.
type Verdict string

const (
	Pass Verdict = "pass"
	Fail Verdict = "fail"
)

// negativeKeywords mark a critical select answer as non-compliant.
var negativeKeywords = map[string]bool{
	"no":            true,
	"false":         true,
	"fail":          true,
	"non-compliant": true,
	"poor":          true,
}

// Evaluate determines the compliance verdict for a scored response.
// No schema means default-permissive PASS. A score below the passing
// threshold fails immediately; otherwise every critical field must be
// answered and satisfied. Evaluation stops at the first failing critical
// field.
func Evaluate(responses map[string]any, score float64, sc *schema.Schema) Verdict {
	if sc == nil {
		return Pass
	}
	if score < sc.PassingScore {
		return Fail
	}
	for _, f := range sc.Fields {
		if !f.Critical {
			continue
		}
		if !criticalSatisfied(responses, f) {
			return Fail
		}
	}
	return Pass
}

func criticalSatisfied(responses map[string]any, f schema.Field) bool {
	raw, answered := responses[f.ID]
	if !answered {
		return false
	}
	switch f.Type {
	case schema.FieldCheckbox:
		return truthy(raw)
	case schema.FieldNumber, schema.FieldRating:
		v, ok := asNumber(raw)
		if !ok {
			v = 0
		}
		return v >= f.Min()
	case schema.FieldSelect:
		if s, ok := raw.(string); ok {
			return !negativeKeywords[strings.ToLower(strings.TrimSpace(s))]
		}
		return true
	default:
		// Text fields are never checked.
		return true
	}
}
