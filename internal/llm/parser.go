package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	ErrNoJSONObject        = errors.New("no JSON object found in model output")
	ErrInvalidPlanResponse = errors.New("model output is not a valid plan")
)

const endOfPlanMarker = "#END-OF-PLAN"

// PlanResponse is the decision the model returned.
type PlanResponse struct {
	Rationale  string
	Function   string
	Parameters map[string]string
}

type planEnvelope struct {
	Plan *planBody `json:"plan"`
	planBody
}

type planBody struct {
	Rationale  string         `json:"rationale"`
	Function   *string        `json:"function"`
	Parameters map[string]any `json:"parameters"`
}

// ParsePlanResponse extracts the plan object from raw model output. It copes
// with code fences, preamble text, the end-of-plan marker and, through
// jsonrepair, with truncated or slightly malformed JSON. Braces in the
// preamble are skipped: every opening brace is tried in turn until one
// yields a plan.
func ParsePlanResponse(raw string) (*PlanResponse, error) {
	if idx := strings.Index(raw, endOfPlanMarker); idx >= 0 {
		raw = raw[:idx]
	}

	var firstErr error
	for offset := 0; ; {
		start := strings.IndexByte(raw[offset:], '{')
		if start < 0 {
			break
		}
		start += offset

		plan, err := decodePlan(extractJSONObject(raw, start))
		if err == nil {
			return plan, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		offset = start + 1
	}

	if firstErr == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlanResponse, ErrNoJSONObject)
	}
	return nil, firstErr
}

func decodePlan(candidate string) (*PlanResponse, error) {
	env, err := unmarshalEnvelope(candidate)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlanResponse, err)
		}
		if env, err = unmarshalEnvelope(repaired); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlanResponse, err)
		}
	}

	body := env.Plan
	if body == nil {
		// Some models drop the {"plan": ...} wrapper.
		body = &env.planBody
	}
	if body.Function == nil {
		return nil, fmt.Errorf("%w: missing \"function\" field", ErrInvalidPlanResponse)
	}

	return &PlanResponse{
		Rationale:  strings.TrimSpace(body.Rationale),
		Function:   strings.TrimSpace(*body.Function),
		Parameters: stringifyParameters(body.Parameters),
	}, nil
}

// unmarshalEnvelope decodes with UseNumber so numeric parameters keep the
// exact text the model wrote.
func unmarshalEnvelope(data string) (planEnvelope, error) {
	var env planEnvelope
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return planEnvelope{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return planEnvelope{}, errors.New("unexpected data after plan object")
	}
	return env, nil
}

// extractJSONObject returns the JSON object opening at s[start]. When the
// object is never closed (the reply hit the token limit) everything from the
// opening brace onward is returned for repair.
func extractJSONObject(s string, start int) string {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return strings.TrimRight(strings.TrimSpace(s[start:]), "`")
}

// stringifyParameters flattens parameter values to strings. Nulls are
// dropped so that defaults can apply later.
func stringifyParameters(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for name, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[name] = v
		case json.Number:
			out[name] = v.String()
		case bool:
			out[name] = strconv.FormatBool(v)
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				continue
			}
			out[name] = string(encoded)
		}
	}
	return out
}
