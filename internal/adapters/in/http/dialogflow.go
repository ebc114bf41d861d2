package http

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// WebhookRequest is the Dialogflow fulfillment payload. Only the fields
// the intent router needs are modeled.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent, its parameter bag and the
// conversation contexts.
type QueryResult struct {
	Intent         Intent          `json:"intent"`
	Parameters     map[string]any  `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

// Intent identifies the matched conversational intent by display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// OutputContext is a conversation context reference; its name embeds the
// session identifier.
type OutputContext struct {
	Name string `json:"name"`
}

var sessionIDPattern = regexp.MustCompile(`sessions/(.*?)/contexts`)

// ExtractSessionID pulls the session identifier out of a context name of
// the form ".../sessions/<id>/contexts/...".
func ExtractSessionID(contextName string) (string, error) {
	match := sessionIDPattern.FindStringSubmatch(contextName)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("no session id in context name %q", contextName)
	}
	return match[1], nil
}

// stringSliceParam reads a list-of-strings parameter. Dialogflow sends a
// single value as a bare string, so that shape is accepted too.
func stringSliceParam(parameters map[string]any, key string) ([]string, bool) {
	switch value := parameters[key].(type) {
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, len(out) > 0
	case string:
		if value == "" {
			return nil, false
		}
		return []string{value}, true
	default:
		return nil, false
	}
}

// intSliceParam reads a list-of-numbers parameter. JSON numbers arrive as
// float64; fractional quantities are rejected rather than rounded.
func intSliceParam(parameters map[string]any, key string) ([]int, bool) {
	raw, present := parameters[key]
	if !present || raw == nil {
		return nil, true
	}

	list, ok := raw.([]any)
	if !ok {
		single, singleOK := toInt(raw)
		if !singleOK {
			return nil, false
		}
		return []int{single}, true
	}

	out := make([]int, 0, len(list))
	for _, item := range list {
		n, itemOK := toInt(item)
		if !itemOK {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func toInt(value any) (int, bool) {
	f, ok := value.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// stringParam reads a scalar string parameter, tolerating the numeric
// shape Dialogflow sometimes uses for phone numbers.
func stringParam(parameters map[string]any, key string) string {
	switch value := parameters[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return fmt.Sprintf("%.0f", value)
	default:
		return ""
	}
}
