package crud

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"web3admin/models"
)

// SplitList turns "a, b , c" into [a b c]. Empty entries are dropped and the
// result is never nil.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DecodeForm builds the API input from submitted form values. It returns one
// message per invalid field. A select value outside its options is accepted
// only when it equals the value current already holds.
func DecodeForm(fields []Field, form url.Values, current models.Record) (map[string]any, []string) {
	input := map[string]any{}
	var problems []string
	for _, f := range fields {
		raw := strings.TrimSpace(form.Get(f.Name))
		if f.Kind == KindPassword {
			raw = form.Get(f.Name)
		}
		if f.Required && raw == "" && f.Kind != KindSwitch {
			problems = append(problems, f.Label+" is required")
			continue
		}

		var value any
		switch f.Kind {
		case KindSwitch:
			value = isChecked(raw)
		case KindNumber:
			if raw == "" {
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				problems = append(problems, f.Label+" must be a whole number")
				continue
			}
			value = n
		case KindTags:
			value = SplitList(raw)
		case KindSelect:
			if raw != "" && !hasOption(f.Options, raw) && !holds(current, f.Name, raw) {
				problems = append(problems, fmt.Sprintf("%s has an unknown value %q", f.Label, raw))
				continue
			}
			value = raw
		default:
			value = raw
		}
		setPath(input, f.Name, value)
	}
	return input, problems
}

// FormValues returns the initial input values for fields, taken from rec when
// editing or from field defaults when rec is nil.
func FormValues(fields []Field, rec models.Record) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		var v any
		if rec != nil {
			v, _ = rec.Lookup(f.Name)
		} else {
			v = f.Default
		}
		if f.Kind == KindPassword {
			continue
		}
		if f.Kind == KindSwitch {
			if b, ok := v.(bool); ok && b {
				values[f.Name] = "on"
			}
			continue
		}
		if v != nil {
			values[f.Name] = models.FormatValue(v)
		}
	}
	return values
}

// SubmittedValues keeps what the operator typed so a failed submit can be
// shown again.
func SubmittedValues(fields []Field, form url.Values) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Kind == KindPassword {
			continue
		}
		if v := form.Get(f.Name); v != "" {
			values[f.Name] = v
		}
	}
	return values
}

func isChecked(raw string) bool {
	switch strings.ToLower(raw) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// UnlistedSelect reports whether form carries a select value that is not one
// of the field's options.
func UnlistedSelect(fields []Field, form url.Values) bool {
	for _, f := range fields {
		if f.Kind != KindSelect {
			continue
		}
		if raw := strings.TrimSpace(form.Get(f.Name)); raw != "" && !hasOption(f.Options, raw) {
			return true
		}
	}
	return false
}

func holds(rec models.Record, name, value string) bool {
	if rec == nil {
		return false
	}
	v, ok := rec.Lookup(name)
	return ok && v != nil && models.FormatValue(v) == value
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func setPath(input map[string]any, name string, value any) {
	parts := strings.Split(name, ".")
	cur := input
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
