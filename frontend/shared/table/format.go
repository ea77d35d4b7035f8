package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"web3admin/models"
)

const dateLayout = "02/01/2006"

// Badge renders the value as a pill. variants maps a value to a CSS modifier;
// unmapped values use "default".
func Badge(variants map[string]string) Formatter {
	return func(value any, _ models.Record) Cell {
		text := models.FormatValue(value)
		if value == nil || text == "" {
			return Cell{Text: Placeholder}
		}
		variant, ok := variants[strings.ToLower(text)]
		if !ok {
			variant = "default"
		}
		return Cell{
			Text: text,
			HTML: `<span class="badge badge-` + templ.EscapeString(variant) + `">` + templ.EscapeString(text) + `</span>`,
		}
	}
}

// Date formats an RFC 3339 timestamp as dd/mm/yyyy. Unparseable values are
// shown as sent.
func Date(value any, _ models.Record) Cell {
	s := models.FormatValue(value)
	if value == nil || s == "" {
		return Cell{Text: Placeholder}
	}
	if t, ok := ParseTime(s); ok {
		return Cell{Text: t.Format(dateLayout)}
	}
	return Cell{Text: s}
}

// ParseTime accepts the timestamp shapes the content API emits.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YesNo renders booleans as a badge.
func YesNo(value any, _ models.Record) Cell {
	b, ok := value.(bool)
	if !ok {
		return Cell{Text: Placeholder}
	}
	if b {
		return Cell{Text: "Yes", HTML: `<span class="badge badge-success">Yes</span>`}
	}
	return Cell{Text: "No", HTML: `<span class="badge badge-muted">No</span>`}
}

// ListPreview shows the first n list items followed by "+k" for the rest.
func ListPreview(n int) Formatter {
	return func(value any, _ models.Record) Cell {
		items, ok := value.([]any)
		if !ok || len(items) == 0 {
			return Cell{Text: Placeholder}
		}
		shown := items
		if len(items) > n {
			shown = items[:n]
		}
		parts := make([]string, 0, len(shown)+1)
		for _, item := range shown {
			parts = append(parts, models.FormatValue(item))
		}
		if rest := len(items) - len(shown); rest > 0 {
			parts = append(parts, "+"+strconv.Itoa(rest))
		}
		return Cell{Text: strings.Join(parts, ", ")}
	}
}

// Truncate cuts long text to n runes.
func Truncate(n int) Formatter {
	return func(value any, _ models.Record) Cell {
		s := models.FormatValue(value)
		if value == nil {
			return Cell{Text: Placeholder}
		}
		r := []rune(s)
		if len(r) <= n {
			return Cell{Text: s}
		}
		return Cell{Text: string(r[:n]) + "..."}
	}
}

// Link renders the value as an external link. Unsafe schemes such as
// javascript: are replaced by templ's sanitized placeholder.
func Link(value any, _ models.Record) Cell {
	s := models.FormatValue(value)
	if value == nil || s == "" {
		return Cell{Text: Placeholder}
	}
	href := templ.EscapeString(string(templ.URL(s)))
	return Cell{Text: s, HTML: `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + templ.EscapeString(s) + `</a>`}
}
