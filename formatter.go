package suggest

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Format identifies an output representation for a suggestion list.
type Format string

// Format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat returns the Format with the given name.
// Returns EINVALID for unknown names.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", Errorf(EINVALID, "unknown format %q", name)
}

// FormatSuggestions renders suggestions in the given format.
//
// text joins entries with newlines. json is a 2-space indented array.
// csv starts with a "suggestion" header line and quotes entries that
// contain a comma or a double quote.
func FormatSuggestions(suggestions []string, format Format) (string, error) {
	switch format {
	case FormatText:
		return strings.Join(suggestions, "\n"), nil
	case FormatJSON:
		return formatJSON(suggestions)
	case FormatCSV:
		return formatCSV(suggestions), nil
	}
	return "", Errorf(EINVALID, "unknown format %q", format)
}

func formatJSON(suggestions []string) (string, error) {
	if suggestions == nil {
		suggestions = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(suggestions); err != nil {
		return "", Errorf(EINTERNAL, "encode suggestions: %v", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatCSV(suggestions []string) string {
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, csvField(s))
	}
	return "suggestion\n" + strings.Join(lines, "\n")
}

func csvField(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
