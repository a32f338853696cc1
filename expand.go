package suggest

import "strings"

// QuestionWords are prepended to the query when ExpandOptions.Questions is set.
var QuestionWords = []string{"what", "how", "why", "when", "where", "who", "which", "can", "does", "is"}

// ExpandOptions controls how a query is fanned out into derived queries.
type ExpandOptions struct {
	// Alphabet appends "<query> a" through "<query> z".
	Alphabet bool

	// Questions appends "<word> <query>" for each of QuestionWords.
	Questions bool

	// Prefixes is a comma-separated list; each trimmed, non-empty entry
	// appends "<prefix> <query>".
	Prefixes string
}

// IsZero reports whether no expansion is requested.
func (o ExpandOptions) IsZero() bool {
	return !o.Alphabet && !o.Questions && strings.TrimSpace(o.Prefixes) == ""
}

// Expand returns the derived queries for query. The original query is always
// first. Duplicate derived queries are kept.
func Expand(query string, opts ExpandOptions) []string {
	queries := []string{query}

	if opts.Alphabet {
		for c := 'a'; c <= 'z'; c++ {
			queries = append(queries, query+" "+string(c))
		}
	}

	if opts.Questions {
		for _, word := range QuestionWords {
			queries = append(queries, word+" "+query)
		}
	}

	if opts.Prefixes != "" {
		for _, prefix := range strings.Split(opts.Prefixes, ",") {
			prefix = strings.TrimSpace(prefix)
			if prefix == "" {
				continue
			}
			queries = append(queries, prefix+" "+query)
		}
	}

	return queries
}

// Dedup removes later duplicates from values, keeping the first occurrence
// of each string in its original position. Comparison is exact.
func Dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
