package preset

import (
	"fmt"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// UnknownError is returned for a name no preset answers to.
type UnknownError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	msg := fmt.Sprintf("unknown preset %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

// Suggest returns up to limit preset names close to query. Fuzzy
// subsequence matches come first, the nearest names by edit distance fill
// the rest.
func Suggest(query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	names := Names()

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	suggestions := lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})

	byDistance := lo.Without(names, suggestions...)
	sort.SliceStable(byDistance, func(i, j int) bool {
		return levenshtein.Distance(query, byDistance[i]) < levenshtein.Distance(query, byDistance[j])
	})

	suggestions = append(suggestions, byDistance...)
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}
