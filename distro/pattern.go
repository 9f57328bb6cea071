package distro

import (
	"fmt"
	"strings"
)

type matcher func(name string) bool

// parsePatterns compiles a "|" separated list of case patterns. Names are
// expected lowercase and NFC normalized.
func parsePatterns(patterns string) ([]matcher, error) {
	var matchers []matcher

	for _, p := range strings.Split(patterns, "|") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		m, err := parsePattern(p)
		if err != nil {
			return nil, err
		}

		matchers = append(matchers, m)
	}

	return matchers, nil
}

func parsePattern(p string) (matcher, error) {
	stripped := normalizeName(strings.Trim(p, `*'"`))

	if strings.ContainsAny(stripped, `*"`) {
		prefix, suffix, ok := strings.Cut(stripped, `"*"`)
		if !ok {
			return nil, fmt.Errorf("cannot parse distro pattern %q", p)
		}

		return func(name string) bool {
			return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
		}, nil
	}

	leading, trailing := strings.HasPrefix(p, "*"), strings.HasSuffix(p, "*")

	switch {
	case leading && trailing:
		return func(name string) bool {
			return strings.HasPrefix(name, stripped) || strings.HasSuffix(name, stripped)
		}, nil
	case trailing:
		return func(name string) bool { return strings.HasPrefix(name, stripped) }, nil
	case leading:
		return func(name string) bool { return strings.HasSuffix(name, stripped) }, nil
	default:
		return func(name string) bool { return name == stripped }, nil
	}
}
