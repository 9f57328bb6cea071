// Package placeholder locates the neofetch color markers ${c1} through
// ${c6} inside template art.
package placeholder

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Slot is the palette slot a marker refers to, 1 through 6.
type Slot uint8

const (
	MinSlot Slot = 1
	MaxSlot Slot = 6
)

// Slots lists every valid slot in order.
var Slots = []Slot{1, 2, 3, 4, 5, 6}

// Valid reports whether s is within 1..6.
func (s Slot) Valid() bool {
	return s >= MinSlot && s <= MaxSlot
}

// Token returns the marker text for s, e.g. "${c1}".
func (s Slot) Token() string {
	return fmt.Sprintf("${c%d}", s)
}

func (s Slot) String() string {
	return s.Token()
}

// Match is one marker found in a text. Start and End are byte offsets.
type Match struct {
	Slot       Slot
	Start, End int
}

// Replacements holds one replacement string per slot, indexed by slot-1.
type Replacements [MaxSlot]string

// Set assigns the replacement for slot s.
func (r *Replacements) Set(s Slot, value string) {
	if s.Valid() {
		r[s-1] = value
	}
}

// Scanner finds markers. It is immutable and safe for concurrent use.
type Scanner struct {
	re *regexp.Regexp
}

// New compiles a scanner.
func New() *Scanner {
	return &Scanner{re: regexp.MustCompile(`\$\{c([1-6])\}`)}
}

// Default returns the process wide scanner.
var Default = sync.OnceValue(New)

// FindAll returns every marker in text in order of appearance.
func (s *Scanner) FindAll(text string) []Match {
	indices := s.re.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(indices))

	for _, idx := range indices {
		matches = append(matches, Match{
			Slot:  Slot(text[idx[2]] - '0'),
			Start: idx[0],
			End:   idx[1],
		})
	}

	return matches
}

// Find returns the first marker in text.
func (s *Scanner) Find(text string) (Match, bool) {
	idx := s.re.FindStringSubmatchIndex(text)
	if idx == nil {
		return Match{}, false
	}

	return Match{Slot: Slot(text[idx[2]] - '0'), Start: idx[0], End: idx[1]}, true
}

// StripAll removes every marker. Removal repeats until no marker is left,
// since deleting one can join the text around it into a new one.
// Recoloring measures with Visible instead, which matches what ReplaceAll
// prints.
func (s *Scanner) StripAll(text string) string {
	for strings.Contains(text, "${c") && s.re.MatchString(text) {
		text = s.re.ReplaceAllLiteralString(text, "")
	}

	return text
}

// Visible removes the markers in a single pass, leaving exactly the text
// ReplaceAll prints around its replacements. Text joined into a new marker
// by the removal is kept.
func (s *Scanner) Visible(text string) string {
	return s.re.ReplaceAllLiteralString(text, "")
}

// ReplaceAll substitutes every marker with the replacement of its slot.
func (s *Scanner) ReplaceAll(text string, with Replacements) string {
	return s.re.ReplaceAllStringFunc(text, func(token string) string {
		return with[token[3]-'1']
	})
}

// ReplaceSlot substitutes only the markers of one slot.
func (s *Scanner) ReplaceSlot(text string, slot Slot, with string) string {
	return strings.ReplaceAll(text, slot.Token(), with)
}

// Slots returns the distinct slots used in text, in order of first use.
func (s *Scanner) Slots(text string) []Slot {
	var (
		seen  [MaxSlot + 1]bool
		slots []Slot
	)

	for _, m := range s.FindAll(text) {
		if !seen[m.Slot] {
			seen[m.Slot] = true
			slots = append(slots, m.Slot)
		}
	}

	return slots
}
