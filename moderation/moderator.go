// Package moderation masks blocklisted words in outbound messages.
// The classroom context calls for masking rather than rejection: the
// message still goes through, with the offending spans starred out.
package moderation

import (
	"bufio"
	"embed"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

//go:embed blocklist/*.txt
var blocklistFS embed.FS

type Moderator struct {
	machine  *goahocorasick.Machine
	maskRune rune
}

// NewModerator builds the Aho-Corasick automaton over the lowercased
// word list. Matching is case-insensitive.
func NewModerator(words []string, maskRune rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		patterns = append(patterns, []rune(w))
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, maskRune: maskRune}, nil
}

// Censor replaces every blocklisted span with the mask rune and reports
// which words matched. Text without matches is returned untouched.
func (m *Moderator) Censor(text string) (string, []string) {
	runes := []rune(text)
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}

	terms := m.machine.MultiPatternSearch(lowered, false)
	if len(terms) == 0 {
		return text, nil
	}

	var found []string
	for _, term := range terms {
		found = append(found, string(term.Word))
		for i := term.Pos; i < term.Pos+len(term.Word) && i < len(runes); i++ {
			runes[i] = m.maskRune
		}
	}
	return string(runes), found
}

// DefaultWords loads the embedded blocklist, one word or phrase per
// line, '#' lines ignored.
func DefaultWords() ([]string, error) {
	entries, err := blocklistFS.ReadDir("blocklist")
	if err != nil {
		return nil, err
	}

	var words []string
	for _, entry := range entries {
		file, err := blocklistFS.Open("blocklist/" + entry.Name())
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			words = append(words, strings.ToLower(line))
		}
		if err := scanner.Err(); err != nil {
			_ = file.Close()
			return nil, err
		}
		_ = file.Close()
	}
	return lo.Uniq(words), nil
}
