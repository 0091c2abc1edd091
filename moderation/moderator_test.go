package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Masks_Blocklisted_Words(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot", "shut up"}, '*')
	req.NoError(err)

	// When a message carries a blocklisted word
	censored, found := moderator.Censor("you are an idiot sometimes")

	// Then only the offending span is starred out
	req.Equal("you are an ***** sometimes", censored)
	req.Equal([]string{"idiot"}, found)
}

func TestModerator_Matching_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	// When the word hides behind mixed case
	censored, found := moderator.Censor("IdIoT")

	// Then it is still masked
	req.Equal("*****", censored)
	req.Len(found, 1)
}

func TestModerator_Masks_Phrases(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"shut up"}, '#')
	req.NoError(err)

	// When a multi-word phrase matches
	censored, found := moderator.Censor("please shut up now")

	// Then the whole span including the space is replaced
	req.Equal("please ####### now", censored)
	req.Equal([]string{"shut up"}, found)
}

func TestModerator_Leaves_Clean_Text_Untouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot"}, '*')
	req.NoError(err)

	// When nothing matches
	text := "great work on the assignment"
	censored, found := moderator.Censor(text)

	// Then the text comes back as-is
	req.Equal(text, censored)
	req.Empty(found)
}

func TestDefaultWords_Loads_The_Embedded_Blocklist(t *testing.T) {
	req := require.New(t)

	// When the embedded blocklist is loaded
	words, err := DefaultWords()

	// Then it is non-empty, lowercased and comment-free
	req.NoError(err)
	req.NotEmpty(words)
	for _, w := range words {
		req.Equal(strings.ToLower(w), w)
		req.False(strings.HasPrefix(w, "#"))
	}

	// And it builds a working moderator
	moderator, err := NewModerator(words, '*')
	req.NoError(err)
	censored, found := moderator.Censor("what an idiot")
	req.NotEqual("what an idiot", censored)
	req.NotEmpty(found)
}
