package advisor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tiles/internal/board"
)

// ErrUnparsable is returned when the model's answer is not a direction.
var ErrUnparsable = errors.New("advisor: cannot parse AI response")

// ParseAnswer turns a model answer into a direction. Surrounding whitespace,
// quotes and trailing punctuation are ignored and case does not matter.
func ParseAnswer(text string) (board.Direction, error) {
	word := strings.TrimSpace(text)
	word = strings.Trim(word, "\"'`*")
	word = strings.TrimRight(word, ".!,;: ")

	dir, err := board.ParseDirection(word)
	if err != nil {
		return board.Left, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}
	return dir, nil
}
