package core

import "strings"

const (
	// BackgroundMarker detaches a command from the prompt loop when it is
	// the last token on a line.
	BackgroundMarker = "&"

	// PipeToken separates the two stages of a pipeline.
	PipeToken = "|"
)

// Tokenize splits line into whitespace-delimited tokens, keeping at most max
// of them. Tokens beyond the cap are dropped rather than reported; the cap
// bounds argv, it does not validate it.
//
// If the last kept token is the background marker it is stripped and the
// second return value is true.
func Tokenize(line string, max int) ([]string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	if max > 0 && len(fields) > max {
		fields = fields[:max]
	}
	if fields[len(fields)-1] == BackgroundMarker {
		return fields[:len(fields)-1], true
	}
	return fields, false
}
