// assets/embed.go
//
// Embedded default word list, used when no word file is configured.

package assets

import (
	_ "embed"
	"strings"
)

//go:embed answers.txt
var answers string

// AnswersLines returns the raw lines of the embedded answers list with
// comment lines dropped. Normalization is left to the words package.
func AnswersLines() []string {
	var out []string
	for _, line := range strings.Split(answers, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
