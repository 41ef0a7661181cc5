// internal/terminal/terminal.go
//
// Line-oriented terminal front end for the game engine.
//
// Input, one per line:
//   - letters      → the free letters of an attempt (WordLength-1 of them),
//                    or the whole word including the revealed first letter.
//   - ":new"       → abandon the round and start another.
//   - ":quit"      → stop playing.
//
// After every submission the grid and the keyboard are redrawn.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/tusmo/internal/game"
	"github.com/robalobadob/tusmo/internal/words"
)

var keyboardRows = [][]rune{
	[]rune("AZERTYUIOP"),
	[]rune("QSDFGHJKLM"),
	[]rune("WXCVBN"),
}

// Play runs rounds on eng until in is exhausted or the player quits.
func Play(in io.Reader, out io.Writer, eng *game.Engine) error {
	t := &term{out: out, eng: eng}
	t.printStart()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := words.Normalize(sc.Text())
		switch {
		case line == "":
			continue
		case line == ":QUIT":
			return nil
		case line == ":NEW":
			if _, err := eng.NewGame(); err != nil {
				return err
			}
			t.printStart()
		default:
			t.guess(line)
		}
	}
	return sc.Err()
}

type term struct {
	out io.Writer
	eng *game.Engine
}

func (t *term) printStart() {
	n := t.eng.WordLength()
	fmt.Fprintf(t.out, "New round: %c%s (%d letters, %d attempts)\n",
		t.eng.FirstLetter(), strings.Repeat("_", n-1), n, t.eng.MaxAttempts())
}

func (t *term) guess(line string) {
	if t.eng.Status().Terminal() {
		fmt.Fprintln(t.out, "The round is over, type :new to play again or :quit to leave.")
		return
	}
	letters := []rune(line)
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			fmt.Fprintln(t.out, "Letters only, please.")
			return
		}
	}
	// The whole word may be typed, revealed first letter included.
	if len(letters) == t.eng.WordLength() {
		if letters[0] != t.eng.FirstLetter() {
			fmt.Fprintf(t.out, "The word starts with %c.\n", t.eng.FirstLetter())
			return
		}
		letters = letters[1:]
	}
	// Anything but a complete attempt is refused as a whole, before any
	// letter reaches the engine.
	if len(letters) != t.eng.WordLength()-1 {
		gerr := &game.GuessError{WordLength: t.eng.WordLength(), Typed: len(letters)}
		fmt.Fprintf(t.out, "%v\n", gerr)
		return
	}

	for _, r := range letters {
		_ = t.eng.AddLetter(r)
	}
	res, err := t.eng.Submit()
	if err != nil {
		t.clearInput()
		switch {
		case errors.Is(err, game.ErrIncompleteGuess), errors.Is(err, game.ErrNotInWordList):
			fmt.Fprintf(t.out, "%v\n", err)
		default:
			log.Error().Err(err).Msg("submit")
		}
		return
	}

	t.printGrid()
	t.printKeyboard(res.Keyboard)

	switch res.Status {
	case game.StatusWon:
		ans, _ := t.eng.Answer()
		fmt.Fprintf(t.out, "Bravo! You found %s in %d attempt(s)!\n", ans, t.eng.AttemptsUsed())
	case game.StatusLost:
		ans, _ := t.eng.Answer()
		fmt.Fprintf(t.out, "Lost! The word was %s.\n", ans)
	default:
		fmt.Fprintf(t.out, "Attempt %d/%d: %c\n", t.eng.AttemptIndex()+1, t.eng.MaxAttempts(), t.eng.FirstLetter())
	}
}

// clearInput drops whatever was typed for a rejected submission so the next
// line starts a fresh attempt.
func (t *term) clearInput() {
	for t.eng.Input() != "" {
		_ = t.eng.Backspace()
	}
}

func markColors(m game.Mark) tablewriter.Colors {
	switch m {
	case game.MarkCorrect:
		return tablewriter.Colors{tablewriter.Bold, tablewriter.FgWhiteColor, tablewriter.BgRedColor}
	case game.MarkPresent:
		return tablewriter.Colors{tablewriter.Bold, tablewriter.FgBlackColor, tablewriter.BgYellowColor}
	case game.MarkAbsent:
		return tablewriter.Colors{tablewriter.FgWhiteColor, tablewriter.BgHiBlackColor}
	}
	return tablewriter.Colors{}
}

func (t *term) printGrid() {
	table := tablewriter.NewWriter(t.out)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetRowLine(true)

	for _, attempt := range t.eng.History() {
		row := make([]string, len(attempt))
		colors := make([]tablewriter.Colors, len(attempt))
		for i, tile := range attempt {
			row[i] = string(tile.Letter)
			colors[i] = markColors(tile.Mark)
		}
		table.Rich(row, colors)
	}

	// Pending row with the revealed first letter.
	if !t.eng.Status().Terminal() {
		n := t.eng.WordLength()
		row := make([]string, n)
		colors := make([]tablewriter.Colors, n)
		row[0] = string(t.eng.FirstLetter())
		colors[0] = markColors(game.MarkCorrect)
		for i := 1; i < n; i++ {
			row[i] = "."
			colors[i] = tablewriter.Colors{}
		}
		table.Rich(row, colors)
	}
	table.Render()
}

func (t *term) printKeyboard(k game.KeyboardState) {
	table := tablewriter.NewWriter(t.out)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	width := len(keyboardRows[0])
	for _, keys := range keyboardRows {
		row := make([]string, width)
		colors := make([]tablewriter.Colors, width)
		for i := range row {
			colors[i] = tablewriter.Colors{}
			if i < len(keys) {
				row[i] = string(keys[i])
				colors[i] = markColors(k[keys[i]])
			}
		}
		table.Rich(row, colors)
	}
	table.Render()
}
