// Package keypad maps the digits of a numeric keypad onto board positions.
//
// The layout follows a physical keypad, not reading order: 7 8 9 is the top
// row and 1 2 3 the bottom row.
package keypad

import (
	"ctchen222/console-tic-tac-toe/internal/game"
	"strconv"
	"strings"
)

var positions = map[int]game.Position{
	1: {Row: 2, Column: 0}, // bottom left
	2: {Row: 2, Column: 1},
	3: {Row: 2, Column: 2},
	4: {Row: 1, Column: 0},
	5: {Row: 1, Column: 1},
	6: {Row: 1, Column: 2},
	7: {Row: 0, Column: 0},
	8: {Row: 0, Column: 1},
	9: {Row: 0, Column: 2}, // top right
}

// Lookup parses a typed cell number and returns its position. Surrounding
// whitespace is ignored; anything that is not an integer from 1 to 9 yields
// false.
func Lookup(input string) (game.Position, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return game.Position{}, false
	}
	p, ok := positions[n]
	return p, ok
}

// Digit is the reverse of Lookup.
func Digit(p game.Position) (int, bool) {
	for d, pos := range positions {
		if pos == p {
			return d, true
		}
	}
	return 0, false
}
