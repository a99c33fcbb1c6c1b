package notation

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/dnchess-go/internal/errors"
)

// results are game termination markers that carry no move.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"½-½":     true,
	"*":       true,
}

// suffixWords are written after a move, separated by a space, and belong
// to the move before them.
var suffixWords = map[string]bool{
	"CH": true, "CHECK": true, "DBL": true, "MATE": true,
	"E.P.": true, "EP": true, "E.P": true,
	"+": true, "++": true, "#": true,
	"!": true, "?": true, "!!": true, "??": true, "!?": true, "?!": true,
}

// castleSides follow the word "Castles".
var castleSides = map[string]bool{"K": true, "KR": true, "Q": true, "QR": true}

// moveTextLexer splits a game score into words, dropping comments.
type moveTextLexer struct {
	reader    *bufio.Reader
	line      string
	pos       int
	lineNum   uint
	inComment bool
	eof       bool
}

// SplitMoveText reads a game score such as "1. P-K4 P-K4 2. N-KB3 N-QB3"
// and returns the move tokens in order. Move numbers, results, tag
// lines, {brace} comments and ; comments are skipped. Claims written as
// separate words ("P-K4 ch", "N-B3 dbl ch") are joined to their move.
func SplitMoveText(r io.Reader) ([]string, error) {
	l := &moveTextLexer{reader: bufio.NewReader(r)}

	var moves []string
	for {
		word, err := l.nextWord()
		if err != nil {
			return nil, err
		}
		if word == "" {
			break
		}

		word = stripMoveNumber(word)
		if word == "" || results[word] {
			continue
		}

		upper := strings.ToUpper(word)
		if n := len(moves); n > 0 {
			prev := strings.ToUpper(moves[n-1])
			if suffixWords[upper] || (castleSides[upper] && prev == "CASTLES") {
				moves[n-1] += " " + word
				continue
			}
		}
		moves = append(moves, word)
	}

	if l.inComment {
		return nil, fmt.Errorf("line %d: unterminated comment: %w", l.lineNum, errors.ErrParse)
	}
	return moves, nil
}

// readLine reads the next line from input.
func (l *moveTextLexer) readLine() (bool, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	if err == io.EOF {
		l.eof = true
		if len(line) == 0 {
			return false, nil
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++

	// Tag pair lines carry no moves.
	if !l.inComment && strings.HasPrefix(strings.TrimSpace(line), "[") {
		l.line = ""
	}
	return true, nil
}

// currentChar returns the current character or 0 if at end of line.
func (l *moveTextLexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *moveTextLexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// nextWord returns the next whitespace-delimited word outside comments,
// or "" at the end of input.
func (l *moveTextLexer) nextWord() (string, error) {
	for {
		if l.pos >= len(l.line) {
			if l.eof {
				return "", nil
			}
			ok, err := l.readLine()
			if err != nil {
				return "", err
			}
			if !ok {
				return "", nil
			}
			continue
		}

		ch := l.currentChar()
		switch {
		case l.inComment:
			if ch == '}' {
				l.inComment = false
			}
			l.advance()
		case ch == '{':
			l.inComment = true
			l.advance()
		case ch == ';':
			// Comment to end of line
			l.pos = len(l.line)
		case isSpace(ch):
			l.advance()
		default:
			start := l.pos
			for l.pos < len(l.line) {
				c := l.currentChar()
				if isSpace(c) || c == '{' || c == ';' {
					break
				}
				l.advance()
			}
			return l.line[start:l.pos], nil
		}
	}
}

// stripMoveNumber removes a leading move number such as "12." or "3...".
// Castling written with zeros ("0-0") is left alone.
func stripMoveNumber(word string) string {
	i := 0
	for i < len(word) && word[i] >= '0' && word[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(word) || word[i] != '.' {
		return word
	}
	for i < len(word) && word[i] == '.' {
		i++
	}
	return word[i:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
