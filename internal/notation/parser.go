package notation

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/errors"
)

// fileNames maps descriptive file names to the files they denote. Files
// are named after the pieces that start on them and are the same for
// both colours. The abbreviated names leave a choice of two files.
var fileNames = map[string][]chess.Col{
	"QR": {'a'},
	"QN": {'b'},
	"QB": {'c'},
	"Q":  {'d'},
	"K":  {'e'},
	"KB": {'f'},
	"KN": {'g'},
	"KR": {'h'},
	"R":  {'a', 'h'},
	"N":  {'b', 'g'},
	"B":  {'c', 'f'},
}

// sideFiles maps a side qualifier (the Q in QR, the K in KN) to the
// half of the board it names.
var sideFiles = map[string][]chess.Col{
	"Q": {'a', 'b', 'c', 'd'},
	"K": {'e', 'f', 'g', 'h'},
}

// claimSuffixes are stripped from the end of a token, longest first.
// Whitespace has already been removed, so "dbl ch" appears as "DBLCH".
var claimSuffixes = []struct {
	text  string
	apply func(*Intent)
}{
	{"DBL.CH", claimCheck},
	{"DBLCH", claimCheck},
	{"CHECK", claimCheck},
	{"MATE", claimMate},
	{"E.P.", claimEnPassant},
	{"E.P", claimEnPassant},
	{"EP", claimEnPassant},
	{"CH", claimCheck},
	{"++", claimMate},
	{"+", claimCheck},
	{"#", claimMate},
}

func claimCheck(in *Intent)     { in.ClaimedCheck = true }
func claimMate(in *Intent)      { in.ClaimedMate = true }
func claimEnPassant(in *Intent) { in.EnPassant = true }

// castles maps the accepted castling spellings to the castle they name.
var castles = map[string]SpecialMove{
	"O-O":       CastleKingside,
	"0-0":       CastleKingside,
	"CASTLES":   CastleKingside,
	"CASTLESK":  CastleKingside,
	"CASTLESKR": CastleKingside,
	"O-O-O":     CastleQueenside,
	"0-0-0":     CastleQueenside,
	"CASTLESQ":  CastleQueenside,
	"CASTLESQR": CastleQueenside,
}

// Parse converts a Descriptive Notation token into an Intent for the
// given moving colour. It never consults a board: every failure is a
// *errors.ParseError wrapping errors.ErrParse.
func Parse(text string, moving chess.Colour) (Intent, error) {
	p := newParser(text, moving)
	if err := p.parse(); err != nil {
		return Intent{}, err
	}
	return p.intent, nil
}

// parser scans an upper-cased copy of the token with whitespace removed,
// remembering the column of each byte in the original text.
type parser struct {
	input  string
	body   []byte
	cols   []int
	pos    int
	moving chess.Colour
	intent Intent
}

func newParser(text string, moving chess.Colour) *parser {
	p := &parser{
		input:  strings.TrimSpace(text),
		moving: moving,
	}
	p.intent.Text = p.input
	p.intent.Piece = chess.Empty
	p.intent.CapturedPiece = chess.Empty
	p.intent.Promotion = chess.Empty
	for i := 0; i < len(p.input); i++ {
		c := p.input[i]
		if unicode.IsSpace(rune(c)) {
			continue
		}
		p.body = append(p.body, byte(unicode.ToUpper(rune(c))))
		p.cols = append(p.cols, i+1)
	}
	return p
}

func (p *parser) parse() error {
	p.stripClaims()
	if len(p.body) == 0 {
		return p.errorAt(span{0, -1}, errors.UnrecognizedToken)
	}

	if special, ok := castles[string(p.body)]; ok {
		p.intent.Special = special
		p.intent.Piece = chess.King
		return nil
	}

	sep := bytes.IndexAny(p.body, "-X:")
	if sep < 0 {
		return p.parsePawnSquare()
	}
	if sep == 0 {
		return p.errorAt(span{0, 1}, errors.UnrecognizedToken)
	}

	if err := p.parseMover(sep); err != nil {
		return err
	}
	p.intent.Capture = p.body[sep] != '-'
	p.pos = sep + 1

	if p.intent.Capture {
		if err := p.parseCaptureTarget(); err != nil {
			return err
		}
	} else {
		files, rank, err := p.parseSquare(true)
		if err != nil {
			return err
		}
		p.intent.DestFiles, p.intent.DestRank = files, rank
	}

	if err := p.parsePromotion(); err != nil {
		return err
	}
	return p.expectEnd()
}

// stripClaims removes trailing annotations and check, mate and en
// passant claims, recording the claims on the intent.
func (p *parser) stripClaims() {
	for {
		n := len(p.body)
		for n > 0 && (p.body[n-1] == '!' || p.body[n-1] == '?') {
			n--
		}
		p.truncate(n)

		matched := false
		for _, claim := range claimSuffixes {
			if bytes.HasSuffix(p.body, []byte(claim.text)) {
				claim.apply(&p.intent)
				p.truncate(len(p.body) - len(claim.text))
				matched = true
				break
			}
		}
		if !matched {
			return
		}
	}
}

func (p *parser) truncate(n int) {
	p.body = p.body[:n]
	p.cols = p.cols[:n]
}

// parsePawnSquare handles the bare-square pawn move, e.g. "K4" or "QB4".
func (p *parser) parsePawnSquare() error {
	p.intent.Piece = chess.Pawn
	files, rank, err := p.parseSquare(true)
	if err != nil {
		return err
	}
	p.intent.DestFiles, p.intent.DestRank = files, rank
	if err := p.parsePromotion(); err != nil {
		return err
	}
	return p.expectEnd()
}

// parseMover parses everything before the separator: the piece
// designator with its qualifier and an optional origin hint.
func (p *parser) parseMover(sep int) error {
	end := sep
	hintStart := bytes.IndexAny(p.body[:sep], "(/")
	if hintStart >= 0 {
		end = hintStart
	}
	if end == 0 {
		return p.errorAt(span{0, sep}, errors.UnrecognizedToken)
	}

	piece, files, err := p.parseDesignator(span{0, end})
	if err != nil {
		return err
	}
	p.intent.Piece = piece
	p.intent.OriginFiles = files

	if hintStart < 0 {
		return nil
	}
	hint := span{hintStart + 1, sep}
	if p.body[hintStart] == '(' {
		if p.body[sep-1] != ')' {
			return p.errorAt(span{hintStart, sep}, errors.UnrecognizedToken)
		}
		hint.end = sep - 1
	}
	return p.parseOriginHint(hint)
}

// parseDesignator parses a piece letter with an optional qualifier. For
// pawns the qualifier is a file name (KBP, BP); for other pieces it is
// a side (QR, KN).
func (p *parser) parseDesignator(s span) (chess.Piece, []chess.Col, error) {
	word := string(p.body[s.start:s.end])
	if len(word) == 0 || len(word) > 3 || !isLetters(word) {
		return chess.Empty, nil, p.errorAt(s, errors.UnrecognizedToken)
	}
	piece := chess.PieceFromLetter(word[len(word)-1])
	if piece == chess.Empty {
		return chess.Empty, nil, p.errorAt(s, errors.UnrecognizedToken)
	}

	qualifier := word[:len(word)-1]
	if qualifier == "" {
		return piece, nil, nil
	}
	if piece == chess.Pawn {
		files, ok := fileNames[qualifier]
		if !ok {
			return chess.Empty, nil, p.errorAt(s, errors.InvalidFileOrRank)
		}
		return piece, files, nil
	}
	files, ok := sideFiles[qualifier]
	if !ok || piece == chess.Queen || piece == chess.King {
		return chess.Empty, nil, p.errorAt(s, errors.UnrecognizedToken)
	}
	return piece, files, nil
}

// parseOriginHint parses the text of R(1), N(KB3) or R/QR1: a file name,
// a rank, or both.
func (p *parser) parseOriginHint(s span) error {
	word := string(p.body[s.start:s.end])
	letters := strings.TrimRight(word, "0123456789")
	digits := word[len(letters):]
	if word == "" || !isLetters(letters) || len(digits) > 1 {
		return p.errorAt(s, errors.InvalidFileOrRank)
	}

	if letters != "" {
		files, ok := fileNames[letters]
		if !ok {
			return p.errorAt(s, errors.InvalidFileOrRank)
		}
		p.intent.OriginFiles = files
	}
	if digits != "" {
		rank, ok := p.rank(digits[0])
		if !ok {
			return p.errorAt(s, errors.InvalidFileOrRank)
		}
		p.intent.OriginRank = rank
	}
	return nil
}

// parseCaptureTarget parses what follows x: either a destination square
// (PxQ5) or a captured piece with an optional qualifier and location
// (PxP, PxKP, QxP/KB7, QxP(B7)).
func (p *parser) parseCaptureTarget() error {
	if p.looksLikeSquare() {
		files, rank, err := p.parseSquare(true)
		if err != nil {
			return err
		}
		p.intent.DestFiles, p.intent.DestRank = files, rank
		return nil
	}

	start := p.pos
	for p.pos < len(p.body) && isLetter(p.body[p.pos]) {
		p.pos++
	}
	piece, files, err := p.parseDesignator(span{start, p.pos})
	if err != nil {
		return err
	}
	p.intent.CapturedPiece = piece
	p.intent.CapturedFiles = files

	// A location names the captured piece's square. A lone piece letter
	// after / or ( is a promotion and is left for parsePromotion.
	if p.pos+1 >= len(p.body) || (p.body[p.pos] != '/' && p.body[p.pos] != '(') {
		return nil
	}
	open := p.body[p.pos]
	closeAt := len(p.body)
	if open == '(' {
		closeAt = bytes.IndexByte(p.body[p.pos:], ')')
		if closeAt < 0 {
			return p.errorAt(span{p.pos, len(p.body)}, errors.UnrecognizedToken)
		}
		closeAt += p.pos
	}
	if !bytes.ContainsAny(p.body[p.pos:closeAt], "0123456789") {
		return nil
	}

	p.pos++
	files, rank, err := p.parseSquare(false)
	if err != nil {
		return err
	}
	p.intent.DestFiles, p.intent.DestRank = files, rank
	if open == '(' {
		if p.pos >= len(p.body) || p.body[p.pos] != ')' {
			return p.errorAt(span{p.pos, len(p.body)}, errors.UnrecognizedToken)
		}
		p.pos++
	}
	return nil
}

// looksLikeSquare reports whether the text at the cursor is a run of
// letters followed by a digit.
func (p *parser) looksLikeSquare() bool {
	i := p.pos
	for i < len(p.body) && isLetter(p.body[i]) {
		i++
	}
	return i > p.pos && i < len(p.body) && isDigit(p.body[i])
}

// parseSquare parses a file name followed by a perspective rank and
// returns the candidate files and the absolute rank. If requireFile is
// false a bare rank is accepted.
func (p *parser) parseSquare(requireFile bool) ([]chess.Col, chess.Rank, error) {
	start := p.pos
	for p.pos < len(p.body) && isLetter(p.body[p.pos]) {
		p.pos++
	}
	name := string(p.body[start:p.pos])
	files, ok := fileNames[name]
	if !ok && (name != "" || requireFile) {
		return nil, 0, p.errorAt(span{start, p.pos}, errors.InvalidFileOrRank)
	}

	if p.pos >= len(p.body) || !isDigit(p.body[p.pos]) {
		return nil, 0, p.errorAt(span{start, p.pos}, errors.InvalidFileOrRank)
	}
	rank, ok := p.rank(p.body[p.pos])
	if !ok {
		return nil, 0, p.errorAt(span{p.pos, p.pos + 1}, errors.InvalidFileOrRank)
	}
	p.pos++
	return files, rank, nil
}

// parsePromotion parses (Q), =Q or /Q at the cursor, if present.
func (p *parser) parsePromotion() error {
	if p.pos >= len(p.body) {
		return nil
	}
	start := p.pos
	switch p.body[p.pos] {
	case '(':
		if p.pos+2 >= len(p.body) || p.body[p.pos+2] != ')' {
			return p.errorAt(span{start, len(p.body)}, errors.MalformedPromotion)
		}
		p.pos += 3
		return p.setPromotion(p.body[start+1], span{start, p.pos})
	case '=', '/':
		if p.pos+1 >= len(p.body) {
			return p.errorAt(span{start, len(p.body)}, errors.MalformedPromotion)
		}
		p.pos += 2
		return p.setPromotion(p.body[start+1], span{start, p.pos})
	}
	return nil
}

func (p *parser) setPromotion(letter byte, s span) error {
	switch piece := chess.PieceFromLetter(letter); piece {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		p.intent.Promotion = piece
		return nil
	default:
		return p.errorAt(s, errors.MalformedPromotion)
	}
}

func (p *parser) expectEnd() error {
	if p.pos < len(p.body) {
		return p.errorAt(span{p.pos, len(p.body)}, errors.UnrecognizedToken)
	}
	return nil
}

// rank converts a perspective rank digit to an absolute rank.
func (p *parser) rank(digit byte) (chess.Rank, bool) {
	r := chess.Rank(digit)
	if chess.RankIndex(r) < 0 {
		return 0, false
	}
	return chess.RelativeRank(p.moving, r), true
}

// span is a half-open range of body indices.
type span struct {
	start, end int
}

// errorAt builds a ParseError for the body bytes in s, reporting the
// original text they came from and its column. An end of -1 runs to the
// end of the body.
func (p *parser) errorAt(s span, kind errors.ParseErrorKind) error {
	if s.end < 0 || s.end > len(p.body) {
		s.end = len(p.body)
	}
	if s.end <= s.start {
		s.end = s.start + 1
	}

	err := &errors.ParseError{Kind: kind, Input: p.input}
	switch {
	case s.start < len(p.body):
		last := min(s.end, len(p.body)) - 1
		err.Token = p.input[p.cols[s.start]-1 : p.cols[last]]
		err.Column = p.cols[s.start]
	case len(p.cols) > 0:
		err.Column = p.cols[len(p.cols)-1] + 1
	default:
		err.Token = p.input
		err.Column = 1
	}
	return err
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}
