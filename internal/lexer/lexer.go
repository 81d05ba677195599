package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

type TokenType string

const (
	TokenTypeCloseParen TokenType = "CLOSE_PAREN"
	TokenTypeName       TokenType = "NAME"
	TokenTypeNumber     TokenType = "NUMBER"
	TokenTypeOpenParen  TokenType = "OPEN_PAREN"
	TokenTypeString     TokenType = "STRING"
)

var (
	ErrRuneInvalid           = errors.New("decode rune: invalid rune")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnterminatedString    = errors.New("unterminated string")
)

type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type Position struct {
	Start Point
	End   Point
}

type Token struct {
	Type     TokenType
	RawValue string
	Value    string
	Position Position
}

type Lexer struct {
	input    []byte
	point    Point
	position int
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    []byte(input),
		point:    Point{Line: 1, Column: 1},
		position: 0,
	}
}

// Tokenize reads input to the end and returns every token in source order.
// The first lexing error aborts the scan.
func Tokenize(input string) ([]Token, error) {
	lex := NewLexer(input)

	tokens := make([]Token, 0)
	for {
		token, err := lex.ReadToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, *token)
	}
}

func (l *Lexer) ReadToken() (*Token, error) {
	if err := l.advanceWhitespace(); err != nil {
		return nil, err
	}

	r, _, err := l.peek()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	if isParenthesis(r) {
		return l.readParenthesis()
	}

	if isDigit(r) {
		return l.readNumber()
	}

	if isStringOpeningCharacter(r) {
		return l.readString()
	}

	if isLetter(r) {
		return l.readName()
	}

	return nil, fmt.Errorf("%w %q at %s", ErrUnrecognizedCharacter, r, l.point)
}

func (l *Lexer) advanceWhitespace() error {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch r {
		case ' ', '\t', '\r':
			// position and column updated inside read call
			_, _ = l.read()

		case '\n':
			_, _ = l.read()

			l.point.Line++
			l.point.Column = 1

		default:
			return nil
		}
	}
}

func (l *Lexer) readName() (*Token, error) {
	startPoint := l.point

	r, err := l.read()
	invariant(err != nil, "readName: unexpected read() error when consuming first character")
	invariant(!isLetter(r), "readName: first character is not valid")

	value := []rune{r}

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !isLetter(r) {
			break
		}

		_, err = l.read()
		invariant(err != nil, "readName: unexpected read() error after peek()")

		value = append(value, r)
	}

	endPoint := l.point

	token := Token{
		Type: TokenTypeName,
		Position: Position{
			Start: startPoint,
			End:   endPoint,
		},
		RawValue: string(value),
		Value:    string(value),
	}

	return &token, nil
}

func (l *Lexer) readNumber() (*Token, error) {
	startPoint := l.point
	startPos := l.position

	value := make([]rune, 0, 1)

	// read first rune, we know it belongs to the number
	r, err := l.read()
	invariant(err != nil, "readNumber: unexpected read() error when consuming first character")

	if isDigit(r) {
		value = append(value, r)
	}

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			break
		}

		if !isDigit(r) {
			break
		}

		_, err = l.read()
		invariant(err != nil, "readNumber: unexpected read() error after peek()")

		value = append(value, r)
	}

	endPoint := l.point
	endPos := l.position

	token := Token{
		Type: TokenTypeNumber,
		Position: Position{
			Start: startPoint,
			End:   endPoint,
		},
		RawValue: string(l.input[startPos:endPos]),
		Value:    string(value),
	}

	return &token, nil
}

func (l *Lexer) readParenthesis() (*Token, error) {
	startPoint := l.point

	r, err := l.read()
	invariant(err != nil, "readParenthesis: unexpected read() error when consuming first character")
	invariant(!isParenthesis(r), "readParenthesis: first character is not valid")

	endPoint := l.point

	tokenType := TokenTypeOpenParen
	if r == ')' {
		tokenType = TokenTypeCloseParen
	}

	token := Token{
		Type: tokenType,
		Position: Position{
			Start: startPoint,
			End:   endPoint,
		},
		RawValue: string(r),
		Value:    string(r),
	}

	return &token, nil
}

func (l *Lexer) readString() (*Token, error) {
	startPoint := l.point
	startPos := l.position

	// discard the opening quote
	r, err := l.read()
	invariant(err != nil, "readString: unexpected read() error when consuming first character")
	invariant(!isStringOpeningCharacter(r), "readString: first character is not valid")

	value := []rune{}

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: string opened at %s", ErrUnterminatedString, startPoint)
		}
		if err != nil {
			return nil, err
		}

		// no escape sequences, a quote always closes the string
		if r == '"' {
			_, err := l.read()
			invariant(err != nil, "readString: unexpected read() error after peek()")

			break
		}

		_, err = l.read()
		invariant(err != nil, "readString: unexpected read() error after peek()")

		value = append(value, r)
	}

	endPoint := l.point
	endPos := l.position

	token := Token{
		Type: TokenTypeString,
		Position: Position{
			Start: startPoint,
			End:   endPoint,
		},
		RawValue: string(l.input[startPos:endPos]),
		Value:    string(value),
	}

	return &token, nil
}

func (l *Lexer) peek() (rune, int, error) {
	if l.position >= len(l.input) {
		return 0, 0, io.EOF
	}

	r, size := utf8.DecodeRune(l.input[l.position:])
	if r == utf8.RuneError {
		invariant(size == 0, "peek() called on an empty slice")

		return 0, 0, ErrRuneInvalid
	}

	return r, size, nil
}

func (l *Lexer) read() (rune, error) {
	r, size, err := l.peek()
	if err != nil {
		return 0, err
	}

	l.position += size
	l.point.Column += size

	return r, nil
}

func isDigit(r rune) bool {
	return (r >= '0' && r <= '9')
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isParenthesis(r rune) bool {
	return r == '(' || r == ')'
}

func isStringOpeningCharacter(r rune) bool {
	return r == '"'
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
