// Package jsonrepair normalizes and repairs the near-JSON text that
// generative providers return when instructed to "respond with JSON only".
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var fenceOpen = regexp.MustCompile("^```[a-zA-Z]*[ \t]*\n?")

// StripFences removes a leading and trailing markdown code fence from the
// text. Applying it to already-clean JSON is a no-op.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = fenceOpen.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Parse converts a raw provider response into a parsed JSON value. Well-formed
// output (possibly fenced) takes the fast path; otherwise a tolerant repair
// pass runs before re-parsing. Unrecoverable text returns an error, never a
// partial value.
func Parse(raw string) (interface{}, error) {
	var v interface{}
	if err := ParseInto(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseInto behaves like Parse but decodes into the supplied destination
func ParseInto(raw string, out interface{}) error {
	cleaned := StripFences(raw)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	repaired, err := Repair(cleaned)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(repaired), out)
}

// Repair rewrites near-JSON text into strict JSON. It tolerates trailing
// commas, missing commas between elements, unquoted object keys,
// single-quoted strings and line/block comments. Structural damage such as
// unbalanced braces is an error.
func Repair(input string) (string, error) {
	r := &repairer{src: []rune(input)}
	r.skipNoise()
	if r.pos >= len(r.src) {
		return "", errors.New("empty input")
	}
	if err := r.value(); err != nil {
		return "", err
	}
	r.skipNoise()
	if r.pos < len(r.src) {
		return "", fmt.Errorf("unexpected content after JSON value at offset %d", r.pos)
	}
	return r.out.String(), nil
}

type repairer struct {
	src []rune
	pos int
	out strings.Builder
}

func (r *repairer) peek() rune {
	return r.src[r.pos]
}

func (r *repairer) eof() bool {
	return r.pos >= len(r.src)
}

// skipNoise consumes whitespace and line/block comments
func (r *repairer) skipNoise() {
	for !r.eof() {
		c := r.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == '/' && r.pos+1 < len(r.src) && r.src[r.pos+1] == '/':
			for !r.eof() && r.peek() != '\n' {
				r.pos++
			}
		case c == '/' && r.pos+1 < len(r.src) && r.src[r.pos+1] == '*':
			r.pos += 2
			for r.pos+1 < len(r.src) && !(r.src[r.pos] == '*' && r.src[r.pos+1] == '/') {
				r.pos++
			}
			if r.pos+1 < len(r.src) {
				r.pos += 2
			} else {
				r.pos = len(r.src)
			}
		default:
			return
		}
	}
}

func (r *repairer) value() error {
	if r.eof() {
		return errors.New("unexpected end of input, expected a value")
	}
	switch c := r.peek(); c {
	case '{':
		return r.object()
	case '[':
		return r.array()
	case '"', '\'':
		return r.stringValue(c)
	default:
		return r.literal()
	}
}

func (r *repairer) object() error {
	r.out.WriteByte('{')
	r.pos++ // consume '{'

	r.skipNoise()
	if r.eof() {
		return errors.New("unterminated object")
	}
	if r.peek() == '}' {
		r.out.WriteByte('}')
		r.pos++
		return nil
	}

	for {
		r.skipNoise()
		if err := r.key(); err != nil {
			return err
		}

		r.skipNoise()
		if r.eof() || r.peek() != ':' {
			return fmt.Errorf("expected ':' after object key at offset %d", r.pos)
		}
		r.out.WriteByte(':')
		r.pos++

		r.skipNoise()
		if err := r.value(); err != nil {
			return err
		}

		r.skipNoise()
		if r.eof() {
			return errors.New("unterminated object")
		}

		switch r.peek() {
		case ',':
			r.pos++
			r.skipNoise()
			if r.eof() {
				return errors.New("unterminated object")
			}
			// Trailing comma: drop it
			if r.peek() == '}' {
				r.out.WriteByte('}')
				r.pos++
				return nil
			}
			r.out.WriteByte(',')
		case '}':
			r.out.WriteByte('}')
			r.pos++
			return nil
		default:
			// Missing comma between members
			r.out.WriteByte(',')
		}
	}
}

func (r *repairer) array() error {
	r.out.WriteByte('[')
	r.pos++ // consume '['

	r.skipNoise()
	if r.eof() {
		return errors.New("unterminated array")
	}
	if r.peek() == ']' {
		r.out.WriteByte(']')
		r.pos++
		return nil
	}

	for {
		r.skipNoise()
		if err := r.value(); err != nil {
			return err
		}

		r.skipNoise()
		if r.eof() {
			return errors.New("unterminated array")
		}

		switch r.peek() {
		case ',':
			r.pos++
			r.skipNoise()
			if r.eof() {
				return errors.New("unterminated array")
			}
			// Trailing comma: drop it
			if r.peek() == ']' {
				r.out.WriteByte(']')
				r.pos++
				return nil
			}
			r.out.WriteByte(',')
		case ']':
			r.out.WriteByte(']')
			r.pos++
			return nil
		default:
			// Missing comma between elements
			r.out.WriteByte(',')
		}
	}
}

// key emits an object key as a double-quoted string, quoting bare identifiers
func (r *repairer) key() error {
	if r.eof() {
		return errors.New("unexpected end of input, expected an object key")
	}
	if c := r.peek(); c == '"' || c == '\'' {
		return r.stringValue(c)
	}

	start := r.pos
	for !r.eof() && isIdentRune(r.peek()) {
		r.pos++
	}
	if r.pos == start {
		return fmt.Errorf("expected object key at offset %d", r.pos)
	}
	r.out.WriteString(strconv.Quote(string(r.src[start:r.pos])))
	return nil
}

// stringValue re-emits a string normalized to double quotes
func (r *repairer) stringValue(quote rune) error {
	r.pos++ // consume opening quote
	r.out.WriteByte('"')

	for {
		if r.eof() {
			return errors.New("unterminated string")
		}
		c := r.peek()
		switch {
		case c == quote:
			r.pos++
			r.out.WriteByte('"')
			return nil
		case c == '\\':
			if r.pos+1 >= len(r.src) {
				return errors.New("unterminated string escape")
			}
			next := r.src[r.pos+1]
			if quote == '\'' && next == '\'' {
				// \' inside a single-quoted string needs no escape in JSON
				r.out.WriteByte('\'')
			} else {
				r.out.WriteRune(c)
				r.out.WriteRune(next)
			}
			r.pos += 2
		case c == '"' && quote == '\'':
			r.out.WriteString(`\"`)
			r.pos++
		case c == '\n':
			r.out.WriteString(`\n`)
			r.pos++
		case c == '\t':
			r.out.WriteString(`\t`)
			r.pos++
		default:
			r.out.WriteRune(c)
			r.pos++
		}
	}
}

// literal handles numbers, booleans, null and bare words
func (r *repairer) literal() error {
	start := r.pos
	for !r.eof() {
		c := r.peek()
		if c == ',' || c == '}' || c == ']' || c == ':' || c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		r.pos++
	}
	if r.pos == start {
		return fmt.Errorf("unexpected character %q at offset %d", r.peek(), r.pos)
	}

	word := string(r.src[start:r.pos])
	if json.Valid([]byte(word)) {
		r.out.WriteString(word)
	} else {
		// Bare word: treat it as an unquoted string
		r.out.WriteString(strconv.Quote(word))
	}
	return nil
}

func isIdentRune(c rune) bool {
	return c == '_' || c == '$' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
