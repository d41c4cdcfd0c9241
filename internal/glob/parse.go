// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gitfilter

package glob

// tokenKind is a parsed glob element kind.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenAny
	tokenZeroOrMore
	tokenRecursivePrefix
	tokenRecursiveSuffix
	tokenRecursiveZeroOrMore
	tokenClass
	tokenAlternates
)

// charRange is an inclusive class range.
type charRange struct {
	lo rune
	hi rune
}

// token is one parsed glob element.
type token struct {
	// ranges holds class members for tokenClass.
	ranges []charRange
	// alts holds branches for tokenAlternates.
	alts [][]token
	// lit is the literal rune for tokenLiteral.
	lit rune
	// kind is the token kind.
	kind tokenKind
	// negated reports "[!...]" classes.
	negated bool
}

// noChar marks absent prev/cur/peek positions.
const noChar rune = -1

// parser is a single-use glob tokenizer.
type parser struct {
	glob  string
	chars []rune
	// stack[0] is the top level; deeper entries are open alternation branches.
	stack [][]token
	pos   int
	prev  rune
	cur   rune
}

// parse tokenizes glob text.
func parse(glob string) ([]token, error) {
	p := &parser{
		glob:  glob,
		chars: []rune(glob),
		stack: [][]token{nil},
		prev:  noChar,
		cur:   noChar,
	}

	for {
		c := p.bump()
		if c == noChar {
			break
		}

		var err error
		switch c {
		case '?':
			p.push(token{kind: tokenAny})
		case '*':
			p.parseStar()
		case '[':
			err = p.parseClass()
		case '{':
			err = p.pushAlternate()
		case '}':
			err = p.popAlternate()
		case ',':
			p.parseComma()
		case '\\':
			err = p.parseBackslash()
		default:
			p.push(token{kind: tokenLiteral, lit: c})
		}

		if err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 1 {
		return nil, p.error(KindUnclosedAlternates)
	}

	return p.stack[0], nil
}

// bump consumes and returns the next rune.
func (p *parser) bump() rune {
	p.prev = p.cur
	if p.pos >= len(p.chars) {
		p.cur = noChar
		return noChar
	}

	p.cur = p.chars[p.pos]
	p.pos++
	return p.cur
}

// peek returns the next rune without consuming it.
func (p *parser) peek() rune {
	if p.pos >= len(p.chars) {
		return noChar
	}

	return p.chars[p.pos]
}

// push appends a token to the innermost open token list.
func (p *parser) push(tok token) {
	last := len(p.stack) - 1
	p.stack[last] = append(p.stack[last], tok)
}

// pop removes the last token of the innermost open token list.
func (p *parser) pop() (token, bool) {
	last := len(p.stack) - 1
	n := len(p.stack[last])
	if n == 0 {
		return token{}, false
	}

	tok := p.stack[last][n-1]
	p.stack[last] = p.stack[last][:n-1]
	return tok, true
}

// haveTokens reports whether the innermost token list is non-empty.
func (p *parser) haveTokens() bool {
	return len(p.stack[len(p.stack)-1]) > 0
}

// error builds a parse error for the current glob.
func (p *parser) error(kind ErrorKind) *Error {
	return &Error{Glob: p.glob, Kind: kind}
}

// parseStar handles "*" and the recursive "**" forms.
func (p *parser) parseStar() {
	prev := p.prev
	if p.peek() != '*' {
		p.push(token{kind: tokenZeroOrMore})
		return
	}

	p.bump()
	if !p.haveTokens() {
		if next := p.peek(); next != noChar && next != '/' {
			p.push(token{kind: tokenZeroOrMore})
			p.push(token{kind: tokenZeroOrMore})
			return
		}

		p.push(token{kind: tokenRecursivePrefix})
		p.bump()
		return
	}

	if prev != '/' {
		if len(p.stack) <= 1 || (prev != ',' && prev != '{') {
			p.push(token{kind: tokenZeroOrMore})
			p.push(token{kind: tokenZeroOrMore})
			return
		}
	}

	suffix := false
	switch next := p.peek(); {
	case next == noChar:
		suffix = true
	case (next == ',' || next == '}') && len(p.stack) >= 2:
		suffix = true
	case next == '/':
		p.bump()
	default:
		p.push(token{kind: tokenZeroOrMore})
		p.push(token{kind: tokenZeroOrMore})
		return
	}

	// The preceding "/" is folded into the recursive token.
	last, _ := p.pop()
	switch last.kind {
	case tokenRecursivePrefix, tokenRecursiveSuffix:
		p.push(last)
	default:
		if suffix {
			p.push(token{kind: tokenRecursiveSuffix})
		} else {
			p.push(token{kind: tokenRecursiveZeroOrMore})
		}
	}
}

// parseClass handles "[...]".
func (p *parser) parseClass() error {
	var ranges []charRange

	negated := false
	if next := p.peek(); next == '!' || next == '^' {
		p.bump()
		negated = true
	}

	first := true
	inRange := false
	for {
		c := p.bump()
		if c == noChar {
			return p.error(KindUnclosedClass)
		}

		switch {
		case c == ']':
			if !first {
				if inRange {
					// Trailing "-" is a literal.
					ranges = append(ranges, charRange{lo: '-', hi: '-'})
				}

				p.push(token{kind: tokenClass, negated: negated, ranges: ranges})
				return nil
			}

			ranges = append(ranges, charRange{lo: ']', hi: ']'})
		case c == '-':
			switch {
			case first:
				ranges = append(ranges, charRange{lo: '-', hi: '-'})
			case inRange:
				if err := p.extendRange(ranges, '-'); err != nil {
					return err
				}

				inRange = false
			default:
				inRange = true
			}
		default:
			if inRange {
				if err := p.extendRange(ranges, c); err != nil {
					return err
				}
			} else {
				ranges = append(ranges, charRange{lo: c, hi: c})
			}

			inRange = false
		}

		first = false
	}
}

// extendRange closes the last class range at hi.
func (p *parser) extendRange(ranges []charRange, hi rune) error {
	r := &ranges[len(ranges)-1]
	r.hi = hi
	if r.hi < r.lo {
		err := p.error(KindInvalidRange)
		err.Range = [2]rune{r.lo, r.hi}
		return err
	}

	return nil
}

// pushAlternate opens "{".
func (p *parser) pushAlternate() error {
	if len(p.stack) > 1 {
		return p.error(KindNestedAlternates)
	}

	p.stack = append(p.stack, nil)
	return nil
}

// popAlternate closes "}".
func (p *parser) popAlternate() error {
	if len(p.stack) <= 1 {
		return p.error(KindUnopenedAlternates)
	}

	alts := make([][]token, 0, len(p.stack)-1)
	alts = append(alts, p.stack[1:]...)
	p.stack = p.stack[:1]
	p.push(token{kind: tokenAlternates, alts: alts})
	return nil
}

// parseComma starts a new branch inside "{...}" and is literal elsewhere.
func (p *parser) parseComma() {
	if len(p.stack) <= 1 {
		p.push(token{kind: tokenLiteral, lit: ','})
		return
	}

	p.stack = append(p.stack, nil)
}

// parseBackslash handles "\x" escapes.
func (p *parser) parseBackslash() error {
	c := p.bump()
	if c == noChar {
		return p.error(KindDanglingEscape)
	}

	p.push(token{kind: tokenLiteral, lit: c})
	return nil
}
