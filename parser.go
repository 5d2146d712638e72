package veloxjson

// Parse parses input in place, using policy to obtain and grow the AST word
// array, and returns a Document describing either the parsed root Value or
// the first error encountered. input is mutated: string escapes are decoded
// in place over its bytes (spec §4.5), so callers that need to retain the
// original bytes should use ParseCopy instead.
func Parse(policy AllocationPolicy, input []byte) *Document {
	p := &parser{
		input:     input,
		pos:       0,
		line:      1,
		lineStart: 0,
		ast:       newASTBuilder(policy, len(input)),
	}

	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.fail(MissingRootElement)
		return p.document(0, p.errCode)
	}
	if p.input[p.pos] != '[' && p.input[p.pos] != '{' {
		p.fail(BadRoot)
		return p.document(0, p.errCode)
	}

	root, ok := p.parseValue()
	if !ok {
		return p.document(0, p.errCode)
	}
	p.skipWhitespace()
	if p.pos != len(p.input) {
		p.fail(ExpectedEndOfInput)
		return p.document(0, p.errCode)
	}
	return p.document(root, Success)
}

// parser drives a single top-to-bottom recursive-descent parse. On failure
// it records the first error via fail/failArg and every subsequent method
// returns false without doing further work, so the call stack unwinds
// cleanly to Parse.
//
// errCode/errArg/errLine/errCol hold the first error's detail; parser's
// struct fields (input, pos, line, lineStart, ast) are declared in types.go.

func (p *parser) column() int {
	return p.pos - p.lineStart + 1
}

func (p *parser) fail(code ErrorCode) bool {
	return p.failArg(code, 0)
}

func (p *parser) failArg(code ErrorCode, arg int) bool {
	if p.errCode == Success {
		p.errCode = code
		p.errArg = arg
		p.errLine = p.line
		p.errCol = p.column()
	}
	return false
}

func (p *parser) document(root word, code ErrorCode) *Document {
	if code != Success {
		p.ast.release()
		return &Document{
			valid:   false,
			errCode: code,
			errArg:  p.errArg,
			errLine: p.errLine,
			errCol:  p.errCol,
		}
	}
	return &Document{
		valid: true,
		root:  root,
		ast:   p.ast,
		input: p.input,
	}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r':
			p.pos++
		case '\n':
			p.pos++
			p.line++
			p.lineStart = p.pos
		default:
			return
		}
	}
}

// parseValue dispatches on the next byte and returns one tagged word
// representing the parsed value. It leaves the temp stack as it found it;
// parseArray pushes the returned word, parseObject stores it with its key.
func (p *parser) parseValue() (word, bool) {
	if p.pos >= len(p.input) {
		p.fail(UnexpectedEnd)
		return 0, false
	}
	switch p.input[p.pos] {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		begin, end, ok := p.parseStringSpan()
		if !ok {
			return 0, false
		}
		idx, ok := p.ast.allocHeap(2)
		if !ok {
			p.fail(OutOfMemory)
			return 0, false
		}
		p.ast.words[idx] = word(begin)
		p.ast.words[idx+1] = word(end)
		return packTag(KindString, p.ast.distance(idx)), true
	case 't':
		return p.parseLiteral("true", KindTrue, ExpectedTrue)
	case 'f':
		return p.parseLiteral("false", KindFalse, ExpectedFalse)
	case 'n':
		return p.parseLiteral("null", KindNull, ExpectedNull)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if !p.parseNumber() {
			return 0, false
		}
		n := p.ast.tempTop - 1
		w := p.ast.words[n]
		p.ast.tempTop = n
		return w, true
	default:
		p.fail(ExpectedValue)
		return 0, false
	}
}

// parseLiteral matches lit literally starting at p.pos and returns a tagged
// word of kind. mismatchCode is used when the bytes don't match.
func (p *parser) parseLiteral(lit string, kind Kind, mismatchCode ErrorCode) (word, bool) {
	if p.pos+len(lit) > len(p.input) {
		p.fail(UnexpectedEnd)
		return 0, false
	}
	for i := 0; i < len(lit); i++ {
		if p.input[p.pos+i] != lit[i] {
			p.fail(mismatchCode)
			return 0, false
		}
	}
	p.pos += len(lit)
	return packTag(kind, 0), true
}

// parseArray parses a JSON array starting at the '[' byte, pushing each
// element's tagged word onto the temp stack until ']', then finalizing them
// into a single heap block.
func (p *parser) parseArray() (word, bool) {
	p.pos++ // consume '['
	start := p.ast.tempTop
	p.skipWhitespace()

	if p.pos < len(p.input) && p.input[p.pos] == ']' {
		p.pos++
		idx, ok := p.ast.finalizeArray(start)
		if !ok {
			p.fail(OutOfMemory)
			return 0, false
		}
		return packTag(KindArray, p.ast.distance(idx)), true
	}

	for {
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.fail(UnexpectedComma)
			return 0, false
		}
		v, ok := p.parseValue()
		if !ok {
			return 0, false
		}
		if !p.ast.pushTemp(v) {
			p.fail(OutOfMemory)
			return 0, false
		}
		p.skipWhitespace()
		if p.pos >= len(p.input) {
			p.fail(UnexpectedEnd)
			return 0, false
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.pos < len(p.input) && p.input[p.pos] == ']' {
				p.fail(ExpectedValue)
				return 0, false
			}
			continue
		case ']':
			p.pos++
			idx, ok := p.ast.finalizeArray(start)
			if !ok {
				p.fail(OutOfMemory)
				return 0, false
			}
			return packTag(KindArray, p.ast.distance(idx)), true
		default:
			p.fail(ExpectedComma)
			return 0, false
		}
	}
}

// parseObject parses a JSON object starting at the '{' byte, collecting
// key/value entries until '}', then sorting and finalizing them into a
// single heap block (spec §4.7).
func (p *parser) parseObject() (word, bool) {
	p.pos++ // consume '{'
	start := p.ast.tempTop
	p.skipWhitespace()

	var entries []objectEntry
	if p.pos < len(p.input) && p.input[p.pos] == '}' {
		p.pos++
		idx, ok := p.ast.finalizeObject(start, entries, p.input)
		if !ok {
			p.fail(OutOfMemory)
			return 0, false
		}
		return packTag(KindObject, p.ast.distance(idx)), true
	}

	for {
		if p.pos >= len(p.input) {
			p.fail(UnexpectedEnd)
			return 0, false
		}
		if p.input[p.pos] != '"' {
			p.fail(MissingObjectKey)
			return 0, false
		}
		keyBegin, keyEnd, ok := p.parseStringSpan()
		if !ok {
			return 0, false
		}
		p.skipWhitespace()
		if p.pos >= len(p.input) || p.input[p.pos] != ':' {
			p.fail(ExpectedColon)
			return 0, false
		}
		p.pos++
		p.skipWhitespace()
		v, ok := p.parseValue()
		if !ok {
			return 0, false
		}
		entries = append(entries, objectEntry{keyBegin: keyBegin, keyEnd: keyEnd, value: v})

		p.skipWhitespace()
		if p.pos >= len(p.input) {
			p.fail(UnexpectedEnd)
			return 0, false
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
			p.skipWhitespace()
			if p.pos < len(p.input) && p.input[p.pos] == '}' {
				p.fail(MissingObjectKey)
				return 0, false
			}
			continue
		case '}':
			p.pos++
			idx, ok := p.ast.finalizeObject(start, entries, p.input)
			if !ok {
				p.fail(OutOfMemory)
				return 0, false
			}
			return packTag(KindObject, p.ast.distance(idx)), true
		default:
			p.fail(ExpectedComma)
			return 0, false
		}
	}
}
