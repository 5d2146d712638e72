package veloxjson

import "strconv"

// ErrorCode identifies why a parse failed. Identifiers and spelling
// (including MssingExponent) are stable API surface — see spec §7.
type ErrorCode int

const (
	Success ErrorCode = iota
	OutOfMemory
	UnexpectedEnd
	MissingRootElement
	BadRoot
	ExpectedComma
	MissingObjectKey
	ExpectedColon
	ExpectedEndOfInput
	UnexpectedComma
	ExpectedValue
	ExpectedNull
	ExpectedFalse
	ExpectedTrue
	MssingExponent // sic: identifier spelling preserved for API stability
	IllegalCodepoint
	InvalidUnicodeEscape
	UnexpectedEndOfUtf16
	ExpectedU
	InvalidUtf16TrailSurrogate
	UnknownEscape
	InvalidUtf8
)

var errorText = [...]string{
	Success:                    "no error",
	OutOfMemory:                "out of memory",
	UnexpectedEnd:              "unexpected end of input",
	MissingRootElement:         "missing root element",
	BadRoot:                    "document root must be object or array",
	ExpectedComma:              "expected ,",
	MissingObjectKey:           "missing object key",
	ExpectedColon:              "expected :",
	ExpectedEndOfInput:         "expected end of input",
	UnexpectedComma:            "unexpected comma",
	ExpectedValue:              "expected value",
	ExpectedNull:               "expected 'null'",
	ExpectedFalse:              "expected 'false'",
	ExpectedTrue:               "expected 'true'",
	MssingExponent:             "missing exponent",
	IllegalCodepoint:           "illegal unprintable codepoint in string",
	InvalidUnicodeEscape:       "invalid character in unicode escape",
	UnexpectedEndOfUtf16:       "unexpected end of input during UTF-16 surrogate pair",
	ExpectedU:                  "expected \\u",
	InvalidUtf16TrailSurrogate: "invalid UTF-16 trail surrogate",
	UnknownEscape:              "unknown escape",
	InvalidUtf8:                "invalid UTF-8",
}

// GetErrorText returns the stable message text for a code, ignoring any
// significant argument.
func GetErrorText(code ErrorCode) string {
	if int(code) < 0 || int(code) >= len(errorText) {
		return "<unknown error>"
	}
	return errorText[code]
}

// HasSignificantErrorArg reports whether code carries a meaningful numeric
// argument in its formatted message. Only IllegalCodepoint does.
func HasSignificantErrorArg(code ErrorCode) bool {
	return code == IllegalCodepoint
}

// FormatError renders the user-visible error message: the bare kind text, or
// the kind text followed by ": "+arg when the kind has a significant
// argument (spec §6/§7).
func FormatError(code ErrorCode, arg int) string {
	if !HasSignificantErrorArg(code) {
		return GetErrorText(code)
	}
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(GetErrorText(code))
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(arg))
	return b.String()
}

// parseError is the concrete error value Document.Err returns for an invalid
// parse, carrying the 1-based line/column it occurred at. It mirrors the
// teacher's SyntaxError: a small struct whose Error() is built from a pooled
// Buffer, never allocated on the success path.
type parseError struct {
	code ErrorCode
	arg  int
	line int
	col  int
}

func (e *parseError) Error() string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(FormatError(e.code, e.arg))
	b.WriteString(" at ")
	b.WriteString(strconv.Itoa(e.line))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(e.col))
	return b.String()
}
