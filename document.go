package veloxjson

// Document is the result of a Parse call: either a valid parsed tree
// reachable via GetRoot, or a failure with positional error detail (spec
// §4.9/§6). A Document owns the word array backing its tree and the input
// bytes it was parsed from; Close releases the word array back to its
// allocation policy.
type Document struct {
	valid bool
	root  word
	ast   *astBuilder
	input []byte

	errCode ErrorCode
	errArg  int
	errLine int
	errCol  int

	closed bool
}

// IsValid reports whether the parse succeeded.
func (d *Document) IsValid() bool {
	return d.valid
}

// GetRoot returns the document's root Value. Calling it on an invalid
// document returns the zero Value; callers should check IsValid first.
func (d *Document) GetRoot() Value {
	if !d.valid {
		return Value{}
	}
	return valueFromTagged(d, d.root)
}

func (d *Document) GetErrorCode() ErrorCode { return d.errCode }
func (d *Document) GetErrorArg() int        { return d.errArg }
func (d *Document) GetErrorLine() int       { return d.errLine }
func (d *Document) GetErrorColumn() int     { return d.errCol }

// GetErrorMessage renders the bare kind text, or the kind text followed by
// ": "+arg for the one error kind that carries a significant argument (spec
// §7), e.g. "illegal unprintable codepoint in string: 25". Position is
// exposed separately via GetErrorLine/GetErrorColumn.
func (d *Document) GetErrorMessage() string {
	if d.valid {
		return ""
	}
	return FormatError(d.errCode, d.errArg)
}

// Err returns nil for a valid document, or a positional error value for an
// invalid one — an idiomatic Go alternative to the GetErrorCode/Line/Column
// accessor triplet, mirroring the *SyntaxError the teacher's Unmarshal
// returns on failure.
func (d *Document) Err() error {
	if d.valid {
		return nil
	}
	return &parseError{code: d.errCode, arg: d.errArg, line: d.errLine, col: d.errCol}
}

// Close releases the document's backing word array to its allocation
// policy. After Close, Values obtained from this document must not be
// used. Close is idempotent.
func (d *Document) Close() {
	if d.closed || d.ast == nil {
		return
	}
	d.ast.release()
	d.closed = true
}

// ParseCopy parses a copy of input, leaving the caller's slice untouched.
// Equivalent to Parse(policy, append([]byte(nil), input...)) but grounded on
// the same clone-then-parse pattern the teacher uses to protect caller
// buffers from in-place decode (spec §8).
func ParseCopy(policy AllocationPolicy, input []byte) *Document {
	owned := make([]byte, len(input))
	copy(owned, input)
	return Parse(policy, owned)
}
