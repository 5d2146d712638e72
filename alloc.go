package veloxjson

import "go.uber.org/zap"

// maxWords bounds how large the dynamic-allocation policy will ever grow the
// word array for a single document. It exists purely as a runaway backstop;
// well-formed JSON never comes close (spec §4.1's invariant bounds the AST
// to roughly one word per input byte).
const maxWords = 1 << 28

// AllocationPolicy selects how the AST word array is obtained and grown
// during a parse (spec §4.1). A parse calls acquire once and grow zero or
// more times, and calls release once for every buffer it gives up: each
// buffer a grow replaced, then the final one when the parse fails or the
// Document is closed.
type AllocationPolicy interface {
	acquire(minWords int) []word
	grow(buf []word, minExtraWords int) ([]word, bool)
	release(buf []word)
}

type singleAllocPolicy struct {
	fixed        []word
	userProvided bool
}

// SingleAllocation returns a policy that sizes one internal word array to
// fit the document and never grows it. Parsing a document whose AST would
// exceed the sized buffer fails with OutOfMemory.
func SingleAllocation() AllocationPolicy {
	return &singleAllocPolicy{}
}

// SingleAllocationWithBuffer returns a policy that parses directly into buf,
// never allocating and never growing. buf must be large enough for the
// document's AST or the parse fails with OutOfMemory.
func SingleAllocationWithBuffer(buf []word) AllocationPolicy {
	return &singleAllocPolicy{fixed: buf, userProvided: true}
}

func (s *singleAllocPolicy) acquire(minWords int) []word {
	if s.userProvided {
		return s.fixed
	}
	return getWordBuffer(minWords)
}

func (s *singleAllocPolicy) grow(buf []word, minExtraWords int) ([]word, bool) {
	return nil, false
}

func (s *singleAllocPolicy) release(buf []word) {
	if !s.userProvided {
		putWordBuffer(buf)
	}
}

type dynamicAllocPolicy struct{}

// DynamicAllocation returns a policy that starts with a modestly sized word
// array and grows it by amortized doubling (spec §4.1) as the parse
// discovers it needs more room.
func DynamicAllocation() AllocationPolicy {
	return dynamicAllocPolicy{}
}

func (dynamicAllocPolicy) acquire(minWords int) []word {
	return getWordBuffer(minWords)
}

func (dynamicAllocPolicy) grow(buf []word, minExtraWords int) ([]word, bool) {
	needed := len(buf) + minExtraWords
	if needed > maxWords {
		logger.Warn("ast word buffer exhausted",
			zap.Int("from_words", len(buf)),
			zap.Int("needed_words", needed),
			zap.Int("max_words", maxWords),
		)
		return nil, false
	}
	newLen := len(buf) * 2
	if newLen < needed {
		newLen = needed
	}
	if newLen > maxWords {
		newLen = maxWords
	}
	logger.Debug("growing ast word buffer",
		zap.Int("from_words", len(buf)),
		zap.Int("to_words", newLen),
	)
	return make([]word, newLen), true
}

func (dynamicAllocPolicy) release(buf []word) {
	putWordBuffer(buf)
}

// wordSizeHint returns the initial word-array size to request for an input
// of the given byte length: four words per three input bytes, plus a small
// constant. The densest AST this package builds is an array of empty
// strings, which peaks at 4n+1 words for 3n+1 input bytes (two heap words
// per string, one temp word each, and the finished array block), so the
// SingleAllocation buffer holds any well-formed document.
func wordSizeHint(inputLen int) int {
	return inputLen + inputLen/3 + 16
}
