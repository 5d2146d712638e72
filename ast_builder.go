package veloxjson

import "sort"

// astBuilder owns the single word array backing a parse: a temp stack that
// grows upward from index 0 (scratch space for array elements) and an AST
// heap that grows downward from the end of the array (finished nodes). The
// two meet in the middle; collision means the allocation policy must grow
// the array or the parse fails with OutOfMemory.
//
// Heap entries are addressed by end-relative distance (len(words)-index)
// rather than absolute index, so growing the array — copying the temp stack
// to the same low indices and the heap to the new array's tail — never
// requires rewriting a single already-stored offset.
type astBuilder struct {
	words    []word
	tempTop  int // next free index for the temp stack, growing up
	heapBase int // first occupied index of the heap, growing down
	policy   AllocationPolicy
}

func newASTBuilder(policy AllocationPolicy, inputLen int) *astBuilder {
	words := policy.acquire(wordSizeHint(inputLen))
	return &astBuilder{
		words:    words,
		tempTop:  0,
		heapBase: len(words),
		policy:   policy,
	}
}

func (b *astBuilder) release() {
	b.policy.release(b.words)
	b.words = nil
}

// ensure grows the backing array, if the policy allows it, until at least
// extraWords words are free between the two stacks. Returns false when the
// space cannot be made available (fixed-size policy, or policy-imposed
// ceiling reached) — the caller must fail the parse with OutOfMemory.
func (b *astBuilder) ensure(extraWords int) bool {
	if b.heapBase-b.tempTop >= extraWords {
		return true
	}
	for {
		newWords, ok := b.policy.grow(b.words, extraWords-(b.heapBase-b.tempTop))
		if !ok {
			return false
		}
		heapLen := len(b.words) - b.heapBase
		newHeapBase := len(newWords) - heapLen
		copy(newWords[:b.tempTop], b.words[:b.tempTop])
		copy(newWords[newHeapBase:], b.words[b.heapBase:])
		b.policy.release(b.words)
		b.words = newWords
		b.heapBase = newHeapBase
		if b.heapBase-b.tempTop >= extraWords {
			return true
		}
	}
}

// pushTemp appends w to the temp stack, growing the array if necessary.
func (b *astBuilder) pushTemp(w word) bool {
	if !b.ensure(1) {
		return false
	}
	b.words[b.tempTop] = w
	b.tempTop++
	return true
}

// allocHeap reserves n contiguous words at the top of the heap and returns
// the index of the first one. Growing the array if necessary.
func (b *astBuilder) allocHeap(n int) (int, bool) {
	if !b.ensure(n) {
		return 0, false
	}
	b.heapBase -= n
	return b.heapBase, true
}

// distance encodes index as an end-relative distance from the current end
// of the array — stable across future growths because growth always
// re-anchors the heap flush against the new array's tail.
func (b *astBuilder) distance(index int) word {
	return word(len(b.words) - index)
}

// resolve turns an end-relative distance back into an absolute index into
// the current array.
func (b *astBuilder) resolve(dist word) int {
	return len(b.words) - int(dist)
}

// finalizeArray pops the tempTop-start tagged element words pushed since
// start, writes them into a new heap block (length word first, matching the
// teacher's length-prefixed record layout), and returns the heap index of
// that block.
func (b *astBuilder) finalizeArray(start int) (int, bool) {
	n := b.tempTop - start
	base, ok := b.allocHeap(n + 1)
	if !ok {
		return 0, false
	}
	b.words[base] = word(n)
	copy(b.words[base+1:base+1+n], b.words[start:start+n])
	b.tempTop = start
	return base, true
}

// objectEntry is the record parseObject collects per object member, in a Go
// slice rather than on the temp stack: the key's span in the input plus the
// tagged value word.
type objectEntry struct {
	keyBegin int
	keyEnd   int
	value    word
}

// finalizeObject sorts the n entries by (key length,
// then lexicographic key bytes) — the ordering FindObjectKey's binary
// search relies on — and writes them into a new heap block as
// [count][keyBegin,keyEnd,value]*.
func (b *astBuilder) finalizeObject(start int, entries []objectEntry, input []byte) (int, bool) {
	n := len(entries)
	sort.Sort(byKeyOrder{entries: entries, input: input})

	base, ok := b.allocHeap(n*3 + 1)
	if !ok {
		return 0, false
	}
	b.words[base] = word(n)
	for i, e := range entries {
		off := base + 1 + i*3
		b.words[off] = word(e.keyBegin)
		b.words[off+1] = word(e.keyEnd)
		b.words[off+2] = e.value
	}
	b.tempTop = start
	return base, true
}

// byKeyOrder sorts objectEntry values by (key length, then lexicographic key
// bytes read from input), the ordering that FindObjectKey's binary search
// depends on (spec §4.7).
type byKeyOrder struct {
	entries []objectEntry
	input   []byte
}

func (s byKeyOrder) Len() int      { return len(s.entries) }
func (s byKeyOrder) Swap(i, j int) { s.entries[i], s.entries[j] = s.entries[j], s.entries[i] }
func (s byKeyOrder) Less(i, j int) bool {
	a, b := s.entries[i], s.entries[j]
	la, lb := a.keyEnd-a.keyBegin, b.keyEnd-b.keyBegin
	if la != lb {
		return la < lb
	}
	ka := s.input[a.keyBegin:a.keyEnd]
	kb := s.input[b.keyBegin:b.keyEnd]
	for i := 0; i < la; i++ {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}
