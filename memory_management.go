package veloxjson

import "sync"

// Word-array pools, sized by class exactly the way the teacher pools byte
// Buffers in tinyBuffers/smallBuffers/mediumBuffers/largeBuffers. The AST
// word array is the hot allocation in this package, so it gets the same
// treatment the teacher gives its byte buffers.
var (
	tinyWordBufs = sync.Pool{
		New: func() interface{} { b := make([]word, 64); return &b },
	}
	smallWordBufs = sync.Pool{
		New: func() interface{} { b := make([]word, 1024); return &b },
	}
	mediumWordBufs = sync.Pool{
		New: func() interface{} { b := make([]word, 16*1024); return &b },
	}

	builderPool = sync.Pool{
		New: func() interface{} { return &Buffer{} },
	}
)

const (
	tinyWords   = 64
	smallWords  = 1024
	mediumWords = 16 * 1024
)

// getWordBuffer returns a []word with length at least minWords. A buffer
// taken from a pool is not cleared and may hold words from an earlier parse.
func getWordBuffer(minWords int) []word {
	switch {
	case minWords <= tinyWords:
		b := tinyWordBufs.Get().(*[]word)
		return (*b)[:tinyWords]
	case minWords <= smallWords:
		b := smallWordBufs.Get().(*[]word)
		return (*b)[:smallWords]
	case minWords <= mediumWords:
		b := mediumWordBufs.Get().(*[]word)
		return (*b)[:mediumWords]
	default:
		return make([]word, minWords)
	}
}

// putWordBuffer returns buf to the pool matching its exact length. Buffers
// produced by ad-hoc make() (oversized documents, or growth results that
// don't land on a size class) are simply dropped, same as the teacher drops
// oversized Buffers in putBuffer.
func putWordBuffer(buf []word) {
	switch len(buf) {
	case tinyWords:
		tinyWordBufs.Put(&buf)
	case smallWords:
		smallWordBufs.Put(&buf)
	case mediumWords:
		mediumWordBufs.Put(&buf)
	}
}

func getBuilder() *Buffer {
	b := builderPool.Get().(*Buffer)
	b.Reset()
	return b
}

func putBuilder(b *Buffer) {
	builderPool.Put(b)
}
