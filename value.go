package veloxjson

import (
	"math"
	"sort"
	"unsafe"
)

// Value is a lightweight handle into a Document's AST: a Kind tag plus
// enough state to decode its payload on demand. Values are only valid for
// the lifetime of their Document (spec §4.9); they become dangling after
// Close.
type Value struct {
	doc  *Document
	kind Kind
	// idx is the absolute word-array index of the value's heap record, for
	// Double, String, Array and Object kinds. Unused (zero) for inline kinds.
	idx int
	// inline holds the raw payload for Integer, decoded lazily by
	// GetIntegerValue. Double doesn't fit here (see idx) — only Integer and
	// the unit kinds are small enough to inline.
	inline word
}

func valueFromTagged(doc *Document, w word) Value {
	kind, payload := unpackTag(w)
	switch kind {
	case KindInteger:
		return Value{doc: doc, kind: kind, inline: payload}
	case KindNull, KindTrue, KindFalse:
		return Value{doc: doc, kind: kind}
	default: // Double, String, Array, Object
		return Value{doc: doc, kind: kind, idx: doc.ast.resolve(payload)}
	}
}

// GetType returns the value's Kind.
func (v Value) GetType() Kind {
	return v.kind
}

// GetLength returns the number of elements (Array), members (Object), or
// decoded bytes (String). Panics for any other kind, matching the teacher's
// fail-fast accessor style for programmer misuse.
func (v Value) GetLength() int {
	switch v.kind {
	case KindArray, KindObject:
		return int(v.doc.ast.words[v.idx])
	case KindString:
		return int(v.doc.ast.words[v.idx+1]) - int(v.doc.ast.words[v.idx])
	default:
		panic("veloxjson: GetLength on non-container, non-string value")
	}
}

// GetArrayElement returns the i'th element of an Array value.
func (v Value) GetArrayElement(i int) Value {
	if v.kind != KindArray {
		panic("veloxjson: GetArrayElement on non-array value")
	}
	n := int(v.doc.ast.words[v.idx])
	if i < 0 || i >= n {
		panic("veloxjson: array index out of range")
	}
	return valueFromTagged(v.doc, v.doc.ast.words[v.idx+1+i])
}

// GetObjectKey returns the i'th member's key, in stored (sorted) order.
func (v Value) GetObjectKey(i int) string {
	begin, end := v.objectKeySpan(i)
	return bytesToString(v.doc.input[begin:end])
}

// GetObjectValue returns the i'th member's value, in stored (sorted) order.
func (v Value) GetObjectValue(i int) Value {
	if v.kind != KindObject {
		panic("veloxjson: GetObjectValue on non-object value")
	}
	n := int(v.doc.ast.words[v.idx])
	if i < 0 || i >= n {
		panic("veloxjson: object index out of range")
	}
	off := v.idx + 1 + i*3
	return valueFromTagged(v.doc, v.doc.ast.words[off+2])
}

func (v Value) objectKeySpan(i int) (int, int) {
	if v.kind != KindObject {
		panic("veloxjson: GetObjectKey on non-object value")
	}
	n := int(v.doc.ast.words[v.idx])
	if i < 0 || i >= n {
		panic("veloxjson: object index out of range")
	}
	off := v.idx + 1 + i*3
	return int(v.doc.ast.words[off]), int(v.doc.ast.words[off+1])
}

// FindObjectKey returns the stored index of key via binary search over the
// (length, then lexicographic) ordering finalizeObject sorted members into,
// or GetLength(v) if key is absent (spec §4.7/§8).
func (v Value) FindObjectKey(key string) int {
	if v.kind != KindObject {
		panic("veloxjson: FindObjectKey on non-object value")
	}
	n := int(v.doc.ast.words[v.idx])
	input := v.doc.input
	i := sort.Search(n, func(i int) bool {
		off := v.idx + 1 + i*3
		b, e := int(v.doc.ast.words[off]), int(v.doc.ast.words[off+1])
		return !keyLess(input[b:e], []byte(key))
	})
	if i < n {
		b, e := v.objectKeySpan(i)
		if bytesEqual(input[b:e], []byte(key)) {
			return i
		}
	}
	return n
}

// GetValueOfKey looks up key via FindObjectKey and returns its value, or the
// null sentinel if absent.
func (v Value) GetValueOfKey(key string) Value {
	i := v.FindObjectKey(key)
	if i >= v.GetLength() {
		return nullSentinel
	}
	return v.GetObjectValue(i)
}

func keyLess(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GetIntegerValue returns the value's Integer payload, sign-extending the
// stored 32-bit two's-complement pattern.
func (v Value) GetIntegerValue() int32 {
	if v.kind != KindInteger {
		panic("veloxjson: GetIntegerValue on non-integer value")
	}
	return int32(uint32(v.inline))
}

// GetDoubleValue returns the value's Double payload, read from its one-word
// heap record.
func (v Value) GetDoubleValue() float64 {
	if v.kind != KindDouble {
		panic("veloxjson: GetDoubleValue on non-double value")
	}
	return math.Float64frombits(uint64(v.doc.ast.words[v.idx]))
}

// GetNumberValue returns the value as a float64 regardless of whether it
// was stored as Integer or Double, for callers that don't care which.
func (v Value) GetNumberValue() float64 {
	switch v.kind {
	case KindInteger:
		return float64(v.GetIntegerValue())
	case KindDouble:
		return v.GetDoubleValue()
	default:
		panic("veloxjson: GetNumberValue on non-numeric value")
	}
}

// AsString returns a String value's decoded text as a Go string, sharing
// storage with the document's input bytes via an unsafe zero-copy
// conversion — the same GetString pattern the teacher uses to avoid an
// allocation per string node. The result is only valid for the Document's
// lifetime.
func (v Value) AsString() string {
	return bytesToString(v.AsBytes())
}

// AsBytes returns a String value's decoded bytes, sharing storage with the
// document's input.
func (v Value) AsBytes() []byte {
	if v.kind != KindString {
		panic("veloxjson: AsBytes on non-string value")
	}
	begin := int(v.doc.ast.words[v.idx])
	end := int(v.doc.ast.words[v.idx+1])
	return v.doc.input[begin:end]
}

// bytesToString converts b to a string without copying, exactly as the
// teacher's GetString helper does.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

var nullSentinel = Value{kind: KindNull}
