package veloxjson_test

import (
	"testing"

	"veloxjson"
)

func TestObjectKeysStoredInLengthThenLexicographicOrder(t *testing.T) {
	doc := veloxjson.Parse(veloxjson.DynamicAllocation(), []byte(`{"b":1,"aa":0}`))
	defer doc.Close()
	if !doc.IsValid() {
		t.Fatalf("expected valid, got %v", doc.GetErrorMessage())
	}
	root := doc.GetRoot()
	if root.GetLength() != 2 {
		t.Fatalf("expected length 2, got %d", root.GetLength())
	}
	if got := root.GetObjectKey(0); got != "b" {
		t.Fatalf("index 0: got key %q, want \"b\"", got)
	}
	if got := root.GetObjectValue(0).GetIntegerValue(); got != 1 {
		t.Fatalf("index 0: got value %d, want 1", got)
	}
	if got := root.GetObjectKey(1); got != "aa" {
		t.Fatalf("index 1: got key %q, want \"aa\"", got)
	}
	if got := root.GetObjectValue(1).GetIntegerValue(); got != 0 {
		t.Fatalf("index 1: got value %d, want 0", got)
	}

	if i := root.FindObjectKey("b"); i != 0 {
		t.Fatalf("FindObjectKey(b) = %d, want 0", i)
	}
	if i := root.FindObjectKey("aa"); i != 1 {
		t.Fatalf("FindObjectKey(aa) = %d, want 1", i)
	}
	if i := root.FindObjectKey("c"); i != 2 {
		t.Fatalf("FindObjectKey(c) = %d, want 2 (sentinel)", i)
	}
}

func TestFindObjectKeyPrefixOfLongerKeyIsAbsent(t *testing.T) {
	doc := veloxjson.Parse(veloxjson.DynamicAllocation(), []byte(`{"prefix_key":0}`))
	defer doc.Close()
	root := doc.GetRoot()
	if i := root.FindObjectKey("prefix"); i != root.GetLength() {
		t.Fatalf("FindObjectKey(prefix) = %d, want sentinel %d", i, root.GetLength())
	}
}

func TestGetValueOfKeyReturnsNullSentinelWhenAbsent(t *testing.T) {
	doc := veloxjson.Parse(veloxjson.DynamicAllocation(), []byte(`{"a":1}`))
	defer doc.Close()
	root := doc.GetRoot()
	v := root.GetValueOfKey("missing")
	if v.GetType() != veloxjson.KindNull {
		t.Fatalf("expected null sentinel, got %v", v.GetType())
	}
	present := root.GetValueOfKey("a")
	if present.GetType() != veloxjson.KindInteger || present.GetIntegerValue() != 1 {
		t.Fatalf("expected Integer 1, got %v", present.GetType())
	}
}

func TestObjectKeyOrderIsMonotoneUnderLengthThenBytes(t *testing.T) {
	doc := veloxjson.Parse(veloxjson.DynamicAllocation(), []byte(`{"zz":0,"a":1,"bb":2,"y":3}`))
	defer doc.Close()
	root := doc.GetRoot()
	n := root.GetLength()
	for i := 1; i < n; i++ {
		prev, cur := root.GetObjectKey(i-1), root.GetObjectKey(i)
		if len(prev) > len(cur) {
			t.Fatalf("keys not length-ordered: %q before %q", prev, cur)
		}
		if len(prev) == len(cur) && prev > cur {
			t.Fatalf("keys not lexicographically ordered within length: %q before %q", prev, cur)
		}
	}
}
