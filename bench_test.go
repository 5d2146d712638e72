package veloxjson_test

import (
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	goccy "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	segmentio "github.com/segmentio/encoding/json"
	"github.com/tidwall/gjson"

	"veloxjson"
)

var benchDoc = []byte(`{
	"id": 12345,
	"name": "Complex Object",
	"is_active": true,
	"score": 99.5,
	"tags": ["tag1", "tag2", "tag3"],
	"address": {
		"street": "123 Main St",
		"city": "Anytown",
		"country": "USA",
		"zip": "12345"
	}
}`)

// BenchmarkVeloxParseAndNavigate parses benchDoc and walks the fields a
// typical consumer would touch, exercising the parser driver, the AST
// encoder, and the value accessor façade together.
func BenchmarkVeloxParseAndNavigate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := append([]byte(nil), benchDoc...)
		doc := veloxjson.Parse(veloxjson.DynamicAllocation(), buf)
		root := doc.GetRoot()
		_ = root.GetValueOfKey("id").GetIntegerValue()
		_ = root.GetValueOfKey("name").AsString()
		addr := root.GetValueOfKey("address")
		_ = addr.GetValueOfKey("city").AsString()
		doc.Close()
	}
}

func BenchmarkVeloxParseOnly(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := append([]byte(nil), benchDoc...)
		doc := veloxjson.Parse(veloxjson.SingleAllocation(), buf)
		doc.Close()
	}
}

type benchAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

type benchObject struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	IsActive bool         `json:"is_active"`
	Score    float64      `json:"score"`
	Tags     []string     `json:"tags"`
	Address  benchAddress `json:"address"`
}

func BenchmarkStdUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v benchObject
		_ = json.Unmarshal(benchDoc, &v)
	}
}

func BenchmarkSonicUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v benchObject
		_ = sonic.Unmarshal(benchDoc, &v)
	}
}

func BenchmarkGoccyUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v benchObject
		_ = goccy.Unmarshal(benchDoc, &v)
	}
}

func BenchmarkJsoniterUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v benchObject
		_ = jsoniter.Unmarshal(benchDoc, &v)
	}
}

func BenchmarkSegmentioUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var v benchObject
		_ = segmentio.Unmarshal(benchDoc, &v)
	}
}

func BenchmarkGjsonGet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = gjson.GetBytes(benchDoc, "address.city").String()
	}
}
