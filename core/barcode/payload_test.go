package barcode_test

import (
	"encoding/json"
	"testing"

	"inventory-manager/core/barcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		payload barcode.Payload
		kind    barcode.Kind
	}{
		{"JSON Object Text", barcode.TextPayload(`{"part": 7}`), barcode.KindStructured},
		{"JSON Object With Whitespace", barcode.TextPayload("  {\"part\": 7}\n"), barcode.KindStructured},
		{"Document", barcode.DocumentPayload(map[string]any{"part": 7}), barcode.KindStructured},
		{"Empty Document", barcode.DocumentPayload(map[string]any{}), barcode.KindStructured},
		{"Nil Document", barcode.DocumentPayload(nil), barcode.KindUndecodable},
		{"Short Code", barcode.TextPayload("INV-PA42"), barcode.KindRaw},
		{"JSON Scalar", barcode.TextPayload("42"), barcode.KindRaw},
		{"JSON Array", barcode.TextPayload(`[{"part": 7}]`), barcode.KindRaw},
		{"JSON Null", barcode.TextPayload("null"), barcode.KindRaw},
		{"Trailing Data", barcode.TextPayload(`{"part": 7} extra`), barcode.KindRaw},
		{"Broken JSON", barcode.TextPayload(`{"part": `), barcode.KindRaw},
		{"Blank", barcode.TextPayload("   "), barcode.KindUndecodable},
		{"Empty", barcode.TextPayload(""), barcode.KindUndecodable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, barcode.Normalize(tt.payload).Kind)
		})
	}

	t.Run("Numbers Kept Exact", func(t *testing.T) {
		norm := barcode.Normalize(barcode.TextPayload(`{"part": 9007199254740993}`))
		require.Equal(t, barcode.KindStructured, norm.Kind)
		assert.Equal(t, json.Number("9007199254740993"), norm.Fields["part"])
	})
}

func TestPayloadFromJSON(t *testing.T) {
	p, err := barcode.PayloadFromJSON([]byte(`"INV-PA42"`))
	require.NoError(t, err)
	assert.True(t, p.IsText())
	assert.Equal(t, "INV-PA42", p.Text())

	p, err = barcode.PayloadFromJSON([]byte(` {"part": 7} `))
	require.NoError(t, err)
	assert.False(t, p.IsText())
	assert.Equal(t, json.Number("7"), p.Document()["part"])

	for _, raw := range []string{"", "42", "null", "[1]", "true", `{"part":`} {
		_, err := barcode.PayloadFromJSON([]byte(raw))
		assert.ErrorIs(t, err, barcode.ErrInvalidPayload, raw)
	}
}

func TestPayloadString(t *testing.T) {
	assert.Equal(t, "INV-PA42", barcode.TextPayload("INV-PA42").String())
	doc := barcode.DocumentPayload(map[string]any{"stockitem": 3, "part": 7})
	assert.Equal(t, `{"part":7,"stockitem":3}`, doc.String())
	assert.Equal(t, "", barcode.DocumentPayload(nil).String())
}

func TestHash(t *testing.T) {
	// md5("hello")
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", barcode.Hash(barcode.TextPayload("hello")))
	// md5("")
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", barcode.Hash(barcode.TextPayload("")))

	t.Run("Ignores Surrounding Whitespace And Control Characters", func(t *testing.T) {
		want := barcode.Hash(barcode.TextPayload("hello"))
		assert.Equal(t, want, barcode.Hash(barcode.TextPayload("  hello\n")))
		assert.Equal(t, want, barcode.Hash(barcode.TextPayload("\x1dhel\x00lo")))
		assert.Equal(t, barcode.Hash(barcode.TextPayload("hllo")), barcode.Hash(barcode.TextPayload("héllo")))
	})

	t.Run("Documents Hash By Content", func(t *testing.T) {
		a := barcode.DocumentPayload(map[string]any{"a": 1, "b": "x"})
		b := barcode.DocumentPayload(map[string]any{"b": "x", "a": 1})
		assert.Equal(t, barcode.Hash(a), barcode.Hash(b))
		assert.Equal(t, barcode.Hash(barcode.TextPayload(`{"a":1,"b":"x"}`)), barcode.Hash(a))
	})
}
