package syntax

import (
	"bytes"
	"encoding/json"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Canonical structural keys.
//
// Every node describes itself as a small value tree (keyVal) and the
// canonical serialization of that tree is the node's Key. This is the
// ONLY serialization used for structural identity: the intern table,
// Equal, and the fingerprint all go through it.
//
// Canonical rules (following RFC 8785 where it matters):
//   - object keys sorted
//   - strings NFC normalized before escaping
//   - no HTML escaping (< > & are written verbatim)
//   - no floats, no nulls: the node algebra never produces them

// keyVal is the value algebra for canonical keys. Only keyString,
// keyArray, keyObject, and keyRaw implement it.
type keyVal interface {
	keyVal() // sealed
}

// keyString is a string leaf. It is NFC-normalized and escaped on
// serialization.
type keyString string

func (keyString) keyVal() {}

// keyArray is an ordered sequence of key values.
type keyArray []keyVal

func (keyArray) keyVal() {}

// keyObject maps field names to key values. Field names are plain ASCII
// identifiers chosen by the node kinds.
type keyObject map[string]keyVal

func (keyObject) keyVal() {}

// keyRaw is an already-canonical fragment (a child node's Key) spliced
// in verbatim. Splicing avoids re-escaping child keys as strings and
// keeps composite keys readable.
type keyRaw string

func (keyRaw) keyVal() {}

// marshalCanonical produces the canonical text for a key value.
func marshalCanonical(v keyVal) []byte {
	var buf bytes.Buffer
	appendCanonical(&buf, v)
	return buf.Bytes()
}

func appendCanonical(buf *bytes.Buffer, v keyVal) {
	switch val := v.(type) {
	case keyString:
		buf.Write(canonicalString(string(val)))
	case keyRaw:
		buf.WriteString(string(val))
	case keyArray:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendCanonical(buf, elem)
		}
		buf.WriteByte(']')
	case keyObject:
		buf.WriteByte('{')
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(canonicalString(k))
			buf.WriteByte(':')
			appendCanonical(buf, val[k])
		}
		buf.WriteByte('}')
	}
}

// canonicalString produces a canonical JSON string: NFC normalized, no
// HTML escaping.
func canonicalString(s string) []byte {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		// A Go string always encodes; an error here is a broken runtime.
		panic(err)
	}

	// json.Encoder appends a trailing newline.
	result := buf.Bytes()
	if n := len(result); n > 0 && result[n-1] == '\n' {
		result = result[:n-1]
	}
	return result
}

// sortedRawKeys returns the child keys sorted and deduplicated, for the
// operand-set identity of commutative operators.
func sortedRawKeys(operands []Formula) keyArray {
	raw := make([]string, 0, len(operands))
	for _, op := range operands {
		raw = append(raw, op.Key())
	}
	sort.Strings(raw)
	out := make(keyArray, 0, len(raw))
	for i, k := range raw {
		if i > 0 && raw[i-1] == k {
			continue
		}
		out = append(out, keyRaw(k))
	}
	return out
}

// orderedRawKeys returns the child keys in operand order, for
// order-sensitive operators.
func orderedRawKeys(operands []Formula) keyArray {
	out := make(keyArray, 0, len(operands))
	for _, op := range operands {
		out = append(out, keyRaw(op.Key()))
	}
	return out
}
