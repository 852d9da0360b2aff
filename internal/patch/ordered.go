package patch

import (
	"bytes"
	"fmt"

	ojson "github.com/virtuald/go-ordered-json"
)

// decodeOrdered parses a JSON document into an order-preserving object.
// Key order and unrelated content survive a decode/encode round trip,
// which is what makes the merge non-destructive.
func decodeOrdered(data []byte) (ojson.OrderedObject, error) {
	dec := ojson.NewDecoder(bytes.NewReader(data))
	dec.UseOrderedObject()
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	obj, ok := v.(ojson.OrderedObject)
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, not an object", v)
	}
	return obj, nil
}

// encodeOrdered serializes an ordered object with two-space indentation and
// a trailing newline, matching npm's own formatting.
func encodeOrdered(obj ojson.OrderedObject) ([]byte, error) {
	out, err := ojson.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// memberIndex returns the index of key in obj, or -1.
func memberIndex(obj ojson.OrderedObject, key string) int {
	for i, m := range obj {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// getString returns the string value of key, if present and a string.
func getString(obj ojson.OrderedObject, key string) (string, bool) {
	i := memberIndex(obj, key)
	if i < 0 {
		return "", false
	}
	s, ok := obj[i].Value.(string)
	return s, ok
}

// getObject returns the object value of key, if present and an object.
func getObject(obj ojson.OrderedObject, key string) (ojson.OrderedObject, bool) {
	i := memberIndex(obj, key)
	if i < 0 {
		return nil, false
	}
	child, ok := obj[i].Value.(ojson.OrderedObject)
	return child, ok
}

// setMember replaces the value of key, or appends the member when absent.
// Returns the (possibly reallocated) object.
func setMember(obj ojson.OrderedObject, key string, value interface{}) ojson.OrderedObject {
	if i := memberIndex(obj, key); i >= 0 {
		obj[i].Value = value
		return obj
	}
	return append(obj, ojson.Member{Key: key, Value: value})
}

// removeMember deletes key from obj. Returns the object and whether a
// member was removed.
func removeMember(obj ojson.OrderedObject, key string) (ojson.OrderedObject, bool) {
	i := memberIndex(obj, key)
	if i < 0 {
		return obj, false
	}
	return append(obj[:i], obj[i+1:]...), true
}
