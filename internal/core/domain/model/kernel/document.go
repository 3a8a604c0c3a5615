package kernel

// Document is the string-keyed field map exchanged with the document store.
// Values follow encoding/json conventions: numbers decode as float64, nested
// documents as map[string]any, and arrays as []any.
//
// The accessor methods are deliberately tolerant: a missing key or a value of
// the wrong type yields the zero value. Notification dispatch reads order
// documents written by other subsystems and must degrade gracefully rather
// than fail on absent fields.
type Document map[string]any

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the numeric value stored under key as a float64, accepting the
// numeric types produced by JSON decoding and by in-process writers.
func (d Document) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Int returns the numeric value stored under key truncated to an int.
func (d Document) Int(key string) int {
	return int(d.Float(key))
}

// Int64 returns the numeric value stored under key truncated to an int64.
func (d Document) Int64(key string) int64 {
	return int64(d.Float(key))
}

// Bool returns the boolean value stored under key, or false when absent.
func (d Document) Bool(key string) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return false
}

// Documents returns the array of nested documents stored under key.
// Non-document elements are skipped.
func (d Document) Documents(key string) []Document {
	raw, ok := d[key].([]any)
	if !ok {
		// In-process writers may store the concrete type directly.
		if docs, isTyped := d[key].([]Document); isTyped {
			return docs
		}
		return nil
	}

	docs := make([]Document, 0, len(raw))
	for _, item := range raw {
		if m, isMap := item.(map[string]any); isMap {
			docs = append(docs, Document(m))
		}
	}
	return docs
}

// Has reports whether key is present in the document.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}
