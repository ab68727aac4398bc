// Package profilefields normalizes profile fields that arrive in several encodings
// (JSON arrays, JSON text, delimited strings) into canonical lists.
package profilefields

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Status tells a caller whether a parsed field is usable
type Status int

// Parse statuses. Anything other than StatusOK means "use the template fallback".
const (
	StatusOK Status = iota
	StatusEmpty
	StatusMalformed
	StatusNotList
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusMalformed:
		return "malformed"
	case StatusNotList:
		return "not_list"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseResult is the tagged outcome of ParseListField
type ParseResult struct {
	Records []Record
	Status  Status
	Err     error // cause for StatusMalformed, nil otherwise
}

// OK reports whether the field produced a non-empty list of records
func (r ParseResult) OK() bool {
	return r.Status == StatusOK && len(r.Records) > 0
}

// Record is one object element of a list field
type Record struct {
	value gjson.Result
}

// NewRecord wraps a JSON object document as a Record
func NewRecord(doc string) Record {
	return Record{value: gjson.Parse(doc)}
}

// ParseListField decodes a list field given either as a Go value (slice, map)
// or as JSON text. It never panics and never returns an error directly; the
// Status of the result says whether the caller should fall back.
func ParseListField(raw any) ParseResult {
	doc, ok, err := documentOf(raw)
	if err != nil {
		return ParseResult{Status: StatusMalformed, Err: err}
	}
	if !ok {
		return ParseResult{Status: StatusEmpty}
	}

	if !gjson.Valid(doc) {
		return ParseResult{
			Status: StatusMalformed,
			Err:    &ParseError{Message: "field is not valid JSON"},
		}
	}

	parsed := gjson.Parse(doc)
	if parsed.Type == gjson.Null {
		return ParseResult{Status: StatusEmpty}
	}
	if !parsed.IsArray() {
		return ParseResult{Status: StatusNotList}
	}

	records := make([]Record, 0)
	parsed.ForEach(func(_, element gjson.Result) bool {
		if element.IsObject() {
			records = append(records, Record{value: element})
		}
		return true
	})
	if len(records) == 0 {
		return ParseResult{Status: StatusEmpty}
	}

	return ParseResult{Records: records, Status: StatusOK}
}

// documentOf turns a raw field value into JSON text.
// ok is false when the value is absent or blank.
func documentOf(raw any) (doc string, ok bool, err error) {
	switch v := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		doc = strings.TrimSpace(v)
	case []byte:
		doc = strings.TrimSpace(string(v))
	case json.RawMessage:
		doc = strings.TrimSpace(string(v))
	default:
		encoded, marshalErr := json.Marshal(v)
		if marshalErr != nil {
			return "", false, &ParseError{Message: "failed to encode field", Cause: marshalErr}
		}
		doc = string(encoded)
	}
	return doc, doc != "", nil
}

// stringElements returns the elements of raw when it is a list made only of strings
func stringElements(raw any) ([]string, bool) {
	doc, ok, err := documentOf(raw)
	if err != nil || !ok || !gjson.Valid(doc) {
		return nil, false
	}
	parsed := gjson.Parse(doc)
	if !parsed.IsArray() {
		return nil, false
	}

	values := make([]string, 0)
	allStrings := true
	parsed.ForEach(func(_, element gjson.Result) bool {
		if element.Type != gjson.String {
			allStrings = false
			return false
		}
		if s := strings.TrimSpace(element.Str); s != "" {
			values = append(values, s)
		}
		return true
	})
	return values, allStrings && len(values) > 0
}
