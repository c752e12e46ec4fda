package domain

import (
	"bytes"
	"encoding/json"
)

// MatchRecord is the normalized, source-independent shape of one live event.
// The four fields are exactly what the pipeline emits.
type MatchRecord struct {
	Title   string  `json:"title"`
	Image   string  `json:"image"`
	Link    string  `json:"link"`
	MatchID MatchID `json:"match_id"`
}

// MatchID is an identifier unique within one source's feed, used as the dedupe
// key. Upstreams encode it as either a JSON string or a JSON number; the
// original encoding is preserved on re-emission, and a string never compares
// equal to a number of the same digits.
type MatchID struct {
	value    string
	isString bool
}

// StringID builds a MatchID that came in as a JSON string.
func StringID(s string) MatchID {
	return MatchID{value: s, isString: true}
}

// NumberID builds a MatchID that came in as a JSON number.
func NumberID(n json.Number) MatchID {
	return MatchID{value: n.String()}
}

// Key returns the dedupe key. The prefix discriminates string from number so
// that "1" and 1 stay distinct records.
func (id MatchID) Key() string {
	if id.isString {
		return "s:" + id.value
	}
	return "n:" + id.value
}

func (id *MatchID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*id = MatchID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MatchID{value: s, isString: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = MatchID{value: n.String()}
	return nil
}

func (id MatchID) MarshalJSON() ([]byte, error) {
	if id.isString {
		return json.Marshal(id.value)
	}
	if id.value == "" {
		return []byte("null"), nil
	}
	return []byte(id.value), nil
}
