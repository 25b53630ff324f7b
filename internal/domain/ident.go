package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ident is an identifier the backend sends either as a JSON string or as a
// JSON number. Both decode to the same textual form.
type Ident string

// UnmarshalJSON implements json.Unmarshaler.
func (id *Ident) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Ident(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = Ident(n.String())
	return nil
}

func (id Ident) String() string {
	return string(id)
}
