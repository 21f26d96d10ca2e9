package extract

import (
	"encoding/json"
	"fmt"
)

// FormRecord is a single (code, name) pair describing one form of an entry.
// Its JSON representation is the two-element array ["code", "name"], the
// same shape the source literal uses.
type FormRecord struct {
	Code string
	Name string
}

// MarshalJSON renders the record as a two-element string array.
func (f FormRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{f.Code, f.Name})
}

// UnmarshalJSON accepts the two-element array form.
func (f *FormRecord) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("form record must have exactly 2 elements, got %d", len(pair))
	}
	f.Code = pair[0]
	f.Name = pair[1]
	return nil
}

// EntryMap maps a numeric identifier (kept in string form) to the ordered
// list of forms declared for it. Identifiers are not required to be
// contiguous, and a duplicate identifier overwrites the earlier value.
type EntryMap map[string][]FormRecord
