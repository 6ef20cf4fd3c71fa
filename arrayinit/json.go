package arrayinit

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSON encodes empty positions as null.
func (a *Array[T]) MarshalJSON() ([]byte, error) {

	b := &bytes.Buffer{}
	e := jsontext.NewEncoder(b)

	if err := e.WriteToken(jsontext.BeginArray); err != nil {
		return nil, err
	}
	for i := range a.slots {
		if a.slots[i].state != slotDefined {
			if err := e.WriteToken(jsontext.Null); err != nil {
				return nil, err
			}
			continue
		}
		if err := json.MarshalEncode(e, a.slots[i].value); err != nil {
			return nil, err
		}
	}
	if err := e.WriteToken(jsontext.EndArray); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON takes its length from the JSON array; null items become
// empty positions.
func (a *Array[T]) UnmarshalJSON(data []byte) error {

	items := []jsontext.Value{}
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	slots := make([]slot[T], len(items))
	for i, item := range items {
		if item.Kind() == 'n' {
			continue
		}
		if err := json.Unmarshal(item, &slots[i].value); err != nil {
			return err
		}
		slots[i].state = slotDefined
	}

	a.slots = slots
	return nil
}
