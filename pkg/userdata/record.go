package userdata

import (
	"encoding/json"
	"errors"
	"maps"
	"time"
)

// DefaultKey is the key the record is stored under.
const DefaultKey = "userData"

// Record is the persisted user data: the submitted form fields plus the
// moment the user registered.
type Record struct {
	Fields           map[string]string `json:"fields"`
	RegistrationDate time.Time         `json:"registrationDate"`
}

// NewRecord creates a record registered at now.
func NewRecord(fields map[string]string, now time.Time) Record {
	return Record{Fields: maps.Clone(fields), RegistrationDate: now.UTC()}
}

// Get returns a field value, or "" when absent.
func (r Record) Get(field string) string {
	return r.Fields[field]
}

// Merge overlays patch onto r. The registration date is kept.
func Merge(r Record, patch map[string]string) Record {
	fields := make(map[string]string, len(r.Fields)+len(patch))
	maps.Copy(fields, r.Fields)
	maps.Copy(fields, patch)
	return Record{Fields: fields, RegistrationDate: r.RegistrationDate}
}

func encode(r Record) ([]byte, error) {
	if r.Fields == nil {
		r.Fields = map[string]string{}
	}
	return json.Marshal(r)
}

func decode(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Join(ErrCorruptedRecord, err)
	}
	if r.Fields == nil {
		r.Fields = map[string]string{}
	}
	return &r, nil
}
