package types

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
)

// NullableSemVer is a SemVer that may be unset, for JSON null and SQL NULL.
type NullableSemVer struct {
	SemVer SemVer
	Valid  bool // Valid is true if SemVer is set
}

// NullableSemVerFrom returns a set NullableSemVer holding v.
func NullableSemVerFrom(v SemVer) NullableSemVer {
	return NullableSemVer{SemVer: v, Valid: true}
}

// NullSemVer returns an unset NullableSemVer.
func NullSemVer() NullableSemVer {
	return NullableSemVer{}
}

func (ns NullableSemVer) IsNil() bool {
	return !ns.Valid
}

// Set assigns v and marks the value as set.
func (ns *NullableSemVer) Set(v SemVer) {
	ns.SemVer = v
	ns.Valid = true
}

// String renders the version, or "" when unset.
func (ns NullableSemVer) String() string {
	if !ns.Valid {
		return ""
	}
	return ns.SemVer.String()
}

func (ns NullableSemVer) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return ns.SemVer.MarshalJSON()
}

// UnmarshalJSON accepts null or a packed integer. On error ns is unchanged.
func (ns *NullableSemVer) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ns = NullSemVer()
		return nil
	}
	var v SemVer
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	ns.Set(v)
	return nil
}

// Value stores NULL when unset, otherwise what SemVer.Value stores.
func (ns NullableSemVer) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}
	return ns.SemVer.Value()
}

// Scan accepts NULL or anything SemVer.Scan accepts. On error ns is
// unchanged.
func (ns *NullableSemVer) Scan(src any) error {
	if src == nil {
		*ns = NullSemVer()
		return nil
	}
	raw, err := scanPacked(src)
	if err != nil {
		return err
	}
	ns.Set(SemVerFromUint64(raw))
	return nil
}

var (
	_ json.Marshaler   = NullableSemVer{}
	_ json.Unmarshaler = &NullableSemVer{}
	_ driver.Valuer    = NullableSemVer{}
	_ sql.Scanner      = &NullableSemVer{}
	_ Nullable         = NullableSemVer{}
)
