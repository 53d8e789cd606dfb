package types

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tansive/semverpack/internal/common/apperrors"
)

// ErrSemVerEncoding is returned when a stored or transmitted scalar cannot be
// turned back into a SemVer.
var ErrSemVerEncoding apperrors.Error = apperrors.New("invalid packed version encoding").SetExitCode(2)

// MarshalJSON encodes the packed integer as a JSON number.
func (v SemVer) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, v.packed, 10), nil
}

// UnmarshalJSON decodes a JSON number holding a packed integer. A JSON null
// leaves v unchanged.
func (v *SemVer) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrSemVerEncoding.MsgErr("packed version must be a non-negative JSON integer", err)
	}
	v.packed = raw
	return nil
}

// Value stores the packed integer as an int64 with the same bits. Versions
// with major >= 2^20 therefore appear negative in the database.
func (v SemVer) Value() (driver.Value, error) {
	return int64(v.packed), nil
}

// Scan reads a packed integer written by Value. NULL is rejected; use
// NullableSemVer for nullable columns. On error v is unchanged.
func (v *SemVer) Scan(src any) error {
	if src == nil {
		return ErrSemVerEncoding.Msg("cannot scan NULL into SemVer")
	}
	raw, err := scanPacked(src)
	if err != nil {
		return err
	}
	v.packed = raw
	return nil
}

func scanPacked(src any) (uint64, error) {
	switch s := src.(type) {
	case int64:
		return uint64(s), nil
	case uint64:
		return s, nil
	case []byte:
		return parsePacked(string(s))
	case string:
		return parsePacked(s)
	default:
		return 0, ErrSemVerEncoding.Msg(fmt.Sprintf("cannot scan %T into SemVer", src))
	}
}

// parsePacked accepts the decimal form of either the unsigned packed integer
// or its signed int64 reinterpretation.
func parsePacked(s string) (uint64, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrSemVerEncoding.MsgErr(fmt.Sprintf("cannot scan %q into SemVer", s), err)
	}
	return uint64(i), nil
}

var (
	_ json.Marshaler   = SemVer{}
	_ json.Unmarshaler = &SemVer{}
	_ driver.Valuer    = SemVer{}
	_ sql.Scanner      = &SemVer{}
)
