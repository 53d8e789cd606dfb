package types

import (
	"encoding/json"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemVerJSON(t *testing.T) {
	type record struct {
		Schema SemVer `json:"schema"`
	}

	data, err := json.Marshal(record{Schema: semver123})
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema":8796101410819}`, string(data))

	var r record
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, semver123, r.Schema)

	all := MustNewSemVer(MaxMajor, MaxMinor, MaxPatch)
	data, err = json.Marshal(all)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", string(data))

	var v SemVer
	require.NoError(t, json.Unmarshal(data, &v))
	assert.Equal(t, all, v)
}

func TestSemVerUnmarshalJSONErrors(t *testing.T) {
	for _, in := range []string{`-1`, `1.5`, `"1.2.3"`, `{}`, `18446744073709551616`} {
		t.Run(in, func(t *testing.T) {
			v := semver123
			err := v.UnmarshalJSON([]byte(in))
			assert.ErrorIs(t, err, ErrSemVerEncoding)
			assert.Equal(t, semver123, v)
		})
	}

	v := semver123
	require.NoError(t, v.UnmarshalJSON([]byte("null")))
	assert.Equal(t, semver123, v)
}

func TestSemVerSQL(t *testing.T) {
	val, err := semver123.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(8796101410819), val)

	var v SemVer
	require.NoError(t, v.Scan(val))
	assert.Equal(t, semver123, v)

	big := MustNewSemVer(MaxMajor, 0, 1)
	val, err = big.Value()
	require.NoError(t, err)
	assert.Less(t, val.(int64), int64(0))

	v = SemVer{}
	require.NoError(t, v.Scan(val))
	assert.Equal(t, big, v)
}

func TestSemVerScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want SemVer
	}{
		{"int64", int64(8796101410819), semver123},
		{"uint64", uint64(8796101410819), semver123},
		{"bytes", []byte("8796101410819"), semver123},
		{"string", "8796101410819", semver123},
		{"negative string", "-1", MustNewSemVer(MaxMajor, MaxMinor, MaxPatch)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v SemVer
			require.NoError(t, v.Scan(tt.src))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSemVerScanErrors(t *testing.T) {
	for name, src := range map[string]any{
		"nil":     nil,
		"float":   1.5,
		"bool":    true,
		"text":    "1.2.3",
		"garbage": []byte("abc"),
	} {
		t.Run(name, func(t *testing.T) {
			v := semver123
			err := v.Scan(src)
			assert.ErrorIs(t, err, ErrSemVerEncoding)
			assert.Equal(t, semver123, v)
		})
	}
}

func TestNullableSemVer(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		ns := NullSemVer()
		assert.True(t, ns.IsNil())
		assert.Equal(t, "", ns.String())

		data, err := json.Marshal(ns)
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		val, err := ns.Value()
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set", func(t *testing.T) {
		var ns NullableSemVer
		ns.Set(semver123)
		assert.False(t, ns.IsNil())
		assert.Equal(t, "1.2.3", ns.String())
		assert.Equal(t, NullableSemVerFrom(semver123), ns)

		data, err := json.Marshal(ns)
		require.NoError(t, err)
		assert.Equal(t, "8796101410819", string(data))

		val, err := ns.Value()
		require.NoError(t, err)
		assert.Equal(t, int64(8796101410819), val)
	})

	t.Run("unmarshal", func(t *testing.T) {
		var ns NullableSemVer
		require.NoError(t, json.Unmarshal([]byte("8796101410819"), &ns))
		assert.Equal(t, NullableSemVerFrom(semver123), ns)

		require.NoError(t, json.Unmarshal([]byte("null"), &ns))
		assert.True(t, ns.IsNil())

		ns = NullableSemVerFrom(semver123)
		assert.Error(t, json.Unmarshal([]byte(`"x"`), &ns))
		assert.Equal(t, NullableSemVerFrom(semver123), ns)
	})

	t.Run("scan", func(t *testing.T) {
		ns := NullableSemVerFrom(semver123)
		require.NoError(t, ns.Scan(nil))
		assert.True(t, ns.IsNil())

		require.NoError(t, ns.Scan(int64(8796101410819)))
		assert.Equal(t, NullableSemVerFrom(semver123), ns)

		assert.ErrorIs(t, ns.Scan(1.5), ErrSemVerEncoding)
		assert.Equal(t, NullableSemVerFrom(semver123), ns)
	})
}

func TestSemverInterop(t *testing.T) {
	sv := semver123.Semver()
	assert.Equal(t, "1.2.3", sv.String())

	v, err := SemVerFromSemver(sv)
	require.NoError(t, err)
	assert.Equal(t, semver123, v)

	tests := []struct {
		name string
		in   *semver.Version
		want error
	}{
		{"major", semver.New(uint64(MaxMajor)+1, 0, 0, "", ""), ErrMajorTooLarge},
		{"minor", semver.New(0, uint64(MaxMinor)+1, 0, "", ""), ErrMinorTooLarge},
		{"patch", semver.New(0, 0, uint64(MaxPatch)+1, "", ""), ErrPatchTooLarge},
		{"major beyond uint32", semver.New(1<<40, 0, 0, "", ""), ErrMajorTooLarge},
		{"prerelease", semver.New(1, 2, 3, "alpha.1", ""), ErrUnpackable},
		{"metadata", semver.New(1, 2, 3, "", "build.5"), ErrUnpackable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := SemVerFromSemver(tt.in)
			assert.Equal(t, tt.want, err)
			assert.Equal(t, SemVer{}, v)
		})
	}

	_, err = SemVerFromSemver(nil)
	assert.ErrorIs(t, err, ErrSemVer)
}
