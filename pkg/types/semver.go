package types

import (
	"fmt"

	"github.com/tansive/semverpack/internal/common/apperrors"
)

// Field widths of the packed layout. Together they fill all 64 bits, so every
// uint64 decodes to a valid version.
const (
	MajorBits = 21
	MinorBits = 21
	PatchBits = 22
)

// Field offsets, counted from the least significant bit.
const (
	patchShift = 0
	minorShift = patchShift + PatchBits // 22
	majorShift = minorShift + MinorBits // 43
)

// Largest value each field can hold.
const (
	MaxMajor uint32 = 1<<MajorBits - 1 // 2,097,151
	MaxMinor uint32 = 1<<MinorBits - 1 // 2,097,151
	MaxPatch uint32 = 1<<PatchBits - 1 // 4,194,303
)

const (
	majorMask = uint64(MaxMajor)
	minorMask = uint64(MaxMinor)
	patchMask = uint64(MaxPatch)
)

var (
	ErrSemVer        apperrors.Error = apperrors.New("invalid semantic version").SetExitCode(2)
	ErrMajorTooLarge apperrors.Error = ErrSemVer.New(fmt.Sprintf("major version exceeds %d", MaxMajor))
	ErrMinorTooLarge apperrors.Error = ErrSemVer.New(fmt.Sprintf("minor version exceeds %d", MaxMinor))
	ErrPatchTooLarge apperrors.Error = ErrSemVer.New(fmt.Sprintf("patch version exceeds %d", MaxPatch))
)

// SemVer is a major.minor.patch version packed into a single uint64:
//
//	bits 43-63  major (21 bits)
//	bits 22-42  minor (21 bits)
//	bits  0-21  patch (22 bits)
//
// Two SemVers are equal exactly when their packed integers are equal, so ==
// is the equality test. The zero value is 0.0.0. SemVer carries no locking;
// callers that share one across goroutines must synchronise the setters.
type SemVer struct {
	packed uint64
}

// NewSemVer packs major, minor and patch. Fields are checked in that order and
// only the first out-of-range field is reported.
func NewSemVer(major, minor, patch uint32) (SemVer, error) {
	if major > MaxMajor {
		return SemVer{}, ErrMajorTooLarge
	}
	if minor > MaxMinor {
		return SemVer{}, ErrMinorTooLarge
	}
	if patch > MaxPatch {
		return SemVer{}, ErrPatchTooLarge
	}
	return SemVer{
		packed: uint64(major)<<majorShift | uint64(minor)<<minorShift | uint64(patch)<<patchShift,
	}, nil
}

// MustNewSemVer is NewSemVer for package-level values; it panics on error.
func MustNewSemVer(major, minor, patch uint32) SemVer {
	v, err := NewSemVer(major, minor, patch)
	if err != nil {
		panic(err)
	}
	return v
}

// SemVerFromUint64 reinterprets a packed integer as a SemVer.
func SemVerFromUint64(raw uint64) SemVer {
	return SemVer{packed: raw}
}

// Uint64 returns the packed integer.
func (v SemVer) Uint64() uint64 {
	return v.packed
}

// Major returns the major field (bits 43-63).
func (v SemVer) Major() uint32 {
	return uint32(v.packed >> majorShift)
}

// Minor returns the minor field (bits 22-42).
func (v SemVer) Minor() uint32 {
	return uint32((v.packed >> minorShift) & minorMask)
}

// Patch returns the patch field (bits 0-21).
func (v SemVer) Patch() uint32 {
	return uint32(v.packed & patchMask)
}

// SetMajor replaces the major field. On error v is unchanged.
func (v *SemVer) SetMajor(major uint32) error {
	if major > MaxMajor {
		return ErrMajorTooLarge
	}
	v.setField(major, majorMask, majorShift)
	return nil
}

// SetMinor replaces the minor field. On error v is unchanged.
func (v *SemVer) SetMinor(minor uint32) error {
	if minor > MaxMinor {
		return ErrMinorTooLarge
	}
	v.setField(minor, minorMask, minorShift)
	return nil
}

// SetPatch replaces the patch field. On error v is unchanged.
func (v *SemVer) SetPatch(patch uint32) error {
	if patch > MaxPatch {
		return ErrPatchTooLarge
	}
	v.setField(patch, patchMask, patchShift)
	return nil
}

// setField clears the bits under mask<<shift and writes value there. value
// must already fit in mask.
func (v *SemVer) setField(value uint32, mask uint64, shift uint) {
	v.packed = v.packed&^(mask<<shift) | uint64(value)<<shift
}

// String renders the version as "major.minor.patch".
func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

var _ fmt.Stringer = SemVer{}
