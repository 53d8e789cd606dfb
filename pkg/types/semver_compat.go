package types

import (
	"github.com/Masterminds/semver/v3"
)

// ErrUnpackable is returned when a semver.Version carries parts the packed
// layout has no room for.
var ErrUnpackable = ErrSemVer.New("version has prerelease or build metadata and cannot be packed")

// Semver returns v as a Masterminds semver.Version with no prerelease or
// metadata.
func (v SemVer) Semver() *semver.Version {
	return semver.New(uint64(v.Major()), uint64(v.Minor()), uint64(v.Patch()), "", "")
}

// SemVerFromSemver packs an already parsed semver.Version. Range checks follow
// NewSemVer: major, then minor, then patch.
func SemVerFromSemver(sv *semver.Version) (SemVer, error) {
	if sv == nil {
		return SemVer{}, ErrSemVer.Msg("nil version")
	}
	if sv.Major() > uint64(MaxMajor) {
		return SemVer{}, ErrMajorTooLarge
	}
	if sv.Minor() > uint64(MaxMinor) {
		return SemVer{}, ErrMinorTooLarge
	}
	if sv.Patch() > uint64(MaxPatch) {
		return SemVer{}, ErrPatchTooLarge
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return SemVer{}, ErrUnpackable
	}
	return NewSemVer(uint32(sv.Major()), uint32(sv.Minor()), uint32(sv.Patch()))
}
