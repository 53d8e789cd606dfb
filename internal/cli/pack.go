package cli

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tansive/semverpack/pkg/types"
)

// versionView is the structured output of pack, unpack and set.
type versionView struct {
	Packed  uint64 `json:"packed"`
	Major   uint32 `json:"major"`
	Minor   uint32 `json:"minor"`
	Patch   uint32 `json:"patch"`
	Version string `json:"version"`
}

func newVersionView(v types.SemVer) versionView {
	return versionView{
		Packed:  v.Uint64(),
		Major:   v.Major(),
		Minor:   v.Minor(),
		Patch:   v.Patch(),
		Version: v.String(),
	}
}

var fieldTooLarge = map[string]error{
	"major": types.ErrMajorTooLarge,
	"minor": types.ErrMinorTooLarge,
	"patch": types.ErrPatchTooLarge,
}

// parseField parses a decimal field value. Values that do not even fit in 32
// bits are reported as the field's too-large error, like any other value
// above the field maximum.
func parseField(field, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fieldTooLarge[field]
		}
		return 0, ErrInvalidArgument.Msg(field + " must be a non-negative integer: " + strconv.Quote(s))
	}
	return uint32(n), nil
}

func parsePacked(s string) (types.SemVer, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return types.SemVer{}, ErrInvalidArgument.Msg("packed version must be an unsigned 64-bit integer: " + strconv.Quote(s))
	}
	return types.SemVerFromUint64(n), nil
}

func newPackCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pack MAJOR MINOR PATCH",
		Short: "Pack major, minor and patch into a 64-bit integer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parsed [3]uint32
			for i, field := range []string{"major", "minor", "patch"} {
				n, err := parseField(field, args[i])
				if err != nil {
					return err
				}
				parsed[i] = n
			}

			v, err := types.NewSemVer(parsed[0], parsed[1], parsed[2])
			if err != nil {
				return err
			}
			log.Debug().Str("version", v.String()).Uint64("packed", v.Uint64()).Msg("packed")
			return opts.print(cmd.OutOrStdout(), strconv.FormatUint(v.Uint64(), 10), newVersionView(v))
		},
	}
}

func newUnpackCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack PACKED",
		Short: "Decode a packed 64-bit integer into major.minor.patch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parsePacked(args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), v.String(), newVersionView(v))
		},
	}
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	var major, minor, patch string

	cmd := &cobra.Command{
		Use:   "set PACKED [--major N] [--minor N] [--patch N]",
		Short: "Replace fields of a packed version",
		Long: `Replace one or more fields of a packed version and print the new packed
integer. Fields are applied in the order major, minor, patch; the first
invalid value aborts the command and nothing is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parsePacked(args[0])
			if err != nil {
				return err
			}

			setters := []struct {
				field string
				value string
				set   func(uint32) error
			}{
				{"major", major, v.SetMajor},
				{"minor", minor, v.SetMinor},
				{"patch", patch, v.SetPatch},
			}
			changed := 0
			for _, s := range setters {
				if !cmd.Flags().Changed(s.field) {
					continue
				}
				n, err := parseField(s.field, s.value)
				if err != nil {
					return err
				}
				if err := s.set(n); err != nil {
					return err
				}
				changed++
			}
			if changed == 0 {
				return ErrUsage.Msg("at least one of --major, --minor or --patch is required")
			}

			log.Debug().Str("from", args[0]).Str("version", v.String()).Msg("fields replaced")
			return opts.print(cmd.OutOrStdout(), strconv.FormatUint(v.Uint64(), 10), newVersionView(v))
		},
	}

	cmd.Flags().StringVar(&major, "major", "", "New major version")
	cmd.Flags().StringVar(&minor, "minor", "", "New minor version")
	cmd.Flags().StringVar(&patch, "patch", "", "New patch version")
	return cmd
}
