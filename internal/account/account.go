// Package account holds the login and user-source records that carry a packed
// schema version.
package account

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tansive/semverpack/internal/common/apperrors"
	"github.com/tansive/semverpack/internal/common/uuid"
	"github.com/tansive/semverpack/pkg/types"
)

// LoginSchemaVersion is stamped on every Login created by NewLogin.
var LoginSchemaVersion = types.MustNewSemVer(1, 0, 0)

var (
	ErrAccount        apperrors.Error = apperrors.New("account error").SetExitCode(2)
	ErrUnknownService apperrors.Error = ErrAccount.New("unknown login service")
	ErrInvalidLogin   apperrors.Error = ErrAccount.New("invalid login").SetExpandError(true)
	ErrInvalidSource  apperrors.Error = ErrAccount.New("invalid user source").SetExpandError(true)
)

// Service identifies the provider a user authenticated with.
type Service int

const (
	ServiceLocal Service = iota
	ServiceGitHub
)

var serviceLabels = map[Service]string{
	ServiceLocal:  "Local",
	ServiceGitHub: "GitHub",
}

// String returns the display label of s.
func (s Service) String() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// IsValid reports whether s is a known service.
func (s Service) IsValid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// ServiceFromString looks a service up by label, ignoring case.
func ServiceFromString(label string) (Service, error) {
	for s, l := range serviceLabels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return s, nil
		}
	}
	return 0, ErrUnknownService.Msg("unknown login service: " + label)
}

// UserSource describes where a user account originates.
type UserSource struct {
	ID         uint64 `json:"id"`
	Domain     string `json:"domain" validate:"required,hostname_rfc1123"`
	Authorised bool   `json:"authorised"`
	Banned     bool   `json:"banned"`
}

// CanLogin reports whether users from this source may log in.
func (us UserSource) CanLogin() bool {
	return us.Authorised && !us.Banned
}

func (us UserSource) Validate() error {
	if err := validate().Struct(us); err != nil {
		return ErrInvalidSource.Err(err)
	}
	return nil
}

// Login links an identity at a Service to a local user.
type Login struct {
	ID            uuid.UUID    `json:"id" validate:"required"`
	Service       Service      `json:"service" validate:"service"`
	ServiceUser   string       `json:"service_user" validate:"required,noSpaces"`
	UserID        uuid.UUID    `json:"user_id" validate:"required"`
	SchemaVersion types.SemVer `json:"schema_version"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewLogin returns a validated Login with a fresh time-ordered ID and the
// current LoginSchemaVersion.
func NewLogin(service Service, serviceUser string, userID uuid.UUID) (*Login, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, ErrInvalidLogin.Msg("unable to generate login id").Err(err)
	}
	l := &Login{
		ID:            id,
		Service:       service,
		ServiceUser:   serviceUser,
		UserID:        userID,
		SchemaVersion: LoginSchemaVersion,
		CreatedAt:     uuid.Timestamp(id),
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("login_id", l.ID.String()).
		Str("service", l.Service.String()).
		Str("schema_version", l.SchemaVersion.String()).
		Msg("login created")
	return l, nil
}

func (l *Login) Validate() error {
	if err := validate().Struct(l); err != nil {
		return ErrInvalidLogin.Err(err)
	}
	return nil
}
