package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansive/semverpack/internal/common/uuid"
	"github.com/tansive/semverpack/pkg/types"
)

func TestServiceLabels(t *testing.T) {
	assert.Equal(t, "Local", ServiceLocal.String())
	assert.Equal(t, "GitHub", ServiceGitHub.String())
	assert.Equal(t, "Unknown", Service(42).String())
	assert.False(t, Service(42).IsValid())

	tests := []struct {
		in   string
		want Service
	}{
		{"Local", ServiceLocal},
		{"local", ServiceLocal},
		{"GitHub", ServiceGitHub},
		{" github ", ServiceGitHub},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ServiceFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}

	_, err := ServiceFromString("gitlab")
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.ErrorIs(t, err, ErrAccount)
}

func TestUserSource(t *testing.T) {
	src := UserSource{ID: 1, Domain: "example.com", Authorised: true}
	require.NoError(t, src.Validate())
	assert.True(t, src.CanLogin())

	src.Banned = true
	assert.False(t, src.CanLogin())

	src = UserSource{ID: 2, Domain: "example.com"}
	assert.False(t, src.CanLogin())

	src.Domain = ""
	assert.ErrorIs(t, src.Validate(), ErrInvalidSource)

	src.Domain = "not a domain"
	assert.ErrorIs(t, src.Validate(), ErrInvalidSource)
}

func TestNewLogin(t *testing.T) {
	userID := uuid.New()

	l, err := NewLogin(ServiceGitHub, "octocat", userID)
	require.NoError(t, err)
	assert.True(t, uuid.IsUUIDv7(l.ID))
	assert.Equal(t, ServiceGitHub, l.Service)
	assert.Equal(t, "octocat", l.ServiceUser)
	assert.Equal(t, userID, l.UserID)
	assert.Equal(t, LoginSchemaVersion, l.SchemaVersion)
	assert.Equal(t, "1.0.0", l.SchemaVersion.String())
	assert.Equal(t, uuid.Timestamp(l.ID), l.CreatedAt)

	other, err := NewLogin(ServiceGitHub, "octocat", userID)
	require.NoError(t, err)
	assert.NotEqual(t, l.ID, other.ID)
}

func TestNewLoginValidation(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name        string
		service     Service
		serviceUser string
		userID      uuid.UUID
	}{
		{"unknown service", Service(7), "octocat", userID},
		{"empty service user", ServiceLocal, "", userID},
		{"service user with spaces", ServiceLocal, "octo cat", userID},
		{"nil user id", ServiceLocal, "octocat", uuid.Nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogin(tt.service, tt.serviceUser, tt.userID)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrInvalidLogin)
		})
	}
}

func TestLoginJSON(t *testing.T) {
	l, err := NewLogin(ServiceLocal, "alice", uuid.New())
	require.NoError(t, err)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, l.ID.String(), m["id"])
	assert.EqualValues(t, LoginSchemaVersion.Uint64(), m["schema_version"])

	var decoded Login
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, l.SchemaVersion, decoded.SchemaVersion)
	assert.Equal(t, l.ID, decoded.ID)
	require.NoError(t, decoded.Validate())
}

func TestLoginSchemaVersionIsMutableCopy(t *testing.T) {
	l, err := NewLogin(ServiceLocal, "alice", uuid.New())
	require.NoError(t, err)

	require.NoError(t, l.SchemaVersion.SetMinor(1))
	assert.Equal(t, "1.1.0", l.SchemaVersion.String())
	assert.Equal(t, types.MustNewSemVer(1, 0, 0), LoginSchemaVersion)
}
