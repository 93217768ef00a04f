package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgkirkwood/claimtrack/internal/auth"
)

func TestSession_RestoresPersistedUser(t *testing.T) {
	dir := t.TempDir()

	s, err := auth.NewSession(dir)
	require.NoError(t, err)
	assert.Nil(t, s.CurrentUser())

	alice := auth.MockUsers[0]
	require.NoError(t, s.SetCurrentUser(&alice))

	// A fresh session over the same dir sees the same user.
	restored, err := auth.NewSession(dir)
	require.NoError(t, err)
	require.NotNil(t, restored.CurrentUser())
	assert.Equal(t, alice, *restored.CurrentUser())
}

func TestSession_CorruptStateMeansLoggedOut(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "InvalidJSON", content: "invalid-json{{{"},
		{name: "Empty", content: ""},
		{name: "NullLiteral", content: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "currentUser.json"), []byte(tt.content), 0o600))

			s, err := auth.NewSession(dir)
			require.NoError(t, err)
			assert.Nil(t, s.CurrentUser())
			assert.False(t, s.IsSubmitter())
			assert.False(t, s.IsReviewer())
		})
	}
}

func TestSession_LogoutRemovesStoredUser(t *testing.T) {
	dir := t.TempDir()

	s, err := auth.NewSession(dir)
	require.NoError(t, err)

	bob := auth.MockUsers[1]
	require.NoError(t, s.SetCurrentUser(&bob))
	require.NoError(t, s.SetCurrentUser(nil))

	_, statErr := os.Stat(filepath.Join(dir, "currentUser.json"))
	assert.True(t, os.IsNotExist(statErr))

	restored, err := auth.NewSession(dir)
	require.NoError(t, err)
	assert.Nil(t, restored.CurrentUser())
}

func TestSession_RoleFlagsFlipTogether(t *testing.T) {
	dir := t.TempDir()

	s, err := auth.NewSession(dir)
	require.NoError(t, err)

	alice := auth.MockUsers[0]
	require.NoError(t, s.SetCurrentUser(&alice))
	assert.True(t, s.IsSubmitter())
	assert.False(t, s.IsReviewer())

	bob := auth.MockUsers[1]
	require.NoError(t, s.SetCurrentUser(&bob))
	assert.False(t, s.IsSubmitter())
	assert.True(t, s.IsReviewer())
}

func TestSession_UnknownRoleHasNoFlags(t *testing.T) {
	dir := t.TempDir()

	s, err := auth.NewSession(dir)
	require.NoError(t, err)

	require.NoError(t, s.SetCurrentUser(&auth.User{ID: "user-9", Name: "Mallory", Role: "admin"}))
	assert.False(t, s.IsSubmitter())
	assert.False(t, s.IsReviewer())
}

func TestFromContext(t *testing.T) {
	s, err := auth.NewSession(t.TempDir())
	require.NoError(t, err)

	ctx := auth.WithSession(context.Background(), s)
	assert.Same(t, s, auth.FromContext(ctx))

	assert.Panics(t, func() {
		auth.FromContext(context.Background())
	})
}
