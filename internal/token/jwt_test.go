package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	u := uuid.New()

	tok, err := j.SignToken("alice", u)
	require.NoError(t, err)

	got, err := j.ParseToken(tok)
	require.NoError(t, err)
	require.Equal(t, u, got.UserID)
	require.Equal(t, "alice", got.Username)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok, err := NewJWT("secret", time.Hour).SignToken("alice", uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).ParseToken(tok)
	require.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	j.now = func() time.Time { return issued }

	tok, err := j.SignToken("alice", uuid.New())
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.ParseToken(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).ParseToken("not-a-token")
	require.Error(t, err)
}

func TestJWT_NilUserID(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	tok, err := j.SignToken("ghost", uuid.Nil)
	require.NoError(t, err)

	_, err = j.ParseToken(tok)
	require.Error(t, err)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Data: Data{Username: "mallory", ID: uuid.New()}})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).ParseToken(s)
	require.Error(t, err)
}
