package session

import (
	"testing"

	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	codec := NewCodec("test-secret")
	sess, err := New(storage.Judge{ID: 7, Username: "gk7"})
	require.NoError(t, err)

	t.Run("Happy path - round trip", func(t *testing.T) {
		token, err := codec.Issue(sess)
		require.NoError(t, err)

		claims, err := codec.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, claims.SessionID)
		assert.Equal(t, 7, claims.JudgeID)
	})

	t.Run("Unhappy path - other secret", func(t *testing.T) {
		token, err := NewCodec("other").Issue(sess)
		require.NoError(t, err)

		_, err = codec.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unhappy path - garbage", func(t *testing.T) {
		_, err := codec.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unhappy path - unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: sess.ID, JudgeID: 7}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = codec.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNew(t *testing.T) {
	a, err := New(storage.Judge{ID: 1})
	require.NoError(t, err)
	b, err := New(storage.Judge{ID: 1})
	require.NoError(t, err)

	assert.Len(t, a.ID, idLength)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Ledger)
}
