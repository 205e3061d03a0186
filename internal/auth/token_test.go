package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", 60)
	now := time.Now()

	tok, err := mgr.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, now.UTC().Add(time.Hour), tok.Exp, time.Second)

	sub, err := mgr.Verify(tok.Token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), sub)
}

func TestVerifyExpired(t *testing.T) {
	mgr := NewManager("test-secret", 60)
	now := time.Now()

	tok, err := mgr.Issue(7, now)
	require.NoError(t, err)

	_, err = mgr.Verify(tok.Token, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyForeignSecret(t *testing.T) {
	issuer := NewManager("secret-a", 60)
	verifier := NewManager("secret-b", 60)
	now := time.Now()

	tok, err := issuer.Issue(7, now)
	require.NoError(t, err)

	_, err = verifier.Verify(tok.Token, now)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyMalformed(t *testing.T) {
	mgr := NewManager("test-secret", 60)
	now := time.Now()

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := mgr.Verify(raw, now)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	// Token declaring alg=none must not pass however it is crafted.
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 1})
	raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	mgr := NewManager("test-secret", 60)
	_, err = mgr.Verify(raw, time.Now())
	assert.Error(t, err)
}

func TestVerifyNonIntegerSubject(t *testing.T) {
	// Correctly signed tokens whose subject is not a whole non-negative
	// number must not map onto some unrelated user ID.
	mgr := NewManager("test-secret", 60)
	now := time.Now()

	for _, sub := range []float64{-1, -0.5, 1.5} {
		claims := jwt.MapClaims{
			"sub": sub,
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = mgr.Verify(raw, now)
		assert.ErrorIs(t, err, ErrMalformed, "sub %v", sub)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	mgr := NewManager("test-secret", 60)
	now := time.Now()

	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = mgr.Verify(raw, now)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestIssueDeterministic(t *testing.T) {
	// Same subject, same instant, same secret -> identical tokens.
	mgr := NewManager("test-secret", 60)
	now := time.Unix(1_700_000_000, 0)

	t1, err := mgr.Issue(9, now)
	require.NoError(t, err)
	t2, err := mgr.Issue(9, now)
	require.NoError(t, err)

	assert.Equal(t, t1.Token, t2.Token)
}
