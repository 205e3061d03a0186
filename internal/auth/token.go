package auth // package auth holds the credential and token primitives of the service

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and validating signed tokens
)

// Classified verification failures. The middleware maps all of them to
// the same 401 response; the distinction exists for logs and tests only.
var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature invalid")
	ErrExpired      = errors.New("token expired")
)

// AccessToken is a signed JWT access token together with its expiry.
// The Token field contains the serialized JWT handed to the client in
// the login response and presented back in the Authorization header.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Manager issues and verifies HS256 access tokens. It is constructed
// once at startup from the configured secret and TTL and shared by the
// login handler and the auth middleware. It keeps no other state, so a
// single instance is safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager from the signing secret and a TTL given
// in minutes. The caller (config.Load) guarantees the secret is
// non-empty before the process accepts traffic.
func NewManager(secret string, ttlMin int) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMin) * time.Minute,
	}
}

// Issue builds and signs a JWT for a user. The claims carry the subject
// (user ID), issued-at and expiry; nothing else from the request makes
// it into the token. Signing is deterministic for a given payload and
// secret.
func (m *Manager) Issue(userID uint64, now time.Time) (AccessToken, error) {
	exp := now.UTC().Add(m.ttl)
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.UTC().Unix(),
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// Verify parses and validates a presented token string and returns the
// subject user ID. Failures come back as one of the sentinel errors
// above; Verify never panics and never touches stored state. The now
// parameter anchors the expiry check so callers and tests control the
// clock.
func (m *Manager) Verify(raw string, now time.Time) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; an attacker
		// must not be able to pick the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrBadSignature
		default:
			return 0, ErrMalformed
		}
	}
	if !tok.Valid {
		return 0, ErrMalformed
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrMalformed
	}
	// JSON numbers decode as float64; sub may also arrive as a string
	// when tokens were minted by another stack.
	switch sub := claims["sub"].(type) {
	case float64:
		// A negative or fractional subject is no user of ours.
		if sub < 0 || sub != math.Trunc(sub) {
			return 0, ErrMalformed
		}
		return uint64(sub), nil
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return 0, ErrMalformed
		}
		return id, nil
	default:
		return 0, ErrMalformed
	}
}
