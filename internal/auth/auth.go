// Package auth verifies admin identity tokens. Ordinary players are
// unauthenticated by design; the verifier exists only so room creation
// can be tagged with an admin identity for session bookkeeping.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

type AdminIdentity struct {
	UID     string
	IsAdmin bool
}

// Verifier checks HMAC-signed tokens against a secret and an allow-list
// of admin uids. Resolved per request, never cached.
type Verifier struct {
	secret []byte
	admins map[string]struct{}
}

func NewVerifier(secret string, adminUIDs []string) *Verifier {
	admins := make(map[string]struct{}, len(adminUIDs))
	for _, uid := range adminUIDs {
		admins[uid] = struct{}{}
	}
	return &Verifier{secret: []byte(secret), admins: admins}
}

// VerifyAdmin returns the identity carried by the token, or nil when the
// token is absent, malformed, expired or signed with the wrong key. A
// valid token whose subject is not on the allow-list yields IsAdmin=false.
func (v *Verifier) VerifyAdmin(token string) *AdminIdentity {
	if token == "" || len(v.secret) == 0 {
		return nil
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		log.Debug().Str("module", "auth").Err(err).Msg("token rejected")
		return nil
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil
	}
	_, isAdmin := v.admins[claims.Subject]
	return &AdminIdentity{UID: claims.Subject, IsAdmin: isAdmin}
}

// IssueToken signs a token for uid, valid for ttl.
func (v *Verifier) IssueToken(uid string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
