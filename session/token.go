package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "aic-judges"

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	SessionID string `json:"sid"`
	JudgeID   int    `json:"judge_id"`
	jwt.RegisteredClaims
}

// Codec signs the session cookie. Tokens carry no expiry, a session lives until logout.
type Codec struct {
	hmac []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{hmac: []byte(secret)}
}

func (c *Codec) Issue(s *Session) (string, error) {
	claims := &Claims{
		SessionID: s.ID,
		JudgeID:   s.Judge.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.hmac)
}

func (c *Codec) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
