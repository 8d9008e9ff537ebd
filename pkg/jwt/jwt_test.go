package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenService_SignAndParse(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Minute)
	assert.Equal(t, time.Minute, svc.Expiry())

	token, err := svc.Sign("sid-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sid, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestSessionTokenService_ParseInvalidToken(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Minute)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenService_TamperedSignature(t *testing.T) {
	signer := NewSessionTokenService("other-secret", time.Minute)
	token, err := signer.Sign("sid-123")
	assert.NoError(t, err)

	svc := NewSessionTokenService("secret", time.Minute)
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	good, err := svc.Sign("sid-123")
	assert.NoError(t, err)
	_, err = svc.Parse(good[:len(good)-2] + "xx")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenService_ExpiredToken(t *testing.T) {
	svc := NewSessionTokenService("secret", -time.Second)

	token, err := svc.Sign("sid-old")
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionTokenService_WrongSigningMethodAndMissingSID(t *testing.T) {
	svc := NewSessionTokenService("secret", time.Minute)

	claims := gjwt.MapClaims{
		"sid": "sid-none",
		"iss": issuer,
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSID := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.MapClaims{
		"iss": issuer,
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	tokenStr, err = noSID.SignedString([]byte("secret"))
	assert.NoError(t, err)
	_, err = svc.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongIssuer := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.MapClaims{
		"sid": "sid-x",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	tokenStr, err = wrongIssuer.SignedString([]byte("secret"))
	assert.NoError(t, err)
	_, err = svc.Parse(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenService_SignHookError(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gjwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewSessionTokenService("secret", time.Minute)
	_, err := svc.Sign("sid")
	assert.Error(t, err)
}
