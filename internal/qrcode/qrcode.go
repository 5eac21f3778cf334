package qrcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
)

var (
	ErrMalformedToken   = errors.New("malformed qr token")
	ErrInvalidSignature = errors.New("invalid qr token signature")
)

// Token is the payload encoded into a pass's QR code. The signature is an
// HMAC over the pass id keyed with a server-held secret, so holders cannot
// forge tokens for other pass ids.
type Token struct {
	PassID    string `json:"pass_id"`
	Signature string `json:"sig"`
}

type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) sign(passID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(passID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Encode produces the canonical QR payload for a pass: base64url-encoded
// JSON of the pass id and its signature.
func (s *Signer) Encode(passID string) (string, error) {
	if passID == "" {
		return "", ErrMalformedToken
	}

	data, err := json.Marshal(Token{
		PassID:    passID,
		Signature: s.sign(passID),
	})
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode verifies a scanned QR payload and returns the pass id it carries.
func (s *Signer) Decode(encoded string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMalformedToken
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return "", ErrMalformedToken
	}
	if token.PassID == "" || token.Signature == "" {
		return "", ErrMalformedToken
	}

	expected := s.sign(token.PassID)
	if !hmac.Equal([]byte(token.Signature), []byte(expected)) {
		return "", ErrInvalidSignature
	}

	return token.PassID, nil
}
