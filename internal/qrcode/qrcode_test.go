package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	signer := NewSigner("server-secret")
	passID := uuid.NewString()

	token, err := signer.Encode(passID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := signer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, passID, decoded)
}

func TestDecode_TamperedPassID(t *testing.T) {
	signer := NewSigner("server-secret")

	token, err := signer.Encode(uuid.NewString())
	require.NoError(t, err)

	data, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	var tok Token
	require.NoError(t, json.Unmarshal(data, &tok))

	// Swap in a different pass id, keep the old signature
	tok.PassID = uuid.NewString()
	forged, err := json.Marshal(tok)
	require.NoError(t, err)

	_, err = signer.Decode(base64.RawURLEncoding.EncodeToString(forged))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecode_WrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a").Encode(uuid.NewString())
	require.NoError(t, err)

	_, err = NewSigner("secret-b").Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDecode_Garbage(t *testing.T) {
	signer := NewSigner("server-secret")

	_, err := signer.Decode("%%%not-base64%%%")
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, err = signer.Decode(base64.RawURLEncoding.EncodeToString([]byte("not json")))
	assert.ErrorIs(t, err, ErrMalformedToken)

	_, err = signer.Decode(base64.RawURLEncoding.EncodeToString([]byte(`{"pass_id":"","sig":""}`)))
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestEncode_EmptyPassID(t *testing.T) {
	_, err := NewSigner("server-secret").Encode("")
	assert.ErrorIs(t, err, ErrMalformedToken)
}
