package authcrypto

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2ppsr/myac/internal/certificate"
)

const testTypeID = "jVNgF8+rifnz00856b4TkThCAvfiUE4p+t/aHYl1u0c="

func newTestCertifier(t *testing.T) *Certifier {
	t.Helper()
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	c, err := New(hex.EncodeToString(priv.Serialize()))
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadKeys(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	_, err = New("abcd")
	assert.Error(t, err)

	_, err = New(PlaceholderPrivateKey)
	assert.Error(t, err)

	_, err = New(strings.Repeat("zz", 32))
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	certifier := newTestCertifier(t)

	subjectPriv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	subject := subjectPriv.PubKey().ToDERHex()

	certifierPub, err := ec.PublicKeyFromString(certifier.PublicKey())
	require.NoError(t, err)

	plaintext := map[string]string{
		"domain":   "twitter.com",
		"identity": "@bob",
		"when":     "2023-01-06T15:02:01.772Z",
		"stake":    "$100",
	}

	fields, keyring, err := EncryptFields(subjectPriv, certifierPub, plaintext)
	require.NoError(t, err)
	require.Len(t, fields, 4)
	require.Len(t, keyring, 4)

	decrypted, err := certifier.DecryptFields(context.Background(), fields, keyring, subject)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptFields_TamperedKeyring(t *testing.T) {
	certifier := newTestCertifier(t)

	subjectPriv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	certifierPub, err := ec.PublicKeyFromString(certifier.PublicKey())
	require.NoError(t, err)

	fields, keyring, err := EncryptFields(subjectPriv, certifierPub, map[string]string{"domain": "twitter.com"})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(keyring["domain"])
	require.NoError(t, err)
	raw[0] ^= 0xff
	keyring["domain"] = base64.StdEncoding.EncodeToString(raw)

	_, err = certifier.DecryptFields(context.Background(), fields, keyring, subjectPriv.PubKey().ToDERHex())
	assert.Error(t, err)
}

func TestDecryptFields_MissingKeyringEntry(t *testing.T) {
	certifier := newTestCertifier(t)

	subjectPriv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	_, err = certifier.DecryptFields(context.Background(),
		map[string]string{"domain": "aGVsbG8="},
		map[string]string{},
		subjectPriv.PubKey().ToDERHex())
	assert.Error(t, err)
}

func testPayload(t *testing.T, subject string) *certificate.CertificatePayload {
	t.Helper()
	serial, err := NewNonce()
	require.NoError(t, err)
	validationKey, err := NewNonce()
	require.NoError(t, err)

	return &certificate.CertificatePayload{
		Type:               testTypeID,
		Subject:            subject,
		ValidationKey:      validationKey,
		SerialNumber:       serial,
		RevocationOutpoint: certificate.UnexpirableRevocationOutpoint,
		Fields: map[string]string{
			"domain": "Y2lwaGVydGV4dA==",
			"stake":  "bW9yZSBjaXBoZXJ0ZXh0",
		},
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	certifier := newTestCertifier(t)

	subjectPriv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	payload := testPayload(t, subjectPriv.PubKey().ToDERHex())

	sig, err := certifier.SignCertificate(context.Background(), payload)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	require.NoError(t, certifier.VerifyCertificate(context.Background(), payload, sig))

	// Any change to the signed content must invalidate the signature.
	payload.Fields["domain"] = "ZGlmZmVyZW50"
	assert.Error(t, certifier.VerifyCertificate(context.Background(), payload, sig))
}

func TestVerifyCertificate_WrongCertifier(t *testing.T) {
	certifier := newTestCertifier(t)
	other := newTestCertifier(t)

	subjectPriv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	payload := testPayload(t, subjectPriv.PubKey().ToDERHex())

	sig, err := certifier.SignCertificate(context.Background(), payload)
	require.NoError(t, err)

	assert.Error(t, other.VerifyCertificate(context.Background(), payload, sig))
}

func TestValidateCSRShape(t *testing.T) {
	certifier := newTestCertifier(t)
	expected := []string{"domain", "stake"}

	valid := func() *certificate.SignCertificateCommand {
		return &certificate.SignCertificateCommand{
			Type:                  testTypeID,
			ClientNonce:           "VhQ3UUGl4L76T9v3M2YLd/Es25CEwAAoGTowblLtM3s=",
			ServerSerialNonce:     "BCJDJ1Bf1nu4qrE9j27lEZLxEEQ/meWESfHuX2vGlGQ=",
			ServerValidationNonce: "H2/nAFdua/kktwXmYBn/MMgbfE9ckT3zEB6xzKhx7EM=",
			ValidationKey:         "i0P2MiTG/gt1Q0aUjAfmUp0i9vIq8YEzC5FAYPzE1PU=",
			SerialNumber:          "zFpvOxvuewvvUnmE4DncNHELvlTUVs0bVOK/Z9KR3tc=",
			Fields:                map[string]string{"domain": "YQ==", "stake": "Yg=="},
			Keyring:               map[string]string{"domain": "aw==", "stake": "bA=="},
		}
	}

	require.NoError(t, certifier.ValidateCSRShape(valid(), expected))

	t.Run("missing type", func(t *testing.T) {
		cmd := valid()
		cmd.Type = ""
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})

	t.Run("missing nonce", func(t *testing.T) {
		cmd := valid()
		cmd.ClientNonce = ""
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})

	t.Run("serial not base64", func(t *testing.T) {
		cmd := valid()
		cmd.SerialNumber = "!!!not base64!!!"
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})

	t.Run("missing field ciphertext", func(t *testing.T) {
		cmd := valid()
		delete(cmd.Fields, "stake")
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})

	t.Run("missing keyring entry", func(t *testing.T) {
		cmd := valid()
		delete(cmd.Keyring, "domain")
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})

	t.Run("oversized field value", func(t *testing.T) {
		cmd := valid()
		cmd.Fields["domain"] = strings.Repeat("A", 2049)
		assert.Error(t, certifier.ValidateCSRShape(cmd, expected))
	})
}
