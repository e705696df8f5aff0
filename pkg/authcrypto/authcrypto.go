// Package authcrypto implements the certifier's cryptographic operations on
// top of the BSV SDK primitives: ECDH-protected field keyrings, symmetric
// field encryption and ECDSA certificate signatures over a canonical binary
// payload.
package authcrypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	hash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"github.com/pkg/errors"

	"github.com/p2ppsr/myac/internal/certificate"
	models "github.com/p2ppsr/myac/internal/certificate/model"
)

// PlaceholderPrivateKey is the well-known default key shipped in sample
// configuration. Refusing it at startup prevents accidentally certifying
// with a key the whole world holds.
const PlaceholderPrivateKey = "0000000000000000000000000000000000000000000000000000000000000001"

const privateKeyHexLen = 64

// Certifier holds the issuer key pair and implements
// certificate.CryptoAdapter.
type Certifier struct {
	privateKey *ec.PrivateKey
	publicKey  *ec.PublicKey
}

func New(privateKeyHex string) (*Certifier, error) {
	if len(privateKeyHex) != privateKeyHexLen {
		return nil, errors.Errorf("certifier private key must be %d hex characters", privateKeyHexLen)
	}
	if privateKeyHex == PlaceholderPrivateKey {
		return nil, errors.New("certifier private key is still the placeholder value, configure a real key")
	}

	raw, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "certifier private key is not valid hex")
	}

	priv, pub := ec.PrivateKeyFromBytes(raw)
	return &Certifier{privateKey: priv, publicKey: pub}, nil
}

// PublicKey returns the issuer identity key as compressed DER hex.
func (c *Certifier) PublicKey() string {
	return c.publicKey.ToDERHex()
}

// ValidateCSRShape checks the structural requirements of a signing request:
// protocol material present, and a ciphertext/keyring pair for every
// expected field within the storable size bound.
func (c *Certifier) ValidateCSRShape(cmd *certificate.SignCertificateCommand, expectedFields []string) error {
	if cmd.Type == "" {
		return errors.New("missing certificate type")
	}
	for name, value := range map[string]string{
		"clientNonce":           cmd.ClientNonce,
		"serverSerialNonce":     cmd.ServerSerialNonce,
		"serverValidationNonce": cmd.ServerValidationNonce,
		"validationKey":         cmd.ValidationKey,
		"serialNumber":          cmd.SerialNumber,
	} {
		if value == "" {
			return errors.Errorf("missing %s", name)
		}
		if _, err := base64.StdEncoding.DecodeString(value); err != nil {
			return errors.Errorf("%s is not valid base64", name)
		}
	}

	for _, name := range expectedFields {
		ciphertext, ok := cmd.Fields[name]
		if !ok || ciphertext == "" {
			return errors.Errorf("missing ciphertext for field %q", name)
		}
		if len(ciphertext) > models.MaxFieldValueLen {
			return errors.Errorf("field %q exceeds the maximum encoded length of %d", name, models.MaxFieldValueLen)
		}
		if key, ok := cmd.Keyring[name]; !ok || key == "" {
			return errors.Errorf("missing keyring entry for field %q", name)
		}
	}
	return nil
}

// DecryptFields recovers the plaintext of every submitted field. Each
// keyring entry is decrypted with the ECDH secret shared between the issuer
// key and the subject's identity key, revealing the per-field symmetric key
// that decrypts the ciphertext.
func (c *Certifier) DecryptFields(_ context.Context, fields, keyring map[string]string, subject string) (map[string]string, error) {
	subjectKey, err := ec.PublicKeyFromString(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject identity key")
	}

	keyringCipher, err := c.sharedKey(subjectKey)
	if err != nil {
		return nil, err
	}

	decrypted := make(map[string]string, len(fields))
	for name, ciphertext := range fields {
		encryptedKey, ok := keyring[name]
		if !ok {
			return nil, errors.Errorf("no keyring entry for field %q", name)
		}

		keyBytes, err := base64.StdEncoding.DecodeString(encryptedKey)
		if err != nil {
			return nil, errors.Wrapf(err, "keyring entry for field %q is not valid base64", name)
		}
		revelationKey, err := keyringCipher.Decrypt(keyBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decrypt field key for %q", name)
		}

		valueBytes, err := base64.StdEncoding.DecodeString(ciphertext)
		if err != nil {
			return nil, errors.Wrapf(err, "ciphertext for field %q is not valid base64", name)
		}
		plaintext, err := ec.NewSymmetricKey(revelationKey).Decrypt(valueBytes)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decrypt field %q", name)
		}

		decrypted[name] = string(plaintext)
	}
	return decrypted, nil
}

// SignCertificate signs the canonical payload with the issuer key and
// returns the DER signature as hex.
func (c *Certifier) SignCertificate(_ context.Context, payload *certificate.CertificatePayload) (string, error) {
	data, err := canonicalPayload(payload, c.publicKey)
	if err != nil {
		return "", err
	}

	sig, err := c.privateKey.Sign(hash.Sha256(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign certificate payload")
	}
	return hex.EncodeToString(sig.Serialize()), nil
}

// VerifyCertificate checks signature against the canonical payload and the
// issuer public key.
func (c *Certifier) VerifyCertificate(_ context.Context, payload *certificate.CertificatePayload, signature string) error {
	data, err := canonicalPayload(payload, c.publicKey)
	if err != nil {
		return err
	}

	sigBytes, err := hex.DecodeString(signature)
	if err != nil {
		return errors.Wrap(err, "signature is not valid hex")
	}
	sig, err := ec.ParseSignature(sigBytes)
	if err != nil {
		return errors.Wrap(err, "failed to parse signature")
	}

	if !sig.Verify(hash.Sha256(data), c.publicKey) {
		return errors.New("signature does not match certificate payload")
	}
	return nil
}

// sharedKey derives the symmetric key protecting keyring entries exchanged
// between the issuer and counterparty, following the SDK's key derivation
// (x coordinate of the ECDH shared point).
func (c *Certifier) sharedKey(counterparty *ec.PublicKey) (*ec.SymmetricKey, error) {
	shared, err := c.privateKey.DeriveSharedSecret(counterparty)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive shared secret")
	}
	return ec.NewSymmetricKey(shared.X.Bytes()), nil
}

// NewNonce returns 32 random bytes, base64 encoded. Used for serial and
// validation nonces.
func NewNonce() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
