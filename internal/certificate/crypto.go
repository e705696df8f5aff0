package certificate

import "context"

// UnexpirableRevocationOutpoint is the well-known all-zero outpoint (36
// bytes, hex) denoting a certificate with no revocation configured.
const UnexpirableRevocationOutpoint = "000000000000000000000000000000000000000000000000000000000000000000000000"

// CertificatePayload is the canonical content covered by the issuer's
// signature. Fields hold ciphertexts as received; signing never touches
// plaintext.
type CertificatePayload struct {
	Type               string
	Subject            string
	ValidationKey      string
	SerialNumber       string
	RevocationOutpoint string
	Fields             map[string]string
}

// CryptoAdapter is the boundary to the cryptographic library backing this
// issuer. The core never performs key derivation, field decryption or
// signing itself.
type CryptoAdapter interface {
	// PublicKey returns the issuer's public identity key (compressed hex),
	// derived once at startup.
	PublicKey() string

	// ValidateCSRShape checks that the CSR carries a ciphertext and keyring
	// entry for every expected field, plus the structural material the
	// protocol requires.
	ValidateCSRShape(cmd *SignCertificateCommand, expectedFields []string) error

	// DecryptFields decrypts every field ciphertext with its paired keyring
	// entry and the issuer's private key. Fails on malformed ciphertext or
	// key mismatch.
	DecryptFields(ctx context.Context, fields, keyring map[string]string, subject string) (map[string]string, error)

	// SignCertificate produces the issuer's signature (DER hex) over the
	// canonical payload.
	SignCertificate(ctx context.Context, payload *CertificatePayload) (string, error)

	// VerifyCertificate checks a signature against the canonical payload and
	// the issuer's public key.
	VerifyCertificate(ctx context.Context, payload *CertificatePayload, signature string) error
}
