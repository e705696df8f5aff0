package certificate

import (
	"context"
)

type CertificateUsecase interface {
	// SignCertificate validates the CSR against its declared template,
	// decrypts and checks the field values, signs the certificate over the
	// submitted ciphertexts and persists it atomically.
	SignCertificate(ctx context.Context, cmd SignCertificateCommand) (*CertificateDTO, error)

	// GetCertificate reconstructs a stored certificate (fields + keyring) by
	// serial number, optionally decrypting the field values with the
	// issuer's key.
	GetCertificate(ctx context.Context, serialNumber string, decrypt bool) (*CertificateDTO, error)

	// Identify reports the certifier public key and supported types. Pure
	// read of startup configuration.
	Identify(ctx context.Context) *IdentifyDTO
}
