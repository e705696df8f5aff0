package usecase

import (
	"context"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/p2ppsr/myac/config"
	"github.com/p2ppsr/myac/internal/certificate"
	models "github.com/p2ppsr/myac/internal/certificate/model"
	"github.com/p2ppsr/myac/internal/certificate/repository"
	"github.com/p2ppsr/myac/internal/certificate/template"
	appErrors "github.com/p2ppsr/myac/pkg/errors"
	"github.com/p2ppsr/myac/pkg/logger"
)

type CertificateUsecase struct {
	repo     certificate.CertificateRepository
	crypto   certificate.CryptoAdapter
	registry *template.Registry
	logger   logger.Logger
	config   config.Config
}

func NewCertificateUsecase(
	repo certificate.CertificateRepository,
	crypto certificate.CryptoAdapter,
	registry *template.Registry,
	logger logger.Logger,
	config config.Config,
) *CertificateUsecase {
	return &CertificateUsecase{
		repo:     repo,
		crypto:   crypto,
		registry: registry,
		logger:   logger,
		config:   config,
	}
}

// SignCertificate runs the issuance workflow: structural validation,
// decryption of the submitted field values, the template check, signing
// over the ciphertexts and the atomic persist. The subject is always the
// transport-verified caller identity; any subject in the request body is
// ignored. Fields beyond the template are ignored and never stored.
func (uc *CertificateUsecase) SignCertificate(ctx context.Context, cmd certificate.SignCertificateCommand) (*certificate.CertificateDTO, error) {
	expectedFields, err := uc.registry.ExpectedFields(cmd.Type)
	if err != nil {
		return nil, err
	}

	subject := cmd.SubjectIdentityKey
	if subject == "" {
		return nil, appErrors.InvalidCSR("request carries no verified subject identity key")
	}

	if err := uc.crypto.ValidateCSRShape(&cmd, expectedFields); err != nil {
		return nil, appErrors.Wrap(appErrors.CodeInvalidCSR, "certificate signing request is malformed", err)
	}

	decryptedFields, err := uc.crypto.DecryptFields(ctx, cmd.Fields, cmd.Keyring, subject)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.CodeDecryptionFailed, "one or more certificate fields could not be decrypted", err)
	}

	for _, name := range expectedFields {
		if decryptedFields[name] == "" {
			return nil, appErrors.ErrExpectedFields
		}
	}

	revocationOutpoint := cmd.RevocationOutpoint
	if revocationOutpoint == "" {
		revocationOutpoint = certificate.UnexpirableRevocationOutpoint
	} else if !validOutpoint(revocationOutpoint) {
		return nil, appErrors.InvalidCSR("revocation outpoint is malformed")
	}

	// Only template fields make it into the certificate; the signature then
	// covers exactly what gets stored and returned.
	signedFields := make(map[string]string, len(expectedFields))
	for _, name := range expectedFields {
		signedFields[name] = cmd.Fields[name]
	}

	payload := &certificate.CertificatePayload{
		Type:               cmd.Type,
		Subject:            subject,
		ValidationKey:      cmd.ValidationKey,
		SerialNumber:       cmd.SerialNumber,
		RevocationOutpoint: revocationOutpoint,
		Fields:             signedFields,
	}

	signature, err := uc.crypto.SignCertificate(ctx, payload)
	if err != nil {
		uc.logger.Error("failed to sign certificate", "err", err)
		return nil, appErrors.ErrIssuanceFailed(err)
	}

	userID, err := uc.repo.UpsertUser(ctx, subject)
	if err != nil {
		uc.logger.Error("failed to upsert user", "err", err)
		return nil, appErrors.ErrIssuanceFailed(err)
	}

	cert := &models.Certificate{
		UserID:             userID,
		Type:               cmd.Type,
		Subject:            subject,
		ValidationKey:      cmd.ValidationKey,
		SerialNumber:       cmd.SerialNumber,
		Certifier:          uc.crypto.PublicKey(),
		RevocationOutpoint: revocationOutpoint,
		Signature:          signature,
	}

	fields := make([]models.CertificateField, 0, len(expectedFields))
	for _, name := range expectedFields {
		fields = append(fields, models.CertificateField{
			FieldName:  name,
			FieldValue: cmd.Fields[name],
			FieldKey:   cmd.Keyring[name],
		})
	}

	if err := uc.repo.SaveCertificate(ctx, cert, fields); err != nil {
		uc.logger.Error("failed to save certificate", "err", err, "serial_number", cmd.SerialNumber)
		return nil, appErrors.ErrIssuanceFailed(err)
	}

	uc.logger.Debug("certificate issued", "serial_number", cmd.SerialNumber, "type", cmd.Type)

	return &certificate.CertificateDTO{
		Type:               cert.Type,
		Subject:            cert.Subject,
		ValidationKey:      cert.ValidationKey,
		SerialNumber:       cert.SerialNumber,
		Fields:             signedFields,
		RevocationOutpoint: cert.RevocationOutpoint,
		Certifier:          cert.Certifier,
		Signature:          cert.Signature,
	}, nil
}

// GetCertificate reconstructs a stored certificate with its fields and
// keyring, optionally decrypting the field values with the issuer key.
func (uc *CertificateUsecase) GetCertificate(ctx context.Context, serialNumber string, decrypt bool) (*certificate.CertificateDTO, error) {
	cert, fieldRows, err := uc.repo.GetCertificateBySerial(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return nil, appErrors.ErrCertificateNotFound
		}
		uc.logger.Error("failed to load certificate", "err", err, "serial_number", serialNumber)
		return nil, appErrors.ErrInternal
	}

	fields := make(map[string]string, len(fieldRows))
	keyring := make(map[string]string, len(fieldRows))
	for _, row := range fieldRows {
		fields[row.FieldName] = row.FieldValue
		keyring[row.FieldName] = row.FieldKey
	}

	dto := &certificate.CertificateDTO{
		Type:               cert.Type,
		Subject:            cert.Subject,
		ValidationKey:      cert.ValidationKey,
		SerialNumber:       cert.SerialNumber,
		Fields:             fields,
		RevocationOutpoint: cert.RevocationOutpoint,
		Certifier:          cert.Certifier,
		Signature:          cert.Signature,
		Keyring:            keyring,
	}

	if decrypt {
		decryptedFields, err := uc.crypto.DecryptFields(ctx, fields, keyring, cert.Subject)
		if err != nil {
			uc.logger.Error("failed to decrypt stored certificate fields", "err", err, "serial_number", serialNumber)
			return nil, appErrors.ErrInternal
		}
		dto.DecryptedFields = decryptedFields
	}

	return dto, nil
}

// Identify reports the certifier's public key and every issuable type.
func (uc *CertificateUsecase) Identify(_ context.Context) *certificate.IdentifyDTO {
	types := uc.registry.All()
	pairs := make([][2]any, 0, len(types))
	for _, t := range types {
		pairs = append(pairs, [2]any{t.TypeID, t.Fields})
	}

	return &certificate.IdentifyDTO{
		Status:             "success",
		CertifierPublicKey: uc.crypto.PublicKey(),
		CertificateTypes:   pairs,
	}
}

// validOutpoint accepts a 36-byte outpoint serialized as hex.
func validOutpoint(s string) bool {
	if len(s) != len(certificate.UnexpirableRevocationOutpoint) {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
