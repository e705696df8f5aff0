package certificate

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// SignCertificateCommand is a certificate signing request (CSR) together
// with the caller's transport-verified identity key. SubjectIdentityKey is
// set by the delivery layer from the authenticated connection; any subject
// embedded in the request body is ignored.
type SignCertificateCommand struct {
	SubjectIdentityKey string

	Type                  string            `json:"type"`
	ClientNonce           string            `json:"clientNonce"`
	ServerSerialNonce     string            `json:"serverSerialNonce"`
	ServerValidationNonce string            `json:"serverValidationNonce"`
	ValidationKey         string            `json:"validationKey"`
	SerialNumber          string            `json:"serialNumber"`
	Fields                map[string]string `json:"fields"`
	Keyring               map[string]string `json:"keyring"`

	// Optional spendable revocation outpoint; defaults to the all-zero
	// "unexpirable" sentinel.
	RevocationOutpoint string `json:"revocationOutpoint,omitempty"`
}

// CertificateDTO is the signed certificate as returned to callers. Keyring
// is only populated on the read side (the issuance response never echoes the
// caller's own decryption keys back); DecryptedFields only when a lookup
// explicitly asks for decryption.
type CertificateDTO struct {
	Type               string            `json:"type"`
	Subject            string            `json:"subject"`
	ValidationKey      string            `json:"validationKey"`
	SerialNumber       string            `json:"serialNumber"`
	Fields             map[string]string `json:"fields"`
	RevocationOutpoint string            `json:"revocationOutpoint"`
	Certifier          string            `json:"certifier"`
	Signature          string            `json:"signature"`

	Keyring         map[string]string `json:"keyring,omitempty"`
	DecryptedFields map[string]string `json:"decryptedFields,omitempty"`
}

// IdentifyDTO reports the certifier's public key and every certificate type
// it issues, each as a [typeId, [fieldName, ...]] pair.
type IdentifyDTO struct {
	Status             string   `json:"status"`
	CertifierPublicKey string   `json:"certifierPublicKey"`
	CertificateTypes   [][2]any `json:"certificateTypes"`
}
