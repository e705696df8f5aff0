package authcrypto

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"sort"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/pkg/errors"

	"github.com/p2ppsr/myac/internal/certificate"
)

// canonicalPayload serializes the signed certificate content into the byte
// layout both signer and verifier agree on: type, serial number, subject and
// certifier keys (compressed), validation key, revocation outpoint, then the
// field ciphertexts sorted by field name, each length-prefixed.
func canonicalPayload(p *certificate.CertificatePayload, certifier *ec.PublicKey) ([]byte, error) {
	typeBytes, err := base64.StdEncoding.DecodeString(p.Type)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode certificate type")
	}
	serialBytes, err := base64.StdEncoding.DecodeString(p.SerialNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode serial number")
	}
	validationBytes, err := base64.StdEncoding.DecodeString(p.ValidationKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode validation key")
	}
	subjectKey, err := ec.PublicKeyFromString(p.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse subject key")
	}
	outpointBytes, err := hex.DecodeString(p.RevocationOutpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode revocation outpoint")
	}

	buf := make([]byte, 0, 256)
	buf = append(buf, typeBytes...)
	buf = append(buf, serialBytes...)
	buf = append(buf, subjectKey.Compressed()...)
	buf = append(buf, certifier.Compressed()...)
	buf = append(buf, validationBytes...)
	buf = append(buf, outpointBytes...)

	names := make([]string, 0, len(p.Fields))
	for name := range p.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	buf = binary.AppendUvarint(buf, uint64(len(names)))
	for _, name := range names {
		buf = binary.AppendUvarint(buf, uint64(len(name)))
		buf = append(buf, name...)
		value := p.Fields[name]
		buf = binary.AppendUvarint(buf, uint64(len(value)))
		buf = append(buf, value...)
	}

	return buf, nil
}
