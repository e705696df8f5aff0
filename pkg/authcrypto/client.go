package authcrypto

import (
	"crypto/rand"
	"encoding/base64"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/pkg/errors"
)

// EncryptFields is the subject-side counterpart of Certifier.DecryptFields:
// it encrypts each plaintext field under a fresh revelation key and wraps
// that key for the certifier in the keyring. Clients use it when building a
// CSR; the certifier's own tests use it to produce real requests.
func EncryptFields(subjectKey *ec.PrivateKey, certifierKey *ec.PublicKey, plaintext map[string]string) (fields, keyring map[string]string, err error) {
	shared, err := subjectKey.DeriveSharedSecret(certifierKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive shared secret")
	}
	keyringCipher := ec.NewSymmetricKey(shared.X.Bytes())

	fields = make(map[string]string, len(plaintext))
	keyring = make(map[string]string, len(plaintext))

	for name, value := range plaintext {
		revelationKey := make([]byte, 32)
		if _, err := rand.Read(revelationKey); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to generate field key for %q", name)
		}

		ciphertext, err := ec.NewSymmetricKey(revelationKey).Encrypt([]byte(value))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to encrypt field %q", name)
		}
		encryptedKey, err := keyringCipher.Encrypt(revelationKey)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to encrypt field key for %q", name)
		}

		fields[name] = base64.StdEncoding.EncodeToString(ciphertext)
		keyring[name] = base64.StdEncoding.EncodeToString(encryptedKey)
	}

	return fields, keyring, nil
}
