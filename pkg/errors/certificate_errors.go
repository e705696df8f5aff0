package errors

var (
	// Domain errors used in usecase/repository
	ErrInvalidCSR          = InvalidCSR("certificate signing request is malformed")
	ErrDecryptionFailed    = DecryptionFailed("one or more certificate fields could not be decrypted")
	ErrExpectedFields      = ExpectedFields("one or more expected certificate fields is missing or invalid")
	ErrUnknownType         = UnknownType("certificate type is not issued by this certifier")
	ErrCertificateNotFound = NotFound("certificate not found")
	ErrInternal            = Internal("an internal error has occurred")
)

func ErrIssuanceFailed(cause error) error {
	return Wrap(CodeInternal, "an internal error has occurred", cause)
}
