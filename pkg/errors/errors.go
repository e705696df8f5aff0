package errors

import "fmt"

type AppError struct {
	Code        Code   `json:"code"`
	Description string `json:"description"`
	Cause       error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Description, e.Cause)
	}
	return e.Description
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, description string) error {
	return &AppError{Code: code, Description: description}
}

func Wrap(code Code, description string, cause error) error {
	return &AppError{Code: code, Description: description, Cause: cause}
}

func InvalidCSR(msg string) error {
	return New(CodeInvalidCSR, msg)
}

func DecryptionFailed(msg string) error {
	return New(CodeDecryptionFailed, msg)
}

func ExpectedFields(msg string) error {
	return New(CodeExpectedFields, msg)
}

func UnknownType(msg string) error {
	return New(CodeUnknownType, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}
