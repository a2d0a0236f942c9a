package pmerrors

// Code is a machine-checkable error kind. Codes split into two families:
// config codes (persistence failures, always recoverable by degrading to a
// default store) and settings codes (derivation-parameter failures, rendered
// to the user in place of a password).
type Code string

const (
	// Config family.
	CodeNoHome    Code = "NO_HOME"
	CodeOpenRead  Code = "OPEN_READ_FAILED"
	CodeRead      Code = "READ_FAILED"
	CodeDecode    Code = "DECODE_FAILED"
	CodeOpenWrite Code = "OPEN_WRITE_FAILED"
	CodeWrite     Code = "WRITE_FAILED"

	// Settings family.
	CodeUnknownAlgorithm Code = "UNKNOWN_HASH_ALGORITHM"
	CodeInvalidLeet      Code = "INVALID_LEET"
	CodeNoActiveProfile  Code = "NO_ACTIVE_PROFILE"
	CodeEmptyAlphabet    Code = "EMPTY_ALPHABET"
	CodeBadLength        Code = "BAD_PASSWORD_LENGTH"

	// CodeInternal marks failures that indicate a bug rather than bad input.
	CodeInternal Code = "INTERNAL_ERROR"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// IsConfig reports whether the code belongs to the persistence family.
func (c Code) IsConfig() bool {
	switch c {
	case CodeNoHome, CodeOpenRead, CodeRead, CodeDecode, CodeOpenWrite, CodeWrite:
		return true
	}
	return false
}

// IsSettings reports whether the code belongs to the derivation-parameter
// family.
func (c Code) IsSettings() bool {
	switch c {
	case CodeUnknownAlgorithm, CodeInvalidLeet, CodeNoActiveProfile, CodeEmptyAlphabet, CodeBadLength:
		return true
	}
	return false
}
