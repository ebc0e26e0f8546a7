package core

// CodeGenerator produces donation codes. Codes are used as public lookup
// keys on receipts, so implementations must be unpredictable enough that
// donors cannot enumerate other donors' codes.
type CodeGenerator interface {
	// NewCode returns a fresh code with the given number of random characters
	NewCode(length int) (string, error)
}
