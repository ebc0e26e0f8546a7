package codegen

import (
	"crypto/rand"
	"fmt"

	"github.com/masjid-digital/donation-processor/internal/domain/port/core"
)

// codeCharset excludes lowercase so codes survive case-insensitive channels
// like SMS and handwriting
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCodeGenerator produces donation codes from crypto/rand
type RandomCodeGenerator struct{}

// NewRandomCodeGenerator creates a code generator
func NewRandomCodeGenerator() core.CodeGenerator {
	return &RandomCodeGenerator{}
}

// NewCode returns a new random uppercase alphanumeric code of the given length
func (g *RandomCodeGenerator) NewCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got: %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}

	return string(buf), nil
}
