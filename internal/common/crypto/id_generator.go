package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bizdir/backend/internal/common/constants"
)

type IDGenerator interface {
	NewID() (string, error)
}

// HexIDGenerator produces the fixed-length lowercase hex tokens the
// persistence layer uses as record identifiers.
type HexIDGenerator struct{}

func NewHexIDGenerator() *HexIDGenerator {
	return &HexIDGenerator{}
}

func (g *HexIDGenerator) NewID() (string, error) {
	b := make([]byte, constants.RecordIDByteSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
