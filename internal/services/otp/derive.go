package otp

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	deriveIterations = 4096
	deriveKeyLength  = 32
)

// KeyDeriver produces the opaque player key stored in place of a contact
// address. The derivation is one-way but deterministic: the same address and
// pepper always yield the same key, so verification can look up the record
// that issuance created, while the stored key cannot be reversed to the
// address.
type KeyDeriver struct {
	pepper []byte
}

// NewKeyDeriver creates a KeyDeriver with the given pepper. The pepper is a
// server-side salt shared by all derivations; changing it orphans every
// stored key.
func NewKeyDeriver(pepper string) *KeyDeriver {
	return &KeyDeriver{pepper: []byte(pepper)}
}

// Derive returns the hex-encoded one-way key for a contact address
func (d *KeyDeriver) Derive(contactAddress string) string {
	key := pbkdf2.Key([]byte(contactAddress), d.pepper, deriveIterations, deriveKeyLength, sha256.New)
	return hex.EncodeToString(key)
}
