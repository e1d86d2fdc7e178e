package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// UploadHash fingerprints an upload's decoded text so identical re-uploads
// can be recognized without re-parsing.
type UploadHash Hash

// NewUploadHash hashes the decoded upload text
func NewUploadHash(text string) UploadHash {
	return UploadHash(NewHash([]byte(text)))
}

func (h UploadHash) String() string { return Hash(h).String() }
