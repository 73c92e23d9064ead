package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRecordID creates a record id like "booking-1719830400000-x3k9q2f1c",
// matching the shape of ids already persisted in the collections.
func GenerateRecordID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// GenerateSessionToken creates an opaque admin session token.
func GenerateSessionToken() string {
	return uuid.NewString()
}

// GenerateFilename creates a unique upload filename with the given extension.
func GenerateFilename(ext string) string {
	suffix := make([]byte, 11)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
