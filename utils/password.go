package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored hashes use the passlib pbkdf2_sha256 format:
//
//	$pbkdf2-sha256$<rounds>$<salt>$<digest>
//
// where salt and digest are base64 with passlib's adapted alphabet
// ('.' instead of '+', no padding). Hashes written by passlib verify here
// and vice versa.

const (
	pbkdf2Scheme = "pbkdf2-sha256"
	pbkdf2Rounds = 29000
	saltLength   = 16
	digestLength = sha256.Size
)

// HashPassword hashes plain with a fresh random salt.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest := pbkdf2.Key([]byte(plain), salt, pbkdf2Rounds, digestLength, sha256.New)
	return fmt.Sprintf("$%s$%d$%s$%s", pbkdf2Scheme, pbkdf2Rounds, ab64Encode(salt), ab64Encode(digest)), nil
}

// VerifyPassword reports whether plain matches the stored hash. Malformed
// hashes verify as false rather than erroring.
func VerifyPassword(hash, plain string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != pbkdf2Scheme {
		return false
	}
	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false
	}
	salt, err := ab64Decode(parts[3])
	if err != nil {
		return false
	}
	want, err := ab64Decode(parts[4])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plain), salt, rounds, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
