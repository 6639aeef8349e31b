package util

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// TempName returns a unique sibling path of path for staged writes
func TempName(path string) string {
	return path + "." + uuid.NewString() + ".tmp"
}

// ContentUUID fingerprints a buffer as a name-based uuid of its md5
func ContentUUID(value []byte) string {
	hash := md5.Sum(value)
	id, err := uuid.FromBytes(hash[:])
	if err != nil {
		return ""
	}
	return id.String()
}
