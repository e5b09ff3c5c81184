package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey covers drivers that do not translate unique violations.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
