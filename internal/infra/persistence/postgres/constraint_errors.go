package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Both helpers rely on gorm.Config.TranslateError, which maps SQLSTATE 23505
// and 23503 onto the gorm sentinels.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
