package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 存储层约束冲突，由 Repository 统一转换后向上返回
var (
	// ErrDuplicateKey 唯一约束冲突
	ErrDuplicateKey = errors.New("唯一约束冲突")
	// ErrForeignKey 外键约束冲突：引用的记录不存在
	ErrForeignKey = errors.New("外键约束冲突")
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify 将驱动层错误映射为存储层哨兵错误，无法识别时原样返回
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(ErrDuplicateKey, err)
		case pgForeignKeyViolation:
			return errors.Join(ErrForeignKey, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrForeignKey, err)
	}

	return err
}
