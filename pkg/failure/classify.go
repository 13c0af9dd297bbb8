package failure

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/pkg/registry"
)

// Op is the kind of statement that produced an error. A foreign-key violation
// means a missing parent on writes and surviving children on deletes.
type Op int

const (
	OpRead Op = iota
	OpCreate
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "read"
	}
}

const (
	pgForeignKeyViolation = "23503"

	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// Classify turns a store error into a *domain.Failure for desc. Errors that are
// already classified keep their kind and only gain the resource name.
func Classify(op Op, desc registry.Descriptor, err error) error {
	if err == nil {
		return nil
	}

	var f *domain.Failure
	if errors.As(err, &f) {
		if f.Resource != "" {
			return f
		}
		classified := *f
		classified.Resource = desc.Name
		return &classified
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewFailure(domain.KindNotFound, desc.Name, err)
	case IsForeignKeyViolation(err):
		if op == OpDelete {
			return domain.NewFailure(domain.KindDependentsExist, desc.Name, err).
				WithGuidance(desc.DeleteGuidance)
		}
		return domain.NewFailure(domain.KindReferenceMissing, desc.Name, err).
			WithGuidance(domain.GuidanceReferenceMissing)
	default:
		return domain.NewFailure(domain.KindGeneric, desc.Name, err)
	}
}

// NotFound reports that no row of desc matched the addressed key.
func NotFound(desc registry.Descriptor) *domain.Failure {
	return domain.NewFailure(domain.KindNotFound, desc.Name, gorm.ErrRecordNotFound)
}

func InvalidInput(desc registry.Descriptor, err error) *domain.Failure {
	return domain.NewFailure(domain.KindInvalidInput, desc.Name, err)
}

// IsForeignKeyViolation recognises referential-integrity errors from every
// supported dialect, translated by gorm or not.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
