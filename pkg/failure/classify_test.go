package failure_test

import (
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

func descriptor(t *testing.T, name string) registry.Descriptor {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return reg.MustLookup(name)
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"wrapped gorm", fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated), true},
		{"postgres", &pgconn.PgError{Code: "23503"}, true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, false},
		{"mysql parent", &mysqldriver.MySQLError{Number: 1451}, true},
		{"mysql child", &mysqldriver.MySQLError{Number: 1452}, true},
		{"mysql duplicate", &mysqldriver.MySQLError{Number: 1062}, false},
		{"sqlite", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.IsForeignKeyViolation(tt.err))
		})
	}
}

func TestClassifyDeleteConflictCarriesGuidance(t *testing.T) {
	cases := map[string]string{
		registry.Category:    domain.GuidanceCategoryDelete,
		registry.Ingredients: domain.GuidanceIngredientDelete,
		registry.MenuItems:   domain.GuidanceMenuItemDelete,
	}
	for name, guidance := range cases {
		t.Run(name, func(t *testing.T) {
			err := failure.Classify(failure.OpDelete, descriptor(t, name), &pgconn.PgError{Code: "23503"})

			require.ErrorIs(t, err, domain.ErrDependentsExist)
			f := domain.AsFailure(err)
			assert.Equal(t, domain.KindDependentsExist, f.Kind)
			assert.Equal(t, name, f.Resource)
			assert.Equal(t, guidance, f.Guidance)
		})
	}
}

func TestClassifyWriteConflictIsMissingReference(t *testing.T) {
	for _, op := range []failure.Op{failure.OpCreate, failure.OpUpdate} {
		t.Run(op.String(), func(t *testing.T) {
			err := failure.Classify(op, descriptor(t, registry.Ingredients), &mysqldriver.MySQLError{Number: 1452})

			require.ErrorIs(t, err, domain.ErrReferenceMissing)
			assert.Equal(t, domain.GuidanceReferenceMissing, domain.AsFailure(err).Guidance)
		})
	}
}

func TestClassifyNotFoundAndGeneric(t *testing.T) {
	desc := descriptor(t, registry.Orders)

	err := failure.Classify(failure.OpRead, desc, gorm.ErrRecordNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	cause := errors.New("connection reset")
	err = failure.Classify(failure.OpCreate, desc, cause)
	require.ErrorIs(t, err, domain.ErrGeneric)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, registry.Orders, domain.AsFailure(err).Resource)
}

func TestClassifyKeepsExistingFailure(t *testing.T) {
	timeout := domain.NewFailure(domain.KindPoolTimeout, "", errors.New("deadline"))

	err := failure.Classify(failure.OpRead, descriptor(t, registry.Category), timeout)

	require.ErrorIs(t, err, domain.ErrPoolTimeout)
	assert.Equal(t, registry.Category, domain.AsFailure(err).Resource)
	assert.Empty(t, timeout.Resource)
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, failure.Classify(failure.OpDelete, descriptor(t, registry.Category), nil))
}
