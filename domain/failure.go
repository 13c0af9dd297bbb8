package domain

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	KindNotFound           FailureKind = "NOT_FOUND"
	KindReferenceMissing   FailureKind = "INVALID_REFERENCE"
	KindDependentsExist    FailureKind = "FOREIGN_KEY_CONSTRAINT"
	KindInvalidComputation FailureKind = "INVALID_COMPUTATION"
	KindInvalidInput       FailureKind = "INVALID_INPUT"
	KindPoolTimeout        FailureKind = "POOL_TIMEOUT"
	KindGeneric            FailureKind = "INTERNAL"
)

const (
	GuidanceReferenceMissing = "referenced id does not exist in parent table"
	GuidanceCategoryDelete   = "remove ingredients in this category first"
	GuidanceIngredientDelete = "remove recipes/stock entries using this ingredient first"
	GuidanceMenuItemDelete   = "remove recipes/orders using this menu item first"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrReferenceMissing   = errors.New("referenced record does not exist")
	ErrDependentsExist    = errors.New("record is referenced by dependent rows")
	ErrInvalidComputation = errors.New("invalid computation")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPoolTimeout        = errors.New("timed out waiting for a database connection")
	ErrGeneric            = errors.New("store failure")
)

var kindSentinels = map[FailureKind]error{
	KindNotFound:           ErrNotFound,
	KindReferenceMissing:   ErrReferenceMissing,
	KindDependentsExist:    ErrDependentsExist,
	KindInvalidComputation: ErrInvalidComputation,
	KindInvalidInput:       ErrInvalidInput,
	KindPoolTimeout:        ErrPoolTimeout,
	KindGeneric:            ErrGeneric,
}

// Failure is the classified outcome of a failed operation. errors.Is matches
// both the kind sentinel and the underlying cause.
type Failure struct {
	Kind     FailureKind
	Resource string
	Guidance string
	Err      error
}

func NewFailure(kind FailureKind, resource string, err error) *Failure {
	return &Failure{Kind: kind, Resource: resource, Err: err}
}

func (f *Failure) WithGuidance(guidance string) *Failure {
	f.Guidance = guidance
	return f
}

func (f *Failure) Error() string {
	msg := string(f.Kind)
	if f.Resource != "" {
		msg = fmt.Sprintf("%s: %s", f.Resource, msg)
	}
	if f.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, f.Err)
	}
	if f.Guidance != "" {
		msg = fmt.Sprintf("%s (%s)", msg, f.Guidance)
	}
	return msg
}

func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindSentinels[f.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}

// AsFailure extracts a *Failure from err, wrapping unknown errors as generic.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewFailure(KindGeneric, "", err)
}
