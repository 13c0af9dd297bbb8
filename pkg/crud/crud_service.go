package crud

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-inventory/domain"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

type (
	// Input is a validated create body that knows how to build its record.
	Input[T any] interface {
		Entity() T
	}

	// Patch is an update body whose nil fields are left untouched.
	Patch interface {
		Columns() map[string]any
	}

	Service[T any, I Input[T], P Patch] interface {
		Descriptor() registry.Descriptor
		List(ctx context.Context) ([]T, error)
		Create(ctx context.Context, req I) (T, error)
		Get(ctx context.Context, id uint) (T, error)
		Update(ctx context.Context, id uint, patch P) (map[string]any, error)
		Delete(ctx context.Context, id uint) error
	}

	service[T any, I Input[T], P Patch] struct {
		repository Repository[T]
		desc       registry.Descriptor
	}
)

func NewService[T any, I Input[T], P Patch](repository Repository[T], desc registry.Descriptor) Service[T, I, P] {
	return &service[T, I, P]{repository: repository, desc: desc}
}

func (s *service[T, I, P]) Descriptor() registry.Descriptor {
	return s.desc
}

func (s *service[T, I, P]) List(ctx context.Context) ([]T, error) {
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, failure.Classify(failure.OpRead, s.desc, err)
	}
	return records, nil
}

// Create inserts the record and returns it with the generated key and any
// server-assigned fields filled in.
func (s *service[T, I, P]) Create(ctx context.Context, req I) (T, error) {
	record := req.Entity()
	if err := s.repository.Create(ctx, &record); err != nil {
		var zero T
		return zero, failure.Classify(failure.OpCreate, s.desc, err)
	}
	return record, nil
}

func (s *service[T, I, P]) Get(ctx context.Context, id uint) (T, error) {
	record, err := s.repository.Get(ctx, id)
	if err != nil {
		return record, failure.Classify(failure.OpRead, s.desc, err)
	}
	return record, nil
}

// Update applies only the fields present in patch and echoes them back with
// the primary key.
func (s *service[T, I, P]) Update(ctx context.Context, id uint, patch P) (map[string]any, error) {
	columns := patch.Columns()
	if len(columns) == 0 {
		return nil, failure.InvalidInput(s.desc, domain.ErrEmptyUpdate)
	}

	if err := s.repository.Update(ctx, id, columns); err != nil {
		return nil, failure.Classify(failure.OpUpdate, s.desc, err)
	}

	echo, err := echoPatch(patch)
	if err != nil {
		return nil, failure.Classify(failure.OpUpdate, s.desc, err)
	}
	echo[s.desc.PrimaryKey] = id
	return echo, nil
}

func (s *service[T, I, P]) Delete(ctx context.Context, id uint) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return failure.Classify(failure.OpDelete, s.desc, err)
	}
	return nil
}

func echoPatch(patch any) (map[string]any, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return out, nil
}
