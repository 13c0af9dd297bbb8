package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm/schema"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
)

const (
	Category         = "Category"
	Ingredients      = "Ingredients"
	MenuItems        = "MenuItems"
	Orders           = "Orders"
	StockIngredients = "StockIngredients"
	Recipes          = "Recipes"
)

type Kind int

const (
	// Simple resources are fully served by the generic CRUD handler.
	Simple Kind = iota
	// Composite resources need derived fields, joins or transactions.
	Composite
)

func (k Kind) String() string {
	if k == Composite {
		return "composite"
	}
	return "simple"
}

type (
	Descriptor struct {
		Name           string
		Table          string
		PrimaryKey     string
		Column         string
		Kind           Kind
		Model          any
		DeleteGuidance string
		Cascade        bool
	}

	Option func(*Descriptor)

	Registry struct {
		byName map[string]Descriptor
		order  []string
	}
)

var ErrInvalidDescriptor = errors.New("invalid resource descriptor")

// DefaultPrimaryKey capitalises the resource name and appends "ID".
func DefaultPrimaryKey(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r)) + name[size:] + "ID"
}

func Define(name string, model any, opts ...Option) Descriptor {
	d := Descriptor{
		Name:       name,
		PrimaryKey: DefaultPrimaryKey(name),
		Kind:       Simple,
		Model:      model,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func WithPrimaryKey(key string) Option {
	return func(d *Descriptor) { d.PrimaryKey = key }
}

func AsComposite() Option {
	return func(d *Descriptor) { d.Kind = Composite }
}

func WithDeleteGuidance(guidance string) Option {
	return func(d *Descriptor) { d.DeleteGuidance = guidance }
}

func WithCascade() Option {
	return func(d *Descriptor) { d.Cascade = true }
}

// New validates every descriptor against its gorm model and resolves table and
// column names. Any mismatch is a configuration error.
func New(defs ...Descriptor) (*Registry, error) {
	cache := &sync.Map{}
	namer := schema.NamingStrategy{}
	r := &Registry{byName: make(map[string]Descriptor, len(defs))}

	for _, d := range defs {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("%w: empty resource name", ErrInvalidDescriptor)
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate resource %q", ErrInvalidDescriptor, d.Name)
		}
		if d.Model == nil {
			return nil, fmt.Errorf("%w: resource %q has no model", ErrInvalidDescriptor, d.Name)
		}

		s, err := schema.Parse(d.Model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("%w: resource %q: %v", ErrInvalidDescriptor, d.Name, err)
		}
		field := s.LookUpField(d.PrimaryKey)
		if field == nil || !field.PrimaryKey {
			return nil, fmt.Errorf("%w: resource %q: %q is not the primary key of %s",
				ErrInvalidDescriptor, d.Name, d.PrimaryKey, s.Table)
		}

		d.Table = s.Table
		d.Column = field.DBName
		r.byName[d.Name] = d
		r.order = append(r.order, d.Name)
	}

	return r, nil
}

func MustNew(defs ...Descriptor) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the restaurant inventory resources.
func Default() (*Registry, error) {
	return New(
		Define(Category, &entities.Category{},
			WithDeleteGuidance(domain.GuidanceCategoryDelete),
			WithCascade(),
		),
		Define(Ingredients, &entities.Ingredient{},
			WithDeleteGuidance(domain.GuidanceIngredientDelete),
			WithCascade(),
		),
		Define(MenuItems, &entities.MenuItem{},
			WithPrimaryKey("MenuID"),
			WithDeleteGuidance(domain.GuidanceMenuItemDelete),
			WithCascade(),
		),
		Define(Orders, &entities.Order{},
			WithPrimaryKey("OrderID"),
		),
		Define(StockIngredients, &entities.StockIngredient{},
			WithPrimaryKey("StockIngredientsID"),
			AsComposite(),
		),
		Define(Recipes, &entities.Recipe{},
			WithPrimaryKey("RecipeID"),
			AsComposite(),
		),
	)
}

func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// MustLookup is meant for wiring code; an unknown name panics at startup.
func (r *Registry) MustLookup(name string) Descriptor {
	d, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("registry: unknown resource %q", name))
	}
	return d
}

func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Registry) Simple() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.Kind == Simple })
}

func (r *Registry) Cascadable() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.Cascade })
}

func (r *Registry) filter(keep func(Descriptor) bool) []Descriptor {
	var out []Descriptor
	for _, d := range r.All() {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
