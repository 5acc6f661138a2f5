// internal/services/content_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sportsfed/fedsite/internal/cache"
	"github.com/sportsfed/fedsite/internal/utils"
)

// Input is a decoded request body for entity T. Build turns a validated
// create payload into a new row; Changes returns the columns a validated
// PATCH payload sets, keyed by column name.
type Input[T any] interface {
	Build() (*T, error)
	Changes() (map[string]interface{}, error)
}

// Scope narrows a list query, e.g. to featured rows.
type Scope func(*gorm.DB) *gorm.DB

// UniqueField describes a column that must not repeat across rows.
type UniqueField[T any] struct {
	Column string
	Value  func(*T) string
}

// ContentService implements list/get/create/update/delete for one
// content table. Every list is returned in a fixed order ending in an id
// tie-breaker.
type ContentService[T any] struct {
	db     *gorm.DB
	cache  cache.Cache
	name   string
	key    string
	order  string
	unique *UniqueField[T]
}

type ContentOptions[T any] struct {
	// Name is the human readable resource name used in error messages.
	Name string
	// Key identifies the entity in cache keys.
	Key    string
	Order  string
	Unique *UniqueField[T]
}

func NewContentService[T any](db *gorm.DB, c cache.Cache, opts ContentOptions[T]) *ContentService[T] {
	return &ContentService[T]{
		db:     db,
		cache:  c,
		name:   opts.Name,
		key:    opts.Key,
		order:  opts.Order,
		unique: opts.Unique,
	}
}

func (s *ContentService[T]) Name() string {
	return s.name
}

func (s *ContentService[T]) listKey(gen string) string {
	return "list:" + s.key + ":" + gen
}

func (s *ContentService[T]) generationKey() string {
	return "gen:" + s.key
}

// generation returns the current list cache generation of the entity,
// starting a new one when none is stored.
func (s *ContentService[T]) generation(ctx context.Context) (string, error) {
	data, err := s.cache.Get(ctx, s.generationKey())
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return "", err
	}
	gen := uuid.NewString()
	if err := s.cache.Set(ctx, s.generationKey(), []byte(gen), 0); err != nil {
		return "", err
	}
	return gen, nil
}

// List returns every row in display order. Unscoped lists are served from
// the cache when possible. A list is stored under the generation read
// before the query, so a write that commits meanwhile orphans it.
func (s *ContentService[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	var key string
	if len(scopes) == 0 && s.cache != nil {
		gen, err := s.generation(ctx)
		if err != nil {
			logrus.WithError(err).WithField("entity", s.key).Warn("Failed to read list cache generation")
		} else {
			key = s.listKey(gen)
		}
	}

	if key != "" {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var rows []T
			if err := json.Unmarshal(data, &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows := make([]T, 0)
	if err := s.query(ctx, scopes).Order(s.order).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.key, err)
	}

	if key != "" {
		if data, err := json.Marshal(rows); err == nil {
			if err := s.cache.Set(ctx, key, data, 0); err != nil {
				logrus.WithError(err).WithField("entity", s.key).Warn("Failed to cache list")
			}
		}
	}
	return rows, nil
}

// ListPage returns one page of rows plus the total row count.
func (s *ContentService[T]) ListPage(ctx context.Context, params utils.PaginationParams, scopes ...Scope) ([]T, int64, error) {
	var total int64
	if err := s.query(ctx, scopes).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", s.key, err)
	}

	rows := make([]T, 0)
	if err := utils.ApplyPagination(s.query(ctx, scopes).Order(s.order), params).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", s.key, err)
	}
	return rows, total, nil
}

func (s *ContentService[T]) Get(ctx context.Context, id uint) (*T, error) {
	row := new(T)
	if err := s.db.WithContext(ctx).First(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading %s %d: %w", s.key, id, err)
	}
	return row, nil
}

func (s *ContentService[T]) Create(ctx context.Context, input Input[T]) (*T, error) {
	row, err := input.Build()
	if err != nil {
		return nil, err
	}

	if s.unique != nil {
		if err := s.checkUnique(ctx, s.unique.Value(row), 0); err != nil {
			return nil, err
		}
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("creating %s: %w", s.key, err)
	}

	s.invalidate(ctx)
	return row, nil
}

// Update applies only the columns the input carries and returns the row as
// stored afterwards. An input without changes returns the row untouched.
func (s *ContentService[T]) Update(ctx context.Context, id uint, input Input[T]) (*T, error) {
	changes, err := input.Changes()
	if err != nil {
		return nil, err
	}
	return s.UpdateColumns(ctx, id, changes)
}

func (s *ContentService[T]) UpdateColumns(ctx context.Context, id uint, changes map[string]interface{}) (*T, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return row, nil
	}

	if s.unique != nil {
		if v, ok := changes[s.unique.Column].(string); ok {
			if err := s.checkUnique(ctx, v, id); err != nil {
				return nil, err
			}
		}
	}

	if err := s.db.WithContext(ctx).Model(row).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("updating %s %d: %w", s.key, id, err)
	}

	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete removes the row with the given id, reporting ErrNotFound when
// nothing was deleted.
func (s *ContentService[T]) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("deleting %s %d: %w", s.key, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.invalidate(ctx)
	return nil
}

func (s *ContentService[T]) query(ctx context.Context, scopes []Scope) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, scope := range scopes {
		q = scope(q)
	}
	return q
}

func (s *ContentService[T]) checkUnique(ctx context.Context, value string, exceptID uint) error {
	q := s.db.WithContext(ctx).Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: s.unique.Column}, Value: value})
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("checking %s uniqueness: %w", s.key, err)
	}
	if count > 0 {
		return ErrConflict
	}
	return nil
}

// invalidate starts a new list generation. Lists cached under the old one
// are never read again and expire on their own.
func (s *ContentService[T]) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.generationKey(), []byte(uuid.NewString()), 0); err != nil {
		logrus.WithError(err).WithField("entity", s.key).Warn("Failed to invalidate list cache")
	}
}
