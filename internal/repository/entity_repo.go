package repository

import (
	"context"
	"errors"
	"fmt"

	"HistoryAtlas/internal/model"

	"gorm.io/gorm"
)

// EntityRepository 实体表的只读仓储：全量列表 + 主键查询
type EntityRepository interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	GetCountryByID(ctx context.Context, id uint64) (*model.Country, error)
	ListLanguages(ctx context.Context) ([]model.Language, error)
	GetLanguageByID(ctx context.Context, id uint64) (*model.Language, error)
	ListPeople(ctx context.Context) ([]model.Person, error)
	GetPersonByID(ctx context.Context, id uint64) (*model.Person, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventByID(ctx context.Context, id uint64) (*model.Event, error)
	ListEventTypes(ctx context.Context) ([]model.EventType, error)
	GetEventTypeByID(ctx context.Context, id uint64) (*model.EventType, error)
}

type entityRepository struct {
	db *gorm.DB
}

// NewEntityRepository 创建 EntityRepository 实例
func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepository{db: db}
}

type tabler interface {
	TableName() string
}

// listAll 返回表内全部行，按主键（即插入顺序）排列
func listAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", tableOf[T](), err)
	}
	return rows, nil
}

// getByID 按主键查询单行，未命中返回 ErrNotFound
func getByID[T any](ctx context.Context, db *gorm.DB, id uint64) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s id=%d: %w", tableOf[T](), id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s id=%d: %w", tableOf[T](), id, err)
	}
	return &row, nil
}

func tableOf[T any]() string {
	var zero T
	if t, ok := any(zero).(tabler); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", zero)
}

func (r *entityRepository) ListCountries(ctx context.Context) ([]model.Country, error) {
	return listAll[model.Country](ctx, r.db)
}

func (r *entityRepository) GetCountryByID(ctx context.Context, id uint64) (*model.Country, error) {
	return getByID[model.Country](ctx, r.db, id)
}

func (r *entityRepository) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return listAll[model.Language](ctx, r.db)
}

func (r *entityRepository) GetLanguageByID(ctx context.Context, id uint64) (*model.Language, error) {
	return getByID[model.Language](ctx, r.db, id)
}

func (r *entityRepository) ListPeople(ctx context.Context) ([]model.Person, error) {
	return listAll[model.Person](ctx, r.db)
}

func (r *entityRepository) GetPersonByID(ctx context.Context, id uint64) (*model.Person, error) {
	return getByID[model.Person](ctx, r.db, id)
}

func (r *entityRepository) ListEvents(ctx context.Context) ([]model.Event, error) {
	return listAll[model.Event](ctx, r.db)
}

func (r *entityRepository) GetEventByID(ctx context.Context, id uint64) (*model.Event, error) {
	return getByID[model.Event](ctx, r.db, id)
}

func (r *entityRepository) ListEventTypes(ctx context.Context) ([]model.EventType, error) {
	return listAll[model.EventType](ctx, r.db)
}

func (r *entityRepository) GetEventTypeByID(ctx context.Context, id uint64) (*model.EventType, error) {
	return getByID[model.EventType](ctx, r.db, id)
}
