package repository

import (
	"context"
	"fmt"

	"HistoryAtlas/internal/model"

	"gorm.io/gorm"
)

// Related 关联查询结果：对端实体 + 关联行本身（关联行可能携带 percentage / role 等属性）
type Related[T any, A any] struct {
	Entity T `json:"entity"`
	Link   A `json:"link"`
}

// 常用组合
type (
	CountryLanguageLink = Related[model.Language, model.CountryLanguage] // 国家 -> 语言
	LanguageCountryLink = Related[model.Country, model.CountryLanguage]  // 语言 -> 国家
	PersonLanguageLink  = Related[model.Language, model.PersonLanguage]  // 人物 -> 语言
	LanguagePersonLink  = Related[model.Person, model.PersonLanguage]    // 语言 -> 人物
	PersonEventLink     = Related[model.Event, model.PersonEvent]        // 人物 -> 事件
	EventPersonLink     = Related[model.Person, model.PersonEvent]       // 事件 -> 人物
	CountryEventLink    = Related[model.Event, model.CountryEvent]       // 国家 -> 事件
	EventCountryLink    = Related[model.Country, model.CountryEvent]     // 事件 -> 国家
	CountryPersonLink   = Related[model.Person, model.CountryPerson]     // 国家 -> 人物
	PersonCountryLink   = Related[model.Country, model.CountryPerson]    // 人物 -> 国家
)

// RelationRepository 通过关联表解析多对多关系，每个方法对应关联表的一个方向
type RelationRepository interface {
	LanguagesOfCountry(ctx context.Context, countryID uint64) ([]CountryLanguageLink, error)
	CountriesOfLanguage(ctx context.Context, languageID uint64) ([]LanguageCountryLink, error)
	LanguagesOfPerson(ctx context.Context, personID uint64) ([]PersonLanguageLink, error)
	PeopleOfLanguage(ctx context.Context, languageID uint64) ([]LanguagePersonLink, error)
	EventsOfPerson(ctx context.Context, personID uint64) ([]PersonEventLink, error)
	PeopleOfEvent(ctx context.Context, eventID uint64) ([]EventPersonLink, error)
	EventsOfCountry(ctx context.Context, countryID uint64) ([]CountryEventLink, error)
	CountriesOfEvent(ctx context.Context, eventID uint64) ([]EventCountryLink, error)
	PeopleOfCountry(ctx context.Context, countryID uint64) ([]CountryPersonLink, error)
	CountriesOfPerson(ctx context.Context, personID uint64) ([]PersonCountryLink, error)
}

type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository 创建 RelationRepository 实例
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

// resolveRelated 按 ownerColumn = ownerID 过滤关联表 A，再批量取回对端实体 T。
// 结果顺序跟随关联行主键；重复的关联行会产生重复的结果，不做去重。
func resolveRelated[A any, T any](
	ctx context.Context,
	db *gorm.DB,
	ownerColumn string,
	ownerID uint64,
	otherID func(*A) uint64,
	entityID func(*T) uint64,
) ([]Related[T, A], error) {
	links := make([]A, 0)
	if err := db.WithContext(ctx).
		Where(ownerColumn+" = ?", ownerID).
		Order("id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list %s by %s=%d: %w", tableOf[A](), ownerColumn, ownerID, err)
	}
	result := make([]Related[T, A], 0, len(links))
	if len(links) == 0 {
		return result, nil
	}

	ids := make([]uint64, 0, len(links))
	seen := make(map[uint64]struct{}, len(links))
	for i := range links {
		id := otherID(&links[i])
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	var targets []T
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&targets).Error; err != nil {
		return nil, fmt.Errorf("resolve %s: %w", tableOf[T](), err)
	}
	byID := make(map[uint64]T, len(targets))
	for i := range targets {
		byID[entityID(&targets[i])] = targets[i]
	}

	for i := range links {
		id := otherID(&links[i])
		entity, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s -> %s id=%d: %w", tableOf[A](), tableOf[T](), id, ErrDanglingReference)
		}
		result = append(result, Related[T, A]{Entity: entity, Link: links[i]})
	}
	return result, nil
}

func countryKey(c *model.Country) uint64   { return c.ID }
func languageKey(l *model.Language) uint64 { return l.ID }
func personKey(p *model.Person) uint64     { return p.ID }
func eventKey(e *model.Event) uint64       { return e.ID }

func (r *relationRepository) LanguagesOfCountry(ctx context.Context, countryID uint64) ([]CountryLanguageLink, error) {
	return resolveRelated(ctx, r.db, "country_id", countryID,
		func(l *model.CountryLanguage) uint64 { return l.LanguageID }, languageKey)
}

func (r *relationRepository) CountriesOfLanguage(ctx context.Context, languageID uint64) ([]LanguageCountryLink, error) {
	return resolveRelated(ctx, r.db, "language_id", languageID,
		func(l *model.CountryLanguage) uint64 { return l.CountryID }, countryKey)
}

func (r *relationRepository) LanguagesOfPerson(ctx context.Context, personID uint64) ([]PersonLanguageLink, error) {
	return resolveRelated(ctx, r.db, "person_id", personID,
		func(l *model.PersonLanguage) uint64 { return l.LanguageID }, languageKey)
}

func (r *relationRepository) PeopleOfLanguage(ctx context.Context, languageID uint64) ([]LanguagePersonLink, error) {
	return resolveRelated(ctx, r.db, "language_id", languageID,
		func(l *model.PersonLanguage) uint64 { return l.PersonID }, personKey)
}

func (r *relationRepository) EventsOfPerson(ctx context.Context, personID uint64) ([]PersonEventLink, error) {
	return resolveRelated(ctx, r.db, "person_id", personID,
		func(l *model.PersonEvent) uint64 { return l.EventID }, eventKey)
}

func (r *relationRepository) PeopleOfEvent(ctx context.Context, eventID uint64) ([]EventPersonLink, error) {
	return resolveRelated(ctx, r.db, "event_id", eventID,
		func(l *model.PersonEvent) uint64 { return l.PersonID }, personKey)
}

func (r *relationRepository) EventsOfCountry(ctx context.Context, countryID uint64) ([]CountryEventLink, error) {
	return resolveRelated(ctx, r.db, "country_id", countryID,
		func(l *model.CountryEvent) uint64 { return l.EventID }, eventKey)
}

func (r *relationRepository) CountriesOfEvent(ctx context.Context, eventID uint64) ([]EventCountryLink, error) {
	return resolveRelated(ctx, r.db, "event_id", eventID,
		func(l *model.CountryEvent) uint64 { return l.CountryID }, countryKey)
}

func (r *relationRepository) PeopleOfCountry(ctx context.Context, countryID uint64) ([]CountryPersonLink, error) {
	return resolveRelated(ctx, r.db, "country_id", countryID,
		func(l *model.CountryPerson) uint64 { return l.PersonID }, personKey)
}

func (r *relationRepository) CountriesOfPerson(ctx context.Context, personID uint64) ([]PersonCountryLink, error) {
	return resolveRelated(ctx, r.db, "person_id", personID,
		func(l *model.CountryPerson) uint64 { return l.CountryID }, countryKey)
}
