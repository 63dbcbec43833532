package service

import (
	"context"
	"errors"
	"fmt"

	"HistoryAtlas/internal/model"
	"HistoryAtlas/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService 列表页与详情页的数据组装
type CatalogService struct {
	entities  repository.EntityRepository
	relations repository.RelationRepository
	logger    *logrus.Logger
}

// NewCatalogService 创建 CatalogService
func NewCatalogService(entities repository.EntityRepository, relations repository.RelationRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		entities:  entities,
		relations: relations,
		logger:    logger,
	}
}

// ===== 详情页 DTO =====

type CountryDetail struct {
	Country   *model.Country                   `json:"country"`
	Languages []repository.CountryLanguageLink `json:"languages"`
	Events    []repository.CountryEventLink    `json:"events"`
	People    []repository.CountryPersonLink   `json:"people"`
}

type PersonDetail struct {
	Person    *model.Person                   `json:"person"`
	Languages []repository.PersonLanguageLink `json:"languages"`
	Events    []repository.PersonEventLink    `json:"events"`
	Countries []repository.PersonCountryLink  `json:"countries"`
}

type EventDetail struct {
	Event     *model.Event                   `json:"event"`
	EventType *model.EventType               `json:"event_type"`
	People    []repository.EventPersonLink   `json:"people"`
	Countries []repository.EventCountryLink  `json:"countries"`
}

type LanguageDetail struct {
	Language  *model.Language                  `json:"language"`
	Countries []repository.LanguageCountryLink `json:"countries"`
	People    []repository.LanguagePersonLink  `json:"people"`
}

// EventSummary 事件列表行：事件 + 分类名
type EventSummary struct {
	model.Event
	TypeName string `json:"type_name"`
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]model.Country, error) {
	return s.entities.ListCountries(ctx)
}

func (s *CatalogService) ListPeople(ctx context.Context) ([]model.Person, error) {
	return s.entities.ListPeople(ctx)
}

func (s *CatalogService) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return s.entities.ListLanguages(ctx)
}

// ListEvents 事件列表，附带分类名（分类表很小，一次性取回后本地映射）
func (s *CatalogService) ListEvents(ctx context.Context) ([]EventSummary, error) {
	events, err := s.entities.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.entities.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}
	typeNameByID := make(map[uint64]string, len(types))
	for _, t := range types {
		typeNameByID[t.ID] = t.TypeName
	}
	items := make([]EventSummary, 0, len(events))
	for _, e := range events {
		name, ok := typeNameByID[e.TypeID]
		if !ok {
			s.logger.WithField("event_id", e.ID).WithField("type_id", e.TypeID).Warn("事件分类不存在")
		}
		items = append(items, EventSummary{Event: e, TypeName: name})
	}
	return items, nil
}

// GetCountryDetail 国家详情：语言（含占比）、事件、人物
func (s *CatalogService) GetCountryDetail(ctx context.Context, id uint64) (*CountryDetail, error) {
	country, err := s.entities.GetCountryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &CountryDetail{Country: country}
	if detail.Languages, err = s.relations.LanguagesOfCountry(ctx, id); err != nil {
		return nil, err
	}
	if detail.Events, err = s.relations.EventsOfCountry(ctx, id); err != nil {
		return nil, err
	}
	if detail.People, err = s.relations.PeopleOfCountry(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// GetPersonDetail 人物详情：语言、事件（含角色）、国家
func (s *CatalogService) GetPersonDetail(ctx context.Context, id uint64) (*PersonDetail, error) {
	person, err := s.entities.GetPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &PersonDetail{Person: person}
	if detail.Languages, err = s.relations.LanguagesOfPerson(ctx, id); err != nil {
		return nil, err
	}
	if detail.Events, err = s.relations.EventsOfPerson(ctx, id); err != nil {
		return nil, err
	}
	if detail.Countries, err = s.relations.CountriesOfPerson(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// GetEventDetail 事件详情：分类（直接外键）、人物（含角色）、国家
func (s *CatalogService) GetEventDetail(ctx context.Context, id uint64) (*EventDetail, error) {
	event, err := s.entities.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	eventType, err := s.entities.GetEventTypeByID(ctx, event.TypeID)
	if errors.Is(err, repository.ErrNotFound) {
		// 事件存在而分类缺失属于数据损坏，不能当作 404
		return nil, fmt.Errorf("event %d type %d: %w", event.ID, event.TypeID, repository.ErrDanglingReference)
	}
	if err != nil {
		return nil, err
	}
	detail := &EventDetail{Event: event, EventType: eventType}
	if detail.People, err = s.relations.PeopleOfEvent(ctx, id); err != nil {
		return nil, err
	}
	if detail.Countries, err = s.relations.CountriesOfEvent(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}

// GetLanguageDetail 语言详情：国家（含占比）、人物
func (s *CatalogService) GetLanguageDetail(ctx context.Context, id uint64) (*LanguageDetail, error) {
	language, err := s.entities.GetLanguageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &LanguageDetail{Language: language}
	if detail.Countries, err = s.relations.CountriesOfLanguage(ctx, id); err != nil {
		return nil, err
	}
	if detail.People, err = s.relations.PeopleOfLanguage(ctx, id); err != nil {
		return nil, err
	}
	return detail, nil
}
