package databasetest

import (
	"context"
	"testing"

	"HistoryAtlas/internal/model"
	"HistoryAtlas/internal/seed"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Seed 通过 seed.Loader 写入预置数据
func Seed(t *testing.T, db *gorm.DB, f *seed.Fixture) {
	t.Helper()
	require.NoError(t, seed.NewLoader(db, Logger()).Load(context.Background(), f, seed.Options{}))
}

func intPtr(v int) *int { return &v }

// SampleFixture 小型样例数据：
//   - Testland 讲 Testish(80%) 和 Otherish(20%)，参与 Founding，人物 Ada
//   - Ada 讲 Testish，在 Founding 中是 Founder，且同一条 PersonEvent 重复了一次
//   - Bob 没有任何关联
func SampleFixture() *seed.Fixture {
	return &seed.Fixture{
		Countries: []model.Country{
			{ID: 1, Name: "Testland", Area: 1234.5, Population: 1000000},
			{ID: 2, Name: "Emptyland", Area: 10, Population: 3},
		},
		Languages: []model.Language{
			{ID: 1, Name: "Testish"},
			{ID: 2, Name: "Otherish"},
		},
		People: []model.Person{
			{ID: 1, Name: "Ada", BirthYear: 1815, DeathYear: intPtr(1852)},
			{ID: 2, Name: "Bob", BirthYear: 1990},
		},
		EventTypes: []model.EventType{
			{ID: 1, TypeName: "Foundation"},
		},
		Events: []model.Event{
			{ID: 1, Name: "Founding", TypeID: 1, StartYear: 1800, EndYear: intPtr(1801)},
			{ID: 2, Name: "Long Peace", TypeID: 1, StartYear: 1900},
		},
		CountryLanguages: []model.CountryLanguage{
			{CountryID: 1, LanguageID: 1, Percentage: 80.0},
			{CountryID: 1, LanguageID: 2, Percentage: 20.0},
		},
		PersonLanguages: []model.PersonLanguage{
			{PersonID: 1, LanguageID: 1},
		},
		PersonEvents: []model.PersonEvent{
			{PersonID: 1, EventID: 1, Role: "Founder"},
			{PersonID: 1, EventID: 1, Role: "Founder"},
		},
		CountryEvents: []model.CountryEvent{
			{CountryID: 1, EventID: 1},
		},
		CountryPeople: []model.CountryPerson{
			{CountryID: 1, PersonID: 1},
		},
	}
}
