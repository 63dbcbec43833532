package repository_test

import (
	"context"
	"regexp"
	"testing"

	"HistoryAtlas/internal/database/databasetest"
	"HistoryAtlas/internal/model"
	"HistoryAtlas/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLanguagesOfCountryCarriesPercentage(t *testing.T) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	repo := repository.NewRelationRepository(db)

	links, err := repo.LanguagesOfCountry(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Testish", links[0].Entity.Name)
	assert.Equal(t, 80.0, links[0].Link.Percentage)
	assert.Equal(t, "Otherish", links[1].Entity.Name)
	assert.Equal(t, 20.0, links[1].Link.Percentage)
}

func TestRelationsBothDirections(t *testing.T) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	repo := repository.NewRelationRepository(db)
	ctx := context.Background()

	countries, err := repo.CountriesOfLanguage(ctx, 2)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Testland", countries[0].Entity.Name)

	personLangs, err := repo.LanguagesOfPerson(ctx, 1)
	require.NoError(t, err)
	require.Len(t, personLangs, 1)
	assert.Equal(t, "Testish", personLangs[0].Entity.Name)

	speakers, err := repo.PeopleOfLanguage(ctx, 1)
	require.NoError(t, err)
	require.Len(t, speakers, 1)
	assert.Equal(t, "Ada", speakers[0].Entity.Name)

	countryEvents, err := repo.EventsOfCountry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, countryEvents, 1)
	assert.Equal(t, "Founding", countryEvents[0].Entity.Name)

	eventCountries, err := repo.CountriesOfEvent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, eventCountries, 1)
	assert.Equal(t, uint64(1), eventCountries[0].Entity.ID)

	citizens, err := repo.PeopleOfCountry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, citizens, 1)
	assert.Equal(t, "Ada", citizens[0].Entity.Name)

	homes, err := repo.CountriesOfPerson(ctx, 1)
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, "Testland", homes[0].Entity.Name)
}

func TestDuplicateLinksAreKept(t *testing.T) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	repo := repository.NewRelationRepository(db)
	ctx := context.Background()

	events, err := repo.EventsOfPerson(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "Founding", e.Entity.Name)
		assert.Equal(t, "Founder", e.Link.Role)
	}
	assert.NotEqual(t, events[0].Link.ID, events[1].Link.ID)

	people, err := repo.PeopleOfEvent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, people, 2)
}

func TestNoLinksIsEmptyNotError(t *testing.T) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	repo := repository.NewRelationRepository(db)
	ctx := context.Background()

	events, err := repo.EventsOfPerson(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	// 不存在的 owner 同样返回空集合，是否 404 由详情页的主键查询决定
	langs, err := repo.LanguagesOfCountry(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestDanglingLinkIsReported(t *testing.T) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	// 绕过 seed 的外键检查直接写入坏数据
	require.NoError(t, db.Create(&model.CountryPerson{CountryID: 2, PersonID: 42}).Error)

	_, err := repository.NewRelationRepository(db).PeopleOfCountry(context.Background(), 2)
	assert.ErrorIs(t, err, repository.ErrDanglingReference)
}

func TestRelationQueriesFilterByOwner(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "country_language" WHERE country_id = $1 ORDER BY id ASC`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "country_id", "language_id", "percentage"}).
			AddRow(1, 7, 3, 55.5).
			AddRow(2, 7, 3, 55.5))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "language" WHERE id IN ($1)`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Lingua"))

	links, err := repository.NewRelationRepository(db).LanguagesOfCountry(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Lingua", links[1].Entity.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
