package gormrepo

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

// at returns increasing creation times so ordering assertions are stable.
func at(minutes int) time.Time {
	return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
}

func seedVacancies(t *testing.T, repo VacancyRepository) []models.Vacancy {
	t.Helper()
	ctx := context.Background()

	rows := []models.Vacancy{
		{
			ContactName: "Aigerim", Phone: "+77011234567", Title: "Dishwasher",
			Description: "Evening shift in a cafe", LocationText: "Almaty, Abay ave",
			CategoryIDs: []string{"food", "cleaning"}, Schedule: []string{"evening"},
			PayAmount: ptr(80.0), PayType: models.PayShift, DateTime: "2024-06-01T18:00",
			CreatedAt: at(1),
		},
		{
			ContactName: "Nurlan", Phone: "87011234567", Title: "Courier",
			Description: "Deliver parcels by bike", LocationText: "Astana",
			CategoryIDs: []string{"delivery"}, Tags: []string{"bike", "daily_pay"},
			PayAmount: ptr(150.0), PayType: models.PayHour, IsFlexibleTime: true,
			CreatedAt: at(2),
		},
		{
			ContactName: "Dana", Phone: "7011234567", Title: "Loader",
			Description: "Warehouse help", LocationText: "Almaty",
			CategoryIDs: []string{"warehouse", "delivery"},
			PayAmount: ptr(100.0), PayType: models.PayFixed, DateTime: "2024-06-01T08:30",
			CreatedAt: at(3),
		},
		{
			ContactName: "Erlan", Phone: "7011234568", Title: "Promoter",
			Description: "Hand out flyers", CategoryIDs: []string{"promo"},
			CreatedAt: at(4),
		},
	}
	for i := range rows {
		require.NoError(t, repo.Create(ctx, &rows[i]))
	}
	return rows
}

func titles(rows []models.Vacancy) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Title)
	}
	return out
}

func Test_VacancyRepo_Search_PayMinNeverReturnsLowerPay(t *testing.T) {
	repo := NewVacancyRepo(newTestDB(t))
	seedVacancies(t, repo)

	rows, err := repo.Search(context.Background(), models.VacancyFilter{PayMin: ptr(100.0)})
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	for _, r := range rows {
		require.NotNil(t, r.PayAmount)
		assert.GreaterOrEqual(t, *r.PayAmount, 100.0)
	}
	assert.Equal(t, []string{"Loader", "Courier"}, titles(rows))
}

func Test_VacancyRepo_Search_Filters(t *testing.T) {
	repo := NewVacancyRepo(newTestDB(t))
	seedVacancies(t, repo)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Vacancy{
		Title: "Курьер", Description: "Доставка документов", LocationText: "Бишкек, Центр",
		CategoryIDs: []string{"Дети / Няня"}, CreatedAt: at(5),
	}))

	tests := []struct {
		name   string
		filter models.VacancyFilter
		want   []string
	}{
		{"no filter newest first", models.VacancyFilter{}, []string{"Курьер", "Promoter", "Loader", "Courier", "Dishwasher"}},
		{"categories match any", models.VacancyFilter{Categories: []string{"cleaning", "promo"}}, []string{"Promoter", "Dishwasher"}},
		{"query is case insensitive", models.VacancyFilter{Query: "ALMATY"}, []string{"Loader", "Dishwasher"}},
		{"query escapes wildcards", models.VacancyFilter{Query: "%"}, []string{}},
		{"tag with underscore", models.VacancyFilter{Tags: []string{"daily_pay"}}, []string{"Courier"}},
		{"pay range", models.VacancyFilter{PayMin: ptr(80.0), PayMax: ptr(100.0)}, []string{"Loader", "Dishwasher"}},
		{"same day ignores time", models.VacancyFilter{Date: "2024-06-01"}, []string{"Loader", "Dishwasher"}},
		{"flexible only", models.VacancyFilter{FlexibleOnly: true}, []string{"Courier"}},
		{"schedule", models.VacancyFilter{Schedule: []string{"evening"}}, []string{"Dishwasher"}},
		{"limit and offset", models.VacancyFilter{Limit: 2, Offset: 1}, []string{"Promoter", "Loader"}},
		{"cyrillic title lower", models.VacancyFilter{Query: "курьер"}, []string{"Курьер"}},
		{"cyrillic title upper", models.VacancyFilter{Query: "КУРЬЕР"}, []string{"Курьер"}},
		{"cyrillic location", models.VacancyFilter{Query: "центр"}, []string{"Курьер"}},
		{"cyrillic description", models.VacancyFilter{Query: "ДОКУМЕНТОВ"}, []string{"Курьер"}},
		{"cyrillic category", models.VacancyFilter{Categories: []string{"Дети / Няня"}}, []string{"Курьер"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(rows))
		})
	}
}

func Test_VacancyRepo_ListFieldsRoundTripInOrder(t *testing.T) {
	repo := NewVacancyRepo(newTestDB(t))
	ctx := context.Background()

	v := &models.Vacancy{
		Title: "Painter", CategoryIDs: []string{"z", "a", "m"},
		Schedule: []string{"weekend", "morning"}, Tags: []string{},
		CreatedAt: at(0),
	}
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, []string(got.CategoryIDs))
	assert.Equal(t, []string{"weekend", "morning"}, []string(got.Schedule))
	assert.Empty(t, got.Tags)
	assert.Nil(t, got.PayAmount)
}

func Test_VacancyRepo_UpdateAndDelete_ReportRowsAffected(t *testing.T) {
	repo := NewVacancyRepo(newTestDB(t))
	rows := seedVacancies(t, repo)
	ctx := context.Background()

	changed := rows[0]
	changed.Title = "Senior dishwasher"
	changed.PayAmount = nil
	changed.CategoryIDs = []string{"food"}
	n, err := repo.Update(ctx, &changed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior dishwasher", got.Title)
	assert.Nil(t, got.PayAmount)
	assert.Equal(t, []string{"food"}, []string(got.CategoryIDs))

	n, err = repo.Delete(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetByID(ctx, rows[0].ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	n, err = repo.Delete(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func Test_VacancyRepo_ListByUser(t *testing.T) {
	repo := NewVacancyRepo(newTestDB(t))
	ctx := context.Background()

	owner := uint(7)
	require.NoError(t, repo.Create(ctx, &models.Vacancy{Title: "mine-old", UserID: &owner, CreatedAt: at(1)}))
	require.NoError(t, repo.Create(ctx, &models.Vacancy{Title: "anon", CreatedAt: at(2)}))
	require.NoError(t, repo.Create(ctx, &models.Vacancy{Title: "mine-new", UserID: &owner, CreatedAt: at(3)}))

	rows, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine-new", "mine-old"}, titles(rows))
}

func Test_ProfileRepo_Search(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))
	ctx := context.Background()

	seed := []models.WorkerProfile{
		{
			Name: "Asel", Headline: "Nanny with 5 years experience", City: "Almaty",
			LocationText: "Bostandyk district", Categories: []string{"childcare"},
			Languages: []string{"ru", "kk"}, WorkFormat: []string{"onsite"},
			PayMin: ptr(2000.0), ExperienceLevel: "senior", CreatedAt: at(1),
		},
		{
			Name: "Timur", Headline: "Handyman", City: "astana",
			LocationText: "Left bank", Categories: []string{"repair", "moving"},
			Languages: []string{"ru"}, Availability: []string{"weekends"},
			PayMin: ptr(1500.0), ExperienceLevel: "middle", CreatedAt: at(2),
		},
		{
			Name: "Асель", Headline: "Няня", City: "Бишкек", LocationText: "Центр",
			About: "Опыт работы с детьми", Categories: []string{"Дети / Няня"}, CreatedAt: at(3),
		},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	names := func(rows []models.WorkerProfile) []string {
		out := []string{}
		for _, r := range rows {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.ProfileFilter
		want   []string
	}{
		{"all", models.ProfileFilter{}, []string{"Асель", "Timur", "Asel"}},
		{"city is case insensitive equality", models.ProfileFilter{City: "ASTANA"}, []string{"Timur"}},
		{"location substring", models.ProfileFilter{Location: "bostandyk"}, []string{"Asel"}},
		{"languages any", models.ProfileFilter{Languages: []string{"kk", "en"}}, []string{"Asel"}},
		{"pay max", models.ProfileFilter{PayMax: ptr(1800.0)}, []string{"Timur"}},
		{"experience exact", models.ProfileFilter{ExperienceLevel: "senior"}, []string{"Asel"}},
		{"query over headline", models.ProfileFilter{Query: "nanny"}, []string{"Asel"}},
		{"availability", models.ProfileFilter{Availability: []string{"weekends"}}, []string{"Timur"}},
		{"cyrillic city exact", models.ProfileFilter{City: "Бишкек"}, []string{"Асель"}},
		{"cyrillic city upper", models.ProfileFilter{City: " БИШКЕК "}, []string{"Асель"}},
		{"cyrillic location", models.ProfileFilter{Location: "центр"}, []string{"Асель"}},
		{"cyrillic headline", models.ProfileFilter{Query: "НЯНЯ"}, []string{"Асель"}},
		{"cyrillic name", models.ProfileFilter{Query: "асель"}, []string{"Асель"}},
		{"cyrillic about", models.ProfileFilter{Query: "детьми"}, []string{"Асель"}},
		{"cyrillic category", models.ProfileFilter{Categories: []string{"Дети / Няня"}}, []string{"Асель"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(rows))
		})
	}
}

func Test_ProfileRepo_UpdateRefreshesSearchKeys(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))
	ctx := context.Background()

	p := &models.WorkerProfile{Name: "Timur", City: "Astana", CreatedAt: at(0)}
	require.NoError(t, repo.Create(ctx, p))

	n, err := repo.Update(ctx, &models.WorkerProfile{ID: p.ID, Name: "Тимур", City: "Ош", LocationText: "Базар"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rows, err := repo.Search(ctx, models.ProfileFilter{Query: "ТИМУР", City: "ош", Location: "БАЗАР"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, p.ID, rows[0].ID)

	rows, err = repo.Search(ctx, models.ProfileFilter{City: "astana"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func Test_Migrate_BackfillsSearchKeys(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	vacancies, profiles := NewVacancyRepo(db), NewProfileRepo(db)

	v := &models.Vacancy{Title: "Курьер", CreatedAt: at(0)}
	require.NoError(t, vacancies.Create(ctx, v))
	p := &models.WorkerProfile{Name: "Асель", City: "Бишкек", CreatedAt: at(0)}
	require.NoError(t, profiles.Create(ctx, p))

	// Rows written before the folded columns existed.
	require.NoError(t, db.Model(&models.Vacancy{}).Where("id = ?", v.ID).UpdateColumn("search_text", "").Error)
	require.NoError(t, db.Model(&models.WorkerProfile{}).Where("id = ?", p.ID).
		UpdateColumns(map[string]any{"search_text": "", "city_key": ""}).Error)

	require.NoError(t, Migrate(db))

	vs, err := vacancies.Search(ctx, models.VacancyFilter{Query: "КУРЬЕР"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Курьер"}, titles(vs))

	ps, err := profiles.Search(ctx, models.ProfileFilter{Query: "асель", City: "бишкек"})
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, p.ID, ps[0].ID)
}

func Test_UserRepo_UniqueEmail(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x"}))
	err := repo.Create(ctx, &models.User{Name: "B", Email: "a@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, utils.ErrDuplicate)

	u, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", u.Name)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func Test_SessionRepo_GetByToken(t *testing.T) {
	repo := NewSessionRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Session{UserID: 3, Token: "tok-1"}))

	s, err := repo.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, s.UserID)
	assert.False(t, s.CreatedAt.IsZero())

	_, err = repo.GetByToken(ctx, "tok-2")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = repo.Create(ctx, &models.Session{UserID: 4, Token: "tok-1"})
	assert.ErrorIs(t, err, utils.ErrDuplicate)
}

func Test_ApplicationRepo_UpdateTouchesEditableColumnsOnly(t *testing.T) {
	repo := NewApplicationRepo(newTestDB(t))
	ctx := context.Background()

	a := &models.Application{Name: "Old", Address: "Street 1", OtherCategoryText: "misc", CreatedAt: at(0)}
	require.NoError(t, repo.Create(ctx, a))

	n, err := repo.Update(ctx, &models.Application{ID: a.ID, Name: "New", Price: "500"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "500", got.Price)
	assert.Equal(t, "Street 1", got.Address)
	assert.Equal(t, "misc", got.OtherCategoryText)

	n, err = repo.Update(ctx, &models.Application{ID: a.ID + 100, Name: "ghost"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
