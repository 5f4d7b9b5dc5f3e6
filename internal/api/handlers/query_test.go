package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/vacancies?"+rawQuery, nil)
	return c
}

func Test_VacancyFilterFrom(t *testing.T) {
	c := contextFor(`query=+cook+&category=food,cleaning&category=%5B%22promo%22%5D&payMin=100&payMax=abc&date=2024-06-01T10:00&flexibleOnly=1&limit=5&offset=-2`)

	f := vacancyFilterFrom(c)

	assert.Equal(t, "cook", f.Query)
	assert.Equal(t, []string{"food", "cleaning", "promo"}, f.Categories)
	require.NotNil(t, f.PayMin)
	assert.Equal(t, 100.0, *f.PayMin)
	assert.Nil(t, f.PayMax)
	assert.Equal(t, "2024-06-01", f.Date)
	assert.True(t, f.FlexibleOnly)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, 0, f.Offset)
	assert.Empty(t, f.Tags)
}

func Test_VacancyFilterFrom_DropsMalformedDate(t *testing.T) {
	f := vacancyFilterFrom(contextFor("date=tomorrow&flexibleOnly=yes"))
	assert.Empty(t, f.Date)
	assert.False(t, f.FlexibleOnly)
}

func Test_ProfileFilterFrom(t *testing.T) {
	f := profileFilterFrom(contextFor("city=Almaty&languages=ru&languages=kk&experienceLevel=senior&location=center"))

	assert.Equal(t, "Almaty", f.City)
	assert.Equal(t, []string{"ru", "kk"}, f.Languages)
	assert.Equal(t, "senior", f.ExperienceLevel)
	assert.Equal(t, "center", f.Location)
	assert.Nil(t, f.PayMin)
}
