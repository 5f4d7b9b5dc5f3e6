package handlers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/utils"
)

// queryList merges repeated keys, comma lists and JSON array strings.
func queryList(c *gin.Context, key string) []string {
	return utils.CleanList(lo.FlatMap(c.QueryArray(key), func(raw string, _ int) []string {
		return utils.ParseList(raw)
	}))
}

// queryFloat drops values that do not parse.
func queryFloat(c *gin.Context, key string) *float64 {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true":
		return true
	}
	return false
}

// queryDate keeps the YYYY-MM-DD prefix of a date or datetime.
func queryDate(c *gin.Context, key string) string {
	s := strings.TrimSpace(c.Query(key))
	if len(s) < 10 {
		return ""
	}
	if _, err := time.Parse(time.DateOnly, s[:10]); err != nil {
		return ""
	}
	return s[:10]
}

func vacancyFilterFrom(c *gin.Context) models.VacancyFilter {
	return models.VacancyFilter{
		Query:        strings.TrimSpace(c.Query("query")),
		Categories:   queryList(c, "category"),
		Schedule:     queryList(c, "schedule"),
		Tags:         queryList(c, "tags"),
		PayMin:       queryFloat(c, "payMin"),
		PayMax:       queryFloat(c, "payMax"),
		Date:         queryDate(c, "date"),
		FlexibleOnly: queryBool(c, "flexibleOnly"),
		Limit:        queryInt(c, "limit"),
		Offset:       queryInt(c, "offset"),
	}
}

func profileFilterFrom(c *gin.Context) models.ProfileFilter {
	return models.ProfileFilter{
		Query:           strings.TrimSpace(c.Query("query")),
		Categories:      queryList(c, "category"),
		Availability:    queryList(c, "availability"),
		Languages:       queryList(c, "languages"),
		WorkFormat:      queryList(c, "workFormat"),
		PayMin:          queryFloat(c, "payMin"),
		PayMax:          queryFloat(c, "payMax"),
		City:            strings.TrimSpace(c.Query("city")),
		Location:        strings.TrimSpace(c.Query("location")),
		ExperienceLevel: strings.TrimSpace(c.Query("experienceLevel")),
		Limit:           queryInt(c, "limit"),
		Offset:          queryInt(c, "offset"),
	}
}
