package handlers

import (
	"strings"

	"github.com/yoockh/jardam/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApplicationRequest struct {
	Name              string     `json:"name"`
	Contact           string     `json:"contact"`
	Address           string     `json:"address"`
	Category          string     `json:"category"`
	OtherCategoryText string     `json:"otherCategoryText"`
	Description       string     `json:"description"`
	Datetime          string     `json:"datetime"`
	Price             FlexString `json:"price"`
}

func (r ApplicationRequest) toModel() *models.Application {
	return &models.Application{
		Name:              r.Name,
		Contact:           r.Contact,
		Address:           r.Address,
		Category:          r.Category,
		OtherCategoryText: r.OtherCategoryText,
		Description:       r.Description,
		Datetime:          r.Datetime,
		Price:             string(r.Price),
	}
}

type VacancyRequest struct {
	ContactName    string    `json:"contactName"`
	Phone          string    `json:"phone" binding:"omitempty,phone"`
	LocationText   string    `json:"locationText"`
	CategoryIDs    FlexList  `json:"categoryIds"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DateTime       string    `json:"dateTime"`
	IsFlexibleTime bool      `json:"isFlexibleTime"`
	Schedule       FlexList  `json:"schedule"`
	PayAmount      FlexFloat `json:"payAmount"`
	PayType        string    `json:"payType" binding:"omitempty,oneof=hour shift fixed"`
	Tags           FlexList  `json:"tags"`
}

func (r VacancyRequest) toModel() *models.Vacancy {
	return &models.Vacancy{
		ContactName:    r.ContactName,
		Phone:          r.Phone,
		LocationText:   r.LocationText,
		CategoryIDs:    []string(r.CategoryIDs),
		Title:          r.Title,
		Description:    r.Description,
		DateTime:       r.DateTime,
		IsFlexibleTime: r.IsFlexibleTime,
		Schedule:       []string(r.Schedule),
		PayAmount:      r.PayAmount.Ptr(),
		PayType:        models.PayType(strings.TrimSpace(r.PayType)),
		Tags:           []string(r.Tags),
	}
}

type ProfileRequest struct {
	Name            string    `json:"name"`
	Phone           string    `json:"phone" binding:"omitempty,phone"`
	Categories      FlexList  `json:"categories"`
	Headline        string    `json:"headline"`
	Availability    FlexList  `json:"availability"`
	PayMin          FlexFloat `json:"payMin"`
	PayType         string    `json:"payType" binding:"omitempty,oneof=hour shift fixed"`
	City            string    `json:"city"`
	LocationText    string    `json:"locationText"`
	About           string    `json:"about"`
	ExperienceLevel string    `json:"experienceLevel"`
	Languages       FlexList  `json:"languages"`
	WorkFormat      FlexList  `json:"workFormat"`
	ContactMethods  FlexList  `json:"contactMethods"`
	Age             FlexInt   `json:"age"`
	Tags            FlexList  `json:"tags"`
}

func (r ProfileRequest) toModel() *models.WorkerProfile {
	return &models.WorkerProfile{
		Name:            r.Name,
		Phone:           r.Phone,
		Categories:      []string(r.Categories),
		Headline:        r.Headline,
		Availability:    []string(r.Availability),
		PayMin:          r.PayMin.Ptr(),
		PayType:         models.PayType(strings.TrimSpace(r.PayType)),
		City:            r.City,
		LocationText:    r.LocationText,
		About:           r.About,
		ExperienceLevel: r.ExperienceLevel,
		Languages:       []string(r.Languages),
		WorkFormat:      []string(r.WorkFormat),
		ContactMethods:  []string(r.ContactMethods),
		Age:             r.Age.Ptr(),
		Tags:            []string(r.Tags),
	}
}
