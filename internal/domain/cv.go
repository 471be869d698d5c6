package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

const DefaultCVTitle = "My CV"

type CV struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Location      *string   `json:"location"`
	Summary       *string   `json:"summary"`
	Skills        []string  `json:"skills"`
	Experience    string    `json:"experience"`
	Education     string    `json:"education"`
	GeneratedHTML *string   `json:"generatedHtml"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Content returns the fields sent to the completion gateway.
func (cv *CV) Content() CVContent {
	return CVContent{
		FullName:   cv.FullName,
		Email:      cv.Email,
		Phone:      deref(cv.Phone),
		Location:   deref(cv.Location),
		Summary:    deref(cv.Summary),
		Skills:     append([]string(nil), cv.Skills...),
		Experience: cv.Experience,
		Education:  cv.Education,
	}
}

// SkillList accepts either a JSON array of strings or a single
// comma-separated string. Entries are trimmed and empty entries dropped.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	var raw []string
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		var csv string
		if err := json.Unmarshal(data, &csv); err != nil {
			return err
		}
		raw = strings.Split(csv, ",")
	}

	*s = ParseSkills(raw...)
	return nil
}

// ParseSkills splits every part on commas, trims, and drops empty entries.
func ParseSkills(parts ...string) SkillList {
	out := SkillList{}
	for _, part := range parts {
		for _, skill := range strings.Split(part, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				out = append(out, skill)
			}
		}
	}
	return out
}

// CVInput is the CV form submitted by the client.
type CVInput struct {
	UserID     UserRef   `json:"userId"`
	Title      string    `json:"title" validate:"max=100"`
	FullName   string    `json:"fullName" validate:"required,min=2,max=50,alpha_space"`
	Email      string    `json:"email" validate:"required,min=5,max=100,email"`
	Phone      string    `json:"phone" validate:"omitempty,valid_phone"`
	Location   string    `json:"location" validate:"omitempty,min=2"`
	Summary    string    `json:"summary" validate:"omitempty,min=50,max=500"`
	Skills     SkillList `json:"skills" validate:"required,min=3"`
	Experience string    `json:"experience" validate:"required,min=20,max=2000"`
	Education  string    `json:"education" validate:"required,min=10,max=1000"`
}

// Normalize trims surrounding whitespace so blank input fails "required".
func (in *CVInput) Normalize() {
	in.UserID = UserRef(strings.TrimSpace(string(in.UserID)))
	in.Title = strings.TrimSpace(in.Title)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Location = strings.TrimSpace(in.Location)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Experience = strings.TrimSpace(in.Experience)
	in.Education = strings.TrimSpace(in.Education)
}

// CVContent is the data a CV is generated from.
type CVContent struct {
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
}

type CVRepository interface {
	Create(ctx context.Context, cv *CV) error
	GetByID(ctx context.Context, id int64) (*CV, error)
	UpdateHTML(ctx context.Context, id int64, html string) (*CV, error)
	ListByUser(ctx context.Context, userID string) ([]CV, error)
}

type CVUsecase interface {
	GenerateCV(ctx context.Context, input *CVInput) (*CV, error)
	RegenerateCV(ctx context.Context, id int64) (*CV, error)
	GetCV(ctx context.Context, id int64) (*CV, error)
	ListUserCVs(ctx context.Context, userID string) ([]CV, error)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
