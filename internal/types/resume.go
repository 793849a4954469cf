// Package types provides type definitions for structured data used throughout the resume-modifier system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// NotSpecified is the sentinel stored in place of a missing optional field
// where the schema calls for a placeholder rather than an empty value.
const NotSpecified = "Not specified"

// PersonalInfo holds the candidate's contact details. Only the name is
// required; everything else is best-effort extraction.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Education represents a single educational qualification.
type Education struct {
	Degree         string `json:"degree" validate:"required"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Major          string `json:"major,omitempty"`
}

// Experience represents a single work experience entry.
type Experience struct {
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Project represents a project entry, either extracted from a resume or
// suggested for a target job.
type Project struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Duration     string   `json:"duration,omitempty"`
	Role         string   `json:"role,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

// ResumeData is the structured form of a parsed resume. A partial record
// extracted from a single chunk and the final merged record share this shape.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personal_info" validate:"required"`
	Education    []Education  `json:"education" validate:"dive"`
	Experience   []Experience `json:"experience" validate:"dive"`
	Projects     []Project    `json:"projects" validate:"dive"`
	Skills       []string     `json:"skills"`
}

// Validate checks the record against its required-field constraints.
func (r *ResumeData) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ApplyDefaults fills sentinel values and normalizes nil list fields so a
// record round-trips through JSON with the documented shape.
func (r *ResumeData) ApplyDefaults() {
	for i := range r.Education {
		if r.Education[i].Institution == "" {
			r.Education[i].Institution = NotSpecified
		}
	}
	for i := range r.Experience {
		if r.Experience[i].Duration == "" {
			r.Experience[i].Duration = NotSpecified
		}
		if r.Experience[i].Description == nil {
			r.Experience[i].Description = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
		if r.Projects[i].Achievements == nil {
			r.Projects[i].Achievements = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
}
