package types

import (
	"github.com/go-playground/validator/v10"
)

// JobDescription is the structured form of a parsed job posting.
// Unlike resumes, job descriptions are never chunk-merged: only the first
// chunk of a long posting is parsed.
type JobDescription struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location,omitempty"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
	PreferredSkills  []string `json:"preferred_skills"`
}

// Validate checks the record against its required-field constraints.
func (j *JobDescription) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// ApplyDefaults normalizes nil list fields to empty lists.
func (j *JobDescription) ApplyDefaults() {
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
	if j.Qualifications == nil {
		j.Qualifications = []string{}
	}
	if j.PreferredSkills == nil {
		j.PreferredSkills = []string{}
	}
}
