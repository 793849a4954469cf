package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillGroups organizes job-tailored skills into resume sections.
type SkillGroups struct {
	TechnicalSkills []string `json:"technical_skills"`
	Tools           []string `json:"tools"`
	SoftSkills      []string `json:"soft_skills"`
	DomainKnowledge []string `json:"domain_knowledge"`
}

// JobAnalysis combines tailored projects and grouped skills for a target job.
// It is the input the resume generator merges with the candidate's parsed
// resume to produce the final document.
type JobAnalysis struct {
	Projects []Project   `json:"projects" validate:"dive"`
	Skills   SkillGroups `json:"skills"`
}

// Validate checks the analysis against its required-field constraints.
func (a *JobAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// ProjectSuggestions holds LLM-generated project ideas for a job description.
type ProjectSuggestions struct {
	Projects []Project `json:"projects" validate:"required,min=1,dive"`
}

// Validate checks the suggestions against their required-field constraints.
func (s *ProjectSuggestions) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
