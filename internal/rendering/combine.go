// Package rendering combines parsed resume data with a job analysis and
// renders the result as a PDF resume.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-modifier/internal/types"
)

// RenderedResume is the presentation model the PDF writer consumes: the
// candidate's own contact details, education, and experience, with projects
// and skills replaced by the job-tailored versions from the analysis.
type RenderedResume struct {
	PersonalInfo types.PersonalInfo
	ContactLine  string
	Education    []string
	Experience   []ExperienceSection
	Projects     []ProjectSection
	Skills       []SkillRow
}

// ExperienceSection is one job entry prepared for display.
type ExperienceSection struct {
	Heading  string
	Duration string
	Bullets  []string
}

// ProjectSection is one project entry prepared for display.
type ProjectSection struct {
	Heading      string
	Role         string
	Description  string
	Technologies string
	Achievements []string
	URL          string
}

// SkillRow is one labeled skill group, values joined for a table row.
type SkillRow struct {
	Label  string
	Values string
}

// CombineResumeData merges a parsed resume with a job analysis into the
// presentation model. Education and experience come from the resume;
// projects and skills come from the analysis, since those are the sections
// tailored to the target job.
func CombineResumeData(resume *types.ResumeData, analysis *types.JobAnalysis) *RenderedResume {
	return &RenderedResume{
		PersonalInfo: resume.PersonalInfo,
		ContactLine:  formatContactLine(resume.PersonalInfo),
		Education:    formatEducation(resume.Education),
		Experience:   formatExperience(resume.Experience),
		Projects:     formatProjects(analysis.Projects),
		Skills:       formatSkills(analysis.Skills),
	}
}

func formatContactLine(info types.PersonalInfo) string {
	var parts []string
	if info.Email != "" {
		parts = append(parts, info.Email)
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.Location != "" {
		parts = append(parts, info.Location)
	}
	if info.LinkedIn != "" {
		parts = append(parts, "LinkedIn: "+info.LinkedIn)
	}
	return strings.Join(parts, " | ")
}

// formatEducation renders each entry as a single display line. The
// "Not specified" placeholder is omitted rather than printed.
func formatEducation(entries []types.Education) []string {
	lines := make([]string, 0, len(entries))
	for _, edu := range entries {
		parts := []string{edu.Degree}
		if edu.Major != "" {
			parts = append(parts, edu.Major)
		}
		if edu.Institution != "" && edu.Institution != types.NotSpecified {
			parts = append(parts, edu.Institution)
		}
		if edu.GraduationYear != "" {
			parts = append(parts, "Graduation: "+edu.GraduationYear)
		}
		if edu.GPA != "" {
			parts = append(parts, "GPA: "+edu.GPA)
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return lines
}

func formatExperience(entries []types.Experience) []ExperienceSection {
	sections := make([]ExperienceSection, 0, len(entries))
	for _, exp := range entries {
		section := ExperienceSection{
			Heading: fmt.Sprintf("%s - %s", exp.Position, exp.Company),
			Bullets: exp.Description,
		}
		if exp.Duration != "" && exp.Duration != types.NotSpecified {
			section.Duration = exp.Duration
		}
		sections = append(sections, section)
	}
	return sections
}

func formatProjects(entries []types.Project) []ProjectSection {
	sections := make([]ProjectSection, 0, len(entries))
	for _, proj := range entries {
		heading := proj.Name
		if proj.Duration != "" {
			heading = fmt.Sprintf("%s (%s)", proj.Name, proj.Duration)
		}
		sections = append(sections, ProjectSection{
			Heading:      heading,
			Role:         proj.Role,
			Description:  proj.Description,
			Technologies: strings.Join(proj.Technologies, ", "),
			Achievements: proj.Achievements,
			URL:          proj.URL,
		})
	}
	return sections
}

func formatSkills(groups types.SkillGroups) []SkillRow {
	var rows []SkillRow
	add := func(label string, values []string) {
		if len(values) > 0 {
			rows = append(rows, SkillRow{Label: label, Values: strings.Join(values, ", ")})
		}
	}
	add("Technical Skills:", groups.TechnicalSkills)
	add("Tools & Technologies:", groups.Tools)
	add("Soft Skills:", groups.SoftSkills)
	add("Domain Knowledge:", groups.DomainKnowledge)
	return rows
}
