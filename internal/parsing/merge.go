package parsing

import (
	"github.com/jonathan/resume-modifier/internal/types"
)

// MergeRecords folds partial records extracted from consecutive chunks into
// one resume. The first record seeds the result: its personal info (and any
// other singleton field) is kept as-is and never reconciled against later
// chunks. Entity lists are concatenated and then deduplicated by their key
// field (education by degree, experience by position, projects by name);
// when two entries share a key the earlier one wins outright. Skills are
// unioned with duplicates removed.
//
// An empty input yields a NoUsableDataError, never an empty record.
func MergeRecords(records []*types.ResumeData) (*types.ResumeData, error) {
	if len(records) == 0 {
		return nil, &NoUsableDataError{Document: "resume"}
	}

	merged := &types.ResumeData{
		PersonalInfo: records[0].PersonalInfo,
	}
	for _, rec := range records {
		merged.Education = append(merged.Education, rec.Education...)
		merged.Experience = append(merged.Experience, rec.Experience...)
		merged.Projects = append(merged.Projects, rec.Projects...)
		merged.Skills = append(merged.Skills, rec.Skills...)
	}

	merged.Education = dedupeByKey(merged.Education, func(e types.Education) string { return e.Degree })
	merged.Experience = dedupeByKey(merged.Experience, func(e types.Experience) string { return e.Position })
	merged.Projects = dedupeByKey(merged.Projects, func(p types.Project) string { return p.Name })
	merged.Skills = dedupeByKey(merged.Skills, func(s string) string { return s })

	merged.ApplyDefaults()
	return merged, nil
}

// dedupeByKey removes entries whose key was already seen, preserving
// first-seen order. Entries with an empty key are always kept; there is
// nothing meaningful to collide on.
func dedupeByKey[T any](items []T, key func(T) string) []T {
	if items == nil {
		return nil
	}
	seen := make(map[string]bool, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k != "" && seen[k] {
			continue
		}
		if k != "" {
			seen[k] = true
		}
		result = append(result, item)
	}
	return result
}
