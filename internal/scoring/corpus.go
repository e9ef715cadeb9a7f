// Package scoring implements the deterministic ATS match score: keyword
// coverage, quantified achievements and résumé structure measured against an
// ideal profile. Every function here is pure and safe for concurrent use.
package scoring

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Corpus source labels reported in KeywordMatch.FoundIn
const (
	sourceSummary        = "summary"
	sourceExperience     = "experience"
	sourceSkills         = "skills"
	sourceProjects       = "projects"
	sourceCertifications = "certifications"
)

// corpusPart is the lowercased text contributed by one résumé area.
type corpusPart struct {
	source string
	text   string
}

// corpusParts collects the searchable text of a résumé grouped by area.
func corpusParts(resume *types.ResumeProfile) []corpusPart {
	if resume == nil {
		return nil
	}

	var summary, experience, skills, projects, certifications []string

	if resume.PersonalInfo.Summary != "" {
		summary = append(summary, resume.PersonalInfo.Summary)
	}
	for _, exp := range resume.Experience {
		experience = append(experience, exp.Bullets...)
	}
	for _, skill := range resume.Skills {
		skills = append(skills, skill.Name)
	}
	for _, project := range resume.Projects {
		if project.Description != "" {
			projects = append(projects, project.Description)
		}
		projects = append(projects, project.Bullets...)
	}
	for _, cert := range resume.Certifications {
		certifications = append(certifications, cert.Name)
	}

	parts := make([]corpusPart, 0, 5)
	for _, p := range []struct {
		source string
		lines  []string
	}{
		{sourceSummary, summary},
		{sourceExperience, experience},
		{sourceSkills, skills},
		{sourceProjects, projects},
		{sourceCertifications, certifications},
	} {
		if len(p.lines) == 0 {
			continue
		}
		parts = append(parts, corpusPart{
			source: p.source,
			text:   strings.ToLower(strings.Join(p.lines, " ")),
		})
	}
	return parts
}

// ExtractCorpus flattens the résumé's searchable text (summary, experience
// bullets, skill names, project descriptions and bullets, certification
// names) into one lowercase string.
func ExtractCorpus(resume *types.ResumeProfile) string {
	parts := corpusParts(resume)
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.text
	}
	return strings.Join(texts, " ")
}

// KeywordInProfile reports whether keyword would match the given profile's
// corpus. Used to flag missing keywords the candidate could pull in from
// their full profile.
func KeywordInProfile(keyword string, profile *types.ResumeProfile) bool {
	return keywordMatchesText(keyword, ExtractCorpus(profile))
}
