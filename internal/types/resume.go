// Package types provides type definitions for structured data used throughout the ats-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// Section identifies one of the fixed résumé sections.
type Section string

// Canonical résumé sections
const (
	SectionPersonalInfo   Section = "personal_info"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
)

// AllSections returns every canonical section in canonical order.
func AllSections() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionLanguages,
		SectionCertifications,
		SectionProjects,
	}
}

// Valid reports whether s is one of the canonical sections.
func (s Section) Valid() bool {
	switch s {
	case SectionPersonalInfo, SectionExperience, SectionEducation, SectionSkills,
		SectionLanguages, SectionCertifications, SectionProjects:
		return true
	}
	return false
}

// ParseSection converts a raw string into a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown resume section %q", raw)
	}
	return s, nil
}

// UnmarshalJSON rejects values outside the canonical section set.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSection(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PersonalInfo holds contact details and the professional summary
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedIn"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// ExperienceEntry represents a single position held by the candidate
type ExperienceEntry struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Current   bool     `json:"current"`
	Location  string   `json:"location"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry represents a degree or program
type EducationEntry struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

// SkillEntry is a single named skill
type SkillEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LanguageEntry is a spoken language with proficiency
type LanguageEntry struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CertificationEntry is a professional certification
type CertificationEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// ProjectEntry is a side or portfolio project
type ProjectEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Bullets     []string `json:"bullets"`
}

// ResumeProfile is the résumé content being scored. It doubles as the
// master (full) profile, in which case IncludedSections and SectionOrder
// are ignored.
type ResumeProfile struct {
	PersonalInfo     PersonalInfo         `json:"personal_info"`
	Experience       []ExperienceEntry    `json:"experience"`
	Education        []EducationEntry     `json:"education"`
	Skills           []SkillEntry         `json:"skills"`
	Languages        []LanguageEntry      `json:"languages"`
	Certifications   []CertificationEntry `json:"certifications"`
	Projects         []ProjectEntry       `json:"projects"`
	IncludedSections []Section            `json:"included_sections"`
	SectionOrder     []Section            `json:"section_order"`
}

// Normalize returns a copy of the profile in which every absent collection is
// an empty slice. Nested bullet lists are normalized as well. The receiver is
// left untouched.
func (r *ResumeProfile) Normalize() ResumeProfile {
	if r == nil {
		r = &ResumeProfile{}
	}
	out := *r

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Bullets = nonNil(exp.Bullets)
		out.Experience[i] = exp
	}

	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, proj := range r.Projects {
		proj.Bullets = nonNil(proj.Bullets)
		out.Projects[i] = proj
	}

	out.Education = nonNil(r.Education)
	out.Skills = nonNil(r.Skills)
	out.Languages = nonNil(r.Languages)
	out.Certifications = nonNil(r.Certifications)
	out.IncludedSections = nonNil(r.IncludedSections)
	out.SectionOrder = nonNil(r.SectionOrder)

	return out
}

// Includes reports whether the section is part of the included set.
func (r *ResumeProfile) Includes(section Section) bool {
	for _, s := range r.IncludedSections {
		if s == section {
			return true
		}
	}
	return false
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
