package types

import "github.com/google/uuid"

// Scorable is the shared projection the scoring engine works on. Each concrete
// catalog type exposes it through an explicit adapter method rather than
// relying on structural typing.
type Scorable struct {
	Sector            string
	RequiredYears     int
	RequiredEducation string
	RequiredSkills    []string
}

// Occupation is a reference occupation record from the static catalog.
type Occupation struct {
	ID                uuid.UUID `json:"id,omitempty"`
	Title             string    `json:"title" validate:"required"`
	Sector            string    `json:"sector" validate:"required"`
	Description       string    `json:"description,omitempty"`
	RequiredYears     int       `json:"required_years" validate:"min=0"`
	RequiredEducation string    `json:"required_education,omitempty"`
	RequiredSkills    []string  `json:"required_skills,omitempty"`
	AverageSalary     string    `json:"average_salary,omitempty"`
}

// Scorable returns the scoring projection of the occupation.
func (o *Occupation) Scorable() Scorable {
	return Scorable{
		Sector:            o.Sector,
		RequiredYears:     o.RequiredYears,
		RequiredEducation: o.RequiredEducation,
		RequiredSkills:    o.RequiredSkills,
	}
}

// JobPosting is a live job opening from the static catalog.
type JobPosting struct {
	ID                uuid.UUID `json:"id,omitempty"`
	Title             string    `json:"title" validate:"required"`
	CompanyName       string    `json:"company_name,omitempty"`
	Location          string    `json:"location,omitempty"`
	Salary            string    `json:"salary,omitempty"`
	Sector            string    `json:"sector" validate:"required"`
	RequiredYears     int       `json:"required_years" validate:"min=0"`
	RequiredEducation string    `json:"required_education,omitempty"`
	RequiredSkills    []string  `json:"required_skills,omitempty"`
}

// Scorable returns the scoring projection of the job posting.
func (j *JobPosting) Scorable() Scorable {
	return Scorable{
		Sector:            j.Sector,
		RequiredYears:     j.RequiredYears,
		RequiredEducation: j.RequiredEducation,
		RequiredSkills:    j.RequiredSkills,
	}
}

// EducationProgram is a training/education program from the static catalog.
// Skills lists what the program teaches; program selection is gap-driven
// rather than score-driven.
type EducationProgram struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Title    string    `json:"title" validate:"required"`
	Provider string    `json:"provider,omitempty"`
	Sector   string    `json:"sector,omitempty"`
	Duration string    `json:"duration,omitempty"`
	Cost     string    `json:"cost,omitempty"`
	Skills   []string  `json:"skills,omitempty"`
}

// Company is an employer record consumed by the detailed company matcher.
// RequiredExperience and RequiredEducation are free text as published by the
// employer; the matcher extracts what it can and defaults the rest.
type Company struct {
	ID                 uuid.UUID `json:"id,omitempty"`
	Name               string    `json:"name" validate:"required"`
	Category           string    `json:"category,omitempty"`
	Location           string    `json:"location,omitempty"`
	RequiredExperience string    `json:"required_experience,omitempty"`
	RequiredEducation  string    `json:"required_education,omitempty"`
	EmploymentType     string    `json:"employment_type,omitempty"`
	Skills             string    `json:"skills,omitempty"`
	Description        string    `json:"description,omitempty"`
}
