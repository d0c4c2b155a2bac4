// Package catalog holds the fixed job postings offered to candidates.
package catalog

import (
	"fmt"
	"strings"

	"github.com/spigell/hiring-portal/internal/hiring"
)

func company(name string) *string { return &name }

var postings = []hiring.JobPosting{
	{
		ID:             "1",
		Title:          "Senior React Developer",
		Company:        company("Tech Corp"),
		Description:    "We are looking for a Senior React Developer with 5+ years of experience. Must be proficient in React, TypeScript, and Node.js.",
		RequiredSkills: []string{"React.js", "TypeScript", "Node.js", "REST APIs", "Git"},
		SalaryRange:    "$120k - $150k",
		Location:       "New York, NY",
		IsActive:       true,
	},
	{
		ID:             "2",
		Title:          "Full Stack Engineer",
		Company:        company("StartUp Inc"),
		Description:    "Full Stack Engineer needed for a fast-growing startup. Experience with React, Python, and AWS required.",
		RequiredSkills: []string{"React", "Python", "AWS", "Docker", "PostgreSQL"},
		SalaryRange:    "$100k - $130k",
		Location:       "San Francisco, CA",
		IsActive:       true,
	},
	{
		ID:             "3",
		Title:          "Data Scientist",
		Company:        company("Analytics Co"),
		Description:    "Data Scientist position focused on machine learning models. Python and SQL expertise required.",
		RequiredSkills: []string{"Python", "Machine Learning", "SQL", "TensorFlow", "Data Analysis"},
		SalaryRange:    "$110k - $140k",
		Location:       "Boston, MA",
		IsActive:       true,
	},
}

// Jobs returns a copy of the catalog in display order.
func Jobs() []hiring.JobPosting {
	out := make([]hiring.JobPosting, 0, len(postings))
	for _, p := range postings {
		p.RequiredSkills = append([]string(nil), p.RequiredSkills...)
		p.Company = company(*p.Company)
		out = append(out, p)
	}
	return out
}

func FindByID(id string) (*hiring.JobPosting, error) {
	id = strings.TrimSpace(id)
	for _, p := range Jobs() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("there is no such job id %s", id)
}
