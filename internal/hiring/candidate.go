package hiring

import (
	"context"

	"github.com/spigell/hiring-portal/internal/upload"
)

const (
	apiMatchResumePath   = "/candidate/match-resume"
	apiAnalyzeResumePath = "/candidate/analyze-resume"
)

// GithubProject is a repository link found in a résumé together with the
// server's verification outcome.
type GithubProject struct {
	Username    string `json:"username"`
	RepoName    string `json:"repo_name"`
	Exists      bool   `json:"exists"`
	URL         string `json:"url,omitempty"`
	Stars       *int   `json:"stars,omitempty"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
}

// MatchResponse is the raw single-match answer. Every field is optional.
type MatchResponse struct {
	ResumeID         string          `json:"resume_id"`
	Filename         string          `json:"filename"`
	Skills           []string        `json:"skills"`
	AllSkills        []string        `json:"all_skills"`
	ExperienceYears  *float64        `json:"experience_years"`
	MatchScore       *float64        `json:"match_score"`
	BiasRisk         string          `json:"bias_risk"`
	MatchedSkills    []string        `json:"matched_skills"`
	MissingSkills    []string        `json:"missing_skills"`
	GithubProjects   []GithubProject `json:"github_projects"`
	ProjectsVerified *int            `json:"projects_verified"`
}

// ResumeAnalysis is the job-independent résumé summary.
type ResumeAnalysis struct {
	ResumeID         string          `json:"resume_id"`
	Filename         string          `json:"filename"`
	Skills           []string        `json:"skills"`
	WordCount        int             `json:"word_count"`
	GithubProjects   []GithubProject `json:"github_projects"`
	VerifiedProjects int             `json:"verified_projects"`
}

func (c *Client) MatchResume(ctx context.Context, jobDescription string, resume upload.File) (*MatchResponse, error) {
	var resp MatchResponse
	err := c.postMultipart(ctx, apiMatchResumePath,
		[]formField{{name: "job_description", value: jobDescription}},
		[]filePart{{field: "resume", file: resume}},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) AnalyzeResume(ctx context.Context, resume upload.File) (*ResumeAnalysis, error) {
	var resp ResumeAnalysis
	err := c.postMultipart(ctx, apiAnalyzeResumePath, nil,
		[]filePart{{field: "resume", file: resume}},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
