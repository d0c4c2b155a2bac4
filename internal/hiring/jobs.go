package hiring

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	apiJobsPath      = "/recruiter/jobs"
	apiAnalyticsPath = "/recruiter/analytics"
	apiHealthPath    = "/health"
)

// JobPosting is a position candidates are matched against. Candidate-side
// postings come from a fixed catalog, recruiter-side ones from the server.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         *string  `json:"company,omitempty"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Location        string   `json:"location,omitempty"`
	IsActive        bool     `json:"is_active"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// CompanyName returns the company or an empty string when unknown.
func (j *JobPosting) CompanyName() string {
	if j == nil || j.Company == nil {
		return ""
	}
	return *j.Company
}

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// JobCandidate is a stored match of a candidate against a posted job.
type JobCandidate struct {
	ID               string   `json:"id"`
	CandidateID      string   `json:"candidate_id"`
	Username         string   `json:"username"`
	MatchScore       float64  `json:"match_score"`
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`
	BiasRiskLevel    string   `json:"bias_risk_level"`
	ProjectsVerified int      `json:"projects_verified"`
	Status           string   `json:"status"`
}

type Analytics struct {
	TotalJobs         int            `json:"total_jobs"`
	TotalCandidates   int            `json:"total_candidates"`
	AverageMatchScore float64        `json:"average_match_score"`
	HiringFunnel      map[string]any `json:"hiring_funnel"`
	BiasAlerts        int            `json:"bias_alerts"`
	TopSkills         []string       `json:"top_skills"`
}

type Health struct {
	Status string `json:"status"`
}

func (c *Client) ListJobs(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	if err := c.getJSON(ctx, apiJobsPath, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Validate checks the payload before it is sent.
func (r CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*JobPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}

	var job JobPosting
	if err := c.postJSON(ctx, apiJobsPath, req, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// GetJob looks a posted job up by id. The service has no single-job
// endpoint, so the listing is searched.
func (c *Client) GetJob(ctx context.Context, id string) (*JobPosting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("job id is required")
	}

	jobs, err := c.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}

	return nil, fmt.Errorf("there is no such job id %s", id)
}

func (c *Client) JobCandidates(ctx context.Context, jobID string) ([]JobCandidate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, fmt.Errorf("job id is required")
	}

	var candidates []JobCandidate
	path := fmt.Sprintf("%s/%s/candidates", apiJobsPath, url.PathEscape(jobID))
	if err := c.getJSON(ctx, path, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (c *Client) Analytics(ctx context.Context) (*Analytics, error) {
	var analytics Analytics
	if err := c.getJSON(ctx, apiAnalyticsPath, &analytics); err != nil {
		return nil, err
	}

	return &analytics, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.getJSON(ctx, apiHealthPath, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
