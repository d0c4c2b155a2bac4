package hiring

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/hiring-portal/internal/upload"
)

const (
	apiBulkAnalyzePath   = "/recruiter/bulk-analyze-resumes"
	apiRankPath          = "/recruiter/rank-candidates"
	apiCheckBiasPath     = "/recruiter/check-jd-bias"
	apiAnalyzeJDPath     = "/recruiter/analyze-jd"
	fieldJobDescription  = "job_description"
	fieldResumes         = "resumes"
	fieldJobID           = "job_id"
	fieldBiasDescription = "jd"
	fieldBiasResume      = "resume"
)

// CandidateResult is one ranked résumé. The bulk endpoint names the file
// "filename", rank-candidates names it "candidate".
type CandidateResult struct {
	Filename         string          `json:"filename"`
	Candidate        string          `json:"candidate"`
	ResumeID         string          `json:"resume_id"`
	MatchScore       float64         `json:"match_score"`
	MatchedSkills    []string        `json:"matched_skills"`
	MissingSkills    []string        `json:"missing_skills"`
	ExperienceYears  float64         `json:"experience_years"`
	Skills           []string        `json:"skills"`
	AllSkills        []string        `json:"all_skills"`
	BiasRisk         string          `json:"bias_risk"`
	GithubProjects   []GithubProject `json:"github_projects"`
	VerifiedProjects int             `json:"verified_projects"`
	TotalProjects    int             `json:"total_projects"`
}

// Name returns the submitted file name of the candidate.
func (c *CandidateResult) Name() string {
	if c.Filename != "" {
		return c.Filename
	}
	return c.Candidate
}

// ExtractedSkills returns whichever skills list the server sent.
func (c *CandidateResult) ExtractedSkills() []string {
	if len(c.Skills) > 0 {
		return c.Skills
	}
	return c.AllSkills
}

// RankResponse is the normalized envelope of both ranking endpoints.
type RankResponse struct {
	TotalCandidates int
	Candidates      []CandidateResult
	TopCandidate    *CandidateResult
}

type rankEnvelope struct {
	TotalCandidates *int              `json:"total_candidates"`
	TotalResumes    *int              `json:"total_resumes"`
	Candidates      []CandidateResult `json:"candidates"`
	Results         []CandidateResult `json:"results"`
	TopCandidate    *CandidateResult  `json:"top_candidate"`
}

// BiasResponse is the raw bias-check answer.
type BiasResponse struct {
	JDFilename      string   `json:"jd_filename"`
	ResumeFilename  string   `json:"resume_filename"`
	OverallScore    *float64 `json:"overall_score"`
	BiasRisk        string   `json:"bias_risk"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// JDAnalysis is the server summary of a job description document.
type JDAnalysis struct {
	Filename       string   `json:"filename"`
	WordCount      int      `json:"word_count"`
	RequiredSkills []string `json:"required_skills"`
	TextPreview    string   `json:"text_preview"`
}

// BulkAnalyze ranks résumés against a free-form job description.
func (c *Client) BulkAnalyze(ctx context.Context, jobDescription string, resumes []upload.File) (*RankResponse, error) {
	fields := []formField{{name: fieldJobDescription, value: jobDescription}}
	return c.rank(ctx, apiBulkAnalyzePath, fields, resumes)
}

// RankCandidates ranks résumés for a posted job.
func (c *Client) RankCandidates(ctx context.Context, jobID, jobDescription string, resumes []upload.File) (*RankResponse, error) {
	fields := []formField{
		{name: fieldJobDescription, value: jobDescription},
		{name: fieldJobID, value: jobID},
	}
	return c.rank(ctx, apiRankPath, fields, resumes)
}

func (c *Client) rank(ctx context.Context, path string, fields []formField, resumes []upload.File) (*RankResponse, error) {
	parts := make([]filePart, 0, len(resumes))
	for _, r := range resumes {
		parts = append(parts, filePart{field: fieldResumes, file: r})
	}

	var raw any
	if err := c.postMultipart(ctx, path, fields, parts, &raw); err != nil {
		return nil, err
	}

	return parseRankResponse(raw)
}

func parseRankResponse(raw any) (*RankResponse, error) {
	switch raw.(type) {
	case []any:
		var candidates []CandidateResult
		if err := decode(raw, &candidates); err != nil {
			return nil, err
		}
		return &RankResponse{TotalCandidates: len(candidates), Candidates: candidates}, nil
	case map[string]any:
		var env rankEnvelope
		if err := decode(raw, &env); err != nil {
			return nil, err
		}

		resp := &RankResponse{Candidates: env.Candidates, TopCandidate: env.TopCandidate}
		if len(resp.Candidates) == 0 {
			resp.Candidates = env.Results
		}

		switch {
		case env.TotalCandidates != nil:
			resp.TotalCandidates = *env.TotalCandidates
		case env.TotalResumes != nil:
			resp.TotalCandidates = *env.TotalResumes
		default:
			resp.TotalCandidates = len(resp.Candidates)
		}

		return resp, nil
	default:
		return nil, fmt.Errorf("unexpected ranking response of type %T", raw)
	}
}

func (c *Client) CheckBias(ctx context.Context, jobDescription, resume upload.File) (*BiasResponse, error) {
	var resp BiasResponse
	err := c.postMultipart(ctx, apiCheckBiasPath, nil,
		[]filePart{
			{field: fieldBiasDescription, file: jobDescription},
			{field: fieldBiasResume, file: resume},
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) AnalyzeJD(ctx context.Context, jobDescription upload.File) (*JDAnalysis, error) {
	if strings.TrimSpace(jobDescription.Name) == "" {
		return nil, fmt.Errorf("job description file is required")
	}

	var resp JDAnalysis
	err := c.postMultipart(ctx, apiAnalyzeJDPath, nil,
		[]filePart{{field: fieldBiasDescription, file: jobDescription}},
		&resp,
	)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
