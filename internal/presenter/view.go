// Package presenter turns settled workflow results into display structures.
// Nothing here touches the network or keeps state.
package presenter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spigell/hiring-portal/internal/workflow"
)

// SyntheticBanner is attached to every view built from a synthetic result.
const SyntheticBanner = "SYNTHETIC RESULT: the analysis service was unavailable, values below are illustrative only"

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// ScoreTier buckets a match score.
func ScoreTier(score float64) Tier {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

// biasTier buckets an overall bias score; bias scores have no low tier.
func biasTier(score float64) Tier {
	if score >= 80 {
		return TierHigh
	}
	return TierMedium
}

type ProjectView struct {
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	Verified    bool     `json:"verified"`
	Status      string   `json:"status"`
	Meta        []string `json:"meta,omitempty"`
	Description string   `json:"description,omitempty"`
}

type MatchView struct {
	Origin          workflow.Origin `json:"origin"`
	Banner          string          `json:"banner,omitempty"`
	Message         string          `json:"message"`
	Title           string          `json:"title,omitempty"`
	Company         string          `json:"company,omitempty"`
	Score           int             `json:"score"`
	Tier            Tier            `json:"tier"`
	Experience      string          `json:"experience"`
	Skills          []string        `json:"skills"`
	MatchedSkills   []string        `json:"matched_skills,omitempty"`
	MissingSkills   []string        `json:"missing_skills,omitempty"`
	BiasRisk        string          `json:"bias_risk"`
	ProjectsSummary string          `json:"projects_summary,omitempty"`
	Projects        []ProjectView   `json:"projects,omitempty"`
}

type CandidateView struct {
	Rank            int      `json:"rank"`
	Filename        string   `json:"filename"`
	Score           int      `json:"score"`
	Tier            Tier     `json:"tier"`
	Top             bool     `json:"top"`
	Experience      string   `json:"experience"`
	MatchedSkills   []string `json:"matched_skills,omitempty"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
	BiasRisk        string   `json:"bias_risk"`
	ProjectsSummary string   `json:"projects_summary,omitempty"`
}

type BatchView struct {
	Total      int             `json:"total_candidates"`
	Top        *CandidateView  `json:"top_candidate,omitempty"`
	Candidates []CandidateView `json:"candidates"`
}

type BiasView struct {
	Origin          workflow.Origin `json:"origin"`
	Banner          string          `json:"banner,omitempty"`
	Message         string          `json:"message"`
	JDFilename      string          `json:"jd_filename"`
	ResumeFilename  string          `json:"resume_filename"`
	Score           int             `json:"overall_score"`
	Tier            Tier            `json:"tier"`
	BiasRisk        string          `json:"bias_risk"`
	Findings        []string        `json:"findings"`
	Recommendations []string        `json:"recommendations"`
}

func banner(origin workflow.Origin) string {
	if origin == workflow.OriginSynthetic {
		return SyntheticBanner
	}
	return ""
}

func roundScore(v float64) int {
	return int(math.Round(v))
}

func experience(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64) + " years"
}

func projectsSummary(r workflow.AnalysisResult) string {
	if len(r.GithubProjects) == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d Verified", r.VerifiedProjectCount, len(r.GithubProjects))
}

func project(p workflow.Project) ProjectView {
	v := ProjectView{
		Name:        p.Username + "/" + p.RepoName,
		URL:         p.URL,
		Verified:    p.Exists,
		Status:      "✗ Not Found",
		Description: p.Description,
	}
	if !p.Exists {
		return v
	}

	v.Status = "✓ Verified"
	if p.Stars != nil {
		v.Meta = append(v.Meta, fmt.Sprintf("%d stars", *p.Stars))
	}
	if p.Language != "" {
		v.Meta = append(v.Meta, p.Language)
	}
	return v
}

// Match builds the view of a single match result.
func Match(r *workflow.AnalysisResult) MatchView {
	if r == nil {
		return MatchView{}
	}

	v := MatchView{
		Origin:          r.Origin,
		Banner:          banner(r.Origin),
		Message:         r.Message,
		Title:           r.JobTitle,
		Company:         r.Company,
		Score:           roundScore(r.MatchScore),
		Tier:            ScoreTier(r.MatchScore),
		Experience:      experience(r.ExperienceYears),
		Skills:          r.ExtractedSkills,
		MatchedSkills:   r.MatchedSkills,
		MissingSkills:   r.MissingSkills,
		BiasRisk:        string(r.BiasRisk),
		ProjectsSummary: projectsSummary(*r),
	}
	for _, p := range r.GithubProjects {
		v.Projects = append(v.Projects, project(p))
	}

	return v
}

func candidate(rank int, c workflow.RankedCandidate, top bool) CandidateView {
	return CandidateView{
		Rank:            rank,
		Filename:        c.Filename,
		Score:           roundScore(c.MatchScore),
		Tier:            ScoreTier(c.MatchScore),
		Top:             top,
		Experience:      experience(c.ExperienceYears),
		MatchedSkills:   c.MatchedSkills,
		MissingSkills:   c.MissingSkills,
		BiasRisk:        string(c.BiasRisk),
		ProjectsSummary: projectsSummary(c.AnalysisResult),
	}
}

// Batch keeps the service order; Rank is the 1-based position in it.
func Batch(r *workflow.BatchResult) BatchView {
	if r == nil {
		return BatchView{}
	}

	v := BatchView{Total: r.TotalCandidates, Candidates: make([]CandidateView, 0, len(r.Candidates))}
	for i, c := range r.Candidates {
		v.Candidates = append(v.Candidates, candidate(i+1, c, i == r.TopIndex))
	}
	if r.TopIndex >= 0 && r.TopIndex < len(v.Candidates) {
		top := v.Candidates[r.TopIndex]
		v.Top = &top
	}

	return v
}

func Bias(r *workflow.BiasResult) BiasView {
	if r == nil {
		return BiasView{}
	}

	return BiasView{
		Origin:          r.Origin,
		Banner:          banner(r.Origin),
		Message:         r.Message,
		JDFilename:      r.JDFilename,
		ResumeFilename:  r.ResumeFilename,
		Score:           roundScore(r.OverallScore),
		Tier:            biasTier(r.OverallScore),
		BiasRisk:        string(r.BiasRisk),
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
	}
}
