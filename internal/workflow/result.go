package workflow

import (
	"strings"

	"github.com/spigell/hiring-portal/internal/hiring"
)

// Origin tells a genuine service answer from a locally fabricated one. The
// two must never be presented as equivalent.
type Origin string

const (
	OriginLive      Origin = "live"
	OriginSynthetic Origin = "synthetic"
)

type BiasRisk string

const (
	BiasRiskLow    BiasRisk = "Low"
	BiasRiskMedium BiasRisk = "Medium"
	BiasRiskHigh   BiasRisk = "High"
)

// ParseBiasRisk normalizes a server risk level. Absent or unknown levels
// map to Low, the neutral value.
func ParseBiasRisk(s string) BiasRisk {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "moderate":
		return BiasRiskMedium
	case "high":
		return BiasRiskHigh
	default:
		return BiasRiskLow
	}
}

type Project struct {
	Username    string
	RepoName    string
	Exists      bool
	URL         string
	Stars       *int
	Language    string
	Description string
}

// AnalysisResult is the normalized outcome of a résumé match.
// VerifiedProjectCount always equals the number of existing projects.
type AnalysisResult struct {
	JobTitle             string
	Company              string
	MatchScore           float64
	ExperienceYears      float64
	ExtractedSkills      []string
	MatchedSkills        []string
	MissingSkills        []string
	BiasRisk             BiasRisk
	GithubProjects       []Project
	VerifiedProjectCount int
	Origin               Origin
	Message              string
}

// RankedCandidate is one entry of a batch ranking.
type RankedCandidate struct {
	Filename string
	AnalysisResult
}

type BatchResult struct {
	TotalCandidates int
	// Candidates keep the order returned by the service.
	Candidates []RankedCandidate
	// TopIndex is the position of the top candidate, -1 when empty.
	TopIndex int
}

// TopCandidate returns the highest scoring candidate, earliest first on
// ties, or nil for an empty ranking.
func (b *BatchResult) TopCandidate() *RankedCandidate {
	if b == nil || b.TopIndex < 0 || b.TopIndex >= len(b.Candidates) {
		return nil
	}
	return &b.Candidates[b.TopIndex]
}

type BiasResult struct {
	JDFilename      string
	ResumeFilename  string
	OverallScore    float64
	BiasRisk        BiasRisk
	Findings        []string
	Recommendations []string
	Origin          Origin
	Message         string
}

func jobLabels(job *hiring.JobPosting) (string, string) {
	if job == nil {
		return "", ""
	}
	return job.Title, job.CompanyName()
}
