package workflow

import (
	"strings"

	"github.com/spigell/hiring-portal/internal/hiring"
)

const (
	liveMatchMessage  = "Resume analyzed successfully"
	liveBiasMessage   = "Bias check completed"
	defaultBiasScore  = 85
	maxScore          = 100
	defaultJDFilename = "job-description"
)

var (
	defaultFindings = []string{
		"Analysis completed successfully",
		"Resume reviewed against job description",
		"Bias assessment generated",
	}
	defaultRecommendations = []string{
		"Review job description language",
		"Ensure inclusive hiring practices",
		"Consider diverse candidate pool",
	}
)

// reconcileMatch maps a live answer onto AnalysisResult. Missing fields take
// their empty or neutral value instead of failing.
func reconcileMatch(resp *hiring.MatchResponse, job *hiring.JobPosting) *AnalysisResult {
	if resp == nil {
		resp = &hiring.MatchResponse{}
	}

	skills := resp.Skills
	if len(skills) == 0 {
		skills = resp.AllSkills
	}

	projects := convertProjects(resp.GithubProjects)
	title, company := jobLabels(job)

	return &AnalysisResult{
		JobTitle:             title,
		Company:              company,
		MatchScore:           clampScore(deref(resp.MatchScore)),
		ExperienceYears:      max(deref(resp.ExperienceYears), 0),
		ExtractedSkills:      uniqueStrings(skills),
		MatchedSkills:        uniqueStrings(resp.MatchedSkills),
		MissingSkills:        uniqueStrings(resp.MissingSkills),
		BiasRisk:             ParseBiasRisk(resp.BiasRisk),
		GithubProjects:       projects,
		VerifiedProjectCount: countVerified(projects),
		Origin:               OriginLive,
		Message:              liveMatchMessage,
	}
}

func reconcileCandidate(c hiring.CandidateResult) RankedCandidate {
	projects := convertProjects(c.GithubProjects)

	return RankedCandidate{
		Filename: c.Name(),
		AnalysisResult: AnalysisResult{
			MatchScore:           clampScore(c.MatchScore),
			ExperienceYears:      max(c.ExperienceYears, 0),
			ExtractedSkills:      uniqueStrings(c.ExtractedSkills()),
			MatchedSkills:        uniqueStrings(c.MatchedSkills),
			MissingSkills:        uniqueStrings(c.MissingSkills),
			BiasRisk:             ParseBiasRisk(c.BiasRisk),
			GithubProjects:       projects,
			VerifiedProjectCount: countVerified(projects),
			Origin:               OriginLive,
		},
	}
}

// reconcileBatch keeps the service order and picks the top candidate as the
// first maximum score.
func reconcileBatch(resp *hiring.RankResponse) *BatchResult {
	result := &BatchResult{TopIndex: -1}
	if resp == nil {
		return result
	}

	result.Candidates = make([]RankedCandidate, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		result.Candidates = append(result.Candidates, reconcileCandidate(c))
	}

	result.TotalCandidates = resp.TotalCandidates
	if result.TotalCandidates <= 0 {
		result.TotalCandidates = len(result.Candidates)
	}

	result.TopIndex = topIndex(result.Candidates)

	return result
}

func topIndex(candidates []RankedCandidate) int {
	top := -1
	for i, c := range candidates {
		if top == -1 || c.MatchScore > candidates[top].MatchScore {
			top = i
		}
	}
	return top
}

func reconcileBias(resp *hiring.BiasResponse, jd, resume string) *BiasResult {
	if resp == nil {
		resp = &hiring.BiasResponse{}
	}

	result := &BiasResult{
		JDFilename:      firstNonEmpty(resp.JDFilename, jd, defaultJDFilename),
		ResumeFilename:  firstNonEmpty(resp.ResumeFilename, resume),
		OverallScore:    defaultBiasScore,
		BiasRisk:        ParseBiasRisk(resp.BiasRisk),
		Findings:        resp.Findings,
		Recommendations: resp.Recommendations,
		Origin:          OriginLive,
		Message:         liveBiasMessage,
	}

	if resp.OverallScore != nil {
		result.OverallScore = clampScore(*resp.OverallScore)
	}
	if result.Findings == nil {
		result.Findings = append([]string(nil), defaultFindings...)
	}
	if result.Recommendations == nil {
		result.Recommendations = append([]string(nil), defaultRecommendations...)
	}

	return result
}

func convertProjects(in []hiring.GithubProject) []Project {
	projects := make([]Project, 0, len(in))
	for _, p := range in {
		projects = append(projects, Project{
			Username:    p.Username,
			RepoName:    p.RepoName,
			Exists:      p.Exists,
			URL:         p.URL,
			Stars:       p.Stars,
			Language:    p.Language,
			Description: p.Description,
		})
	}
	return projects
}

func countVerified(projects []Project) int {
	n := 0
	for _, p := range projects {
		if p.Exists {
			n++
		}
	}
	return n
}

// uniqueStrings trims, drops blanks and removes case-insensitive duplicates
// while keeping first occurrences in order.
func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func clampScore(v float64) float64 {
	return min(max(v, 0), maxScore)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
