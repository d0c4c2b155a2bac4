package workflow

import (
	"fmt"

	"github.com/spigell/hiring-portal/internal/hiring"
)

func intPtr(v int) *int { return &v }

// syntheticMatch is shown when the service cannot be reached. The values are
// illustrative and the message carries the underlying error.
func syntheticMatch(job *hiring.JobPosting, cause error) *AnalysisResult {
	projects := []Project{
		{
			Username:    "johndoe",
			RepoName:    "ai-project",
			Exists:      true,
			URL:         "https://github.com/johndoe/ai-project",
			Stars:       intPtr(42),
			Language:    "Python",
			Description: "Machine learning project for classification",
		},
		{
			Username:    "johndoe",
			RepoName:    "web-app",
			Exists:      true,
			URL:         "https://github.com/johndoe/web-app",
			Stars:       intPtr(128),
			Language:    "JavaScript",
			Description: "React web application",
		},
	}
	title, company := jobLabels(job)

	return &AnalysisResult{
		JobTitle:             title,
		Company:              company,
		MatchScore:           72,
		ExperienceYears:      3,
		ExtractedSkills:      []string{"Python", "React", "FastAPI", "Machine Learning"},
		MatchedSkills:        []string{"Python", "React", "Machine Learning"},
		MissingSkills:        []string{"TypeScript", "AWS"},
		BiasRisk:             BiasRiskLow,
		GithubProjects:       projects,
		VerifiedProjectCount: countVerified(projects),
		Origin:               OriginSynthetic,
		Message:              fmt.Sprintf("Resume analyzed (Mock - API unavailable: %s)", cause),
	}
}

func syntheticBias(jd, resume string, cause error) *BiasResult {
	return &BiasResult{
		JDFilename:     firstNonEmpty(jd, defaultJDFilename),
		ResumeFilename: resume,
		OverallScore:   95,
		BiasRisk:       BiasRiskLow,
		Findings: []string{
			"No age-related keywords detected",
			"No gender bias detected in requirements",
			"Neutral tone maintained throughout",
		},
		Recommendations: []string{
			"Use inclusive language",
			"Remove unnecessary requirements",
			"Consider diverse candidate backgrounds",
		},
		Origin:  OriginSynthetic,
		Message: fmt.Sprintf("Bias check (Mock - API unavailable: %s)", cause),
	}
}
