package presenter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/hiring-portal/internal/hiring"
)

// JobLine is the one-line label of a posting, also used by selection
// prompts.
func JobLine(j hiring.JobPosting) string {
	parts := []string{j.Title}
	for _, p := range []string{j.CompanyName(), j.SalaryRange, j.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return fmt.Sprintf("%s %s", j.ID, strings.Join(parts, " / "))
}

func RenderJobs(jobs []hiring.JobPosting) string {
	if len(jobs) == 0 {
		return labelStyle.Render("No jobs posted yet")
	}

	lines := make([]string, 0, len(jobs)*2)
	for _, j := range jobs {
		lines = append(lines, titleStyle.Render(JobLine(j)))
		if len(j.RequiredSkills) > 0 {
			lines = append(lines, labelStyle.Render("    requires: ")+strings.Join(j.RequiredSkills, ", "))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderJobCandidates(candidates []hiring.JobCandidate) string {
	if len(candidates) == 0 {
		return labelStyle.Render("No candidates have applied yet")
	}

	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		name := c.Username
		if name == "" {
			name = c.CandidateID
		}
		lines = append(lines, fmt.Sprintf("%s %s  bias %s  projects %d  %s",
			name,
			tierStyle(ScoreTier(c.MatchScore)).Render(fmt.Sprintf("%d%%", roundScore(c.MatchScore))),
			riskStyle(c.BiasRiskLevel).Render(c.BiasRiskLevel),
			c.ProjectsVerified,
			labelStyle.Render(c.Status),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderAnalytics(a *hiring.Analytics) string {
	if a == nil {
		return ""
	}

	lines := []string{
		line("Total Jobs", fmt.Sprint(a.TotalJobs)),
		line("Total Candidates", fmt.Sprint(a.TotalCandidates)),
		line("Average Match Score", fmt.Sprintf("%d%%", roundScore(a.AverageMatchScore))),
		line("Bias Alerts", fmt.Sprint(a.BiasAlerts)),
	}
	if len(a.TopSkills) > 0 {
		lines = append(lines, line("Top Skills", strings.Join(a.TopSkills, ", ")))
	}
	if len(a.HiringFunnel) > 0 {
		stages := make([]string, 0, len(a.HiringFunnel))
		for stage := range a.HiringFunnel {
			stages = append(stages, stage)
		}
		sort.Strings(stages)
		for _, stage := range stages {
			lines = append(lines, fmt.Sprintf("  %s: %v", stage, a.HiringFunnel[stage]))
		}
	}
	return card("", lines)
}

func RenderResumeAnalysis(r *hiring.ResumeAnalysis) string {
	if r == nil {
		return ""
	}

	skills := "No skills detected"
	if len(r.Skills) > 0 {
		skills = strings.Join(r.Skills, ", ")
	}

	lines := []string{
		titleStyle.Render(r.Filename),
		line("Words", fmt.Sprint(r.WordCount)),
		line("Skills Extracted", skills),
	}
	if len(r.GithubProjects) > 0 {
		lines = append(lines, line("GitHub Projects", fmt.Sprintf("%d/%d Verified", r.VerifiedProjects, len(r.GithubProjects))))
		for _, p := range r.GithubProjects {
			status := "✗ Not Found"
			if p.Exists {
				status = "✓ Verified"
			}
			lines = append(lines, fmt.Sprintf("  %s %s/%s", status, p.Username, p.RepoName))
		}
	}
	return card("", lines)
}

func RenderJDAnalysis(a *hiring.JDAnalysis) string {
	if a == nil {
		return ""
	}

	lines := []string{
		titleStyle.Render(a.Filename),
		line("Words", fmt.Sprint(a.WordCount)),
		line("Required Skills", strings.Join(a.RequiredSkills, ", ")),
	}
	if a.TextPreview != "" {
		lines = append(lines, labelStyle.Render(a.TextPreview))
	}
	return card("", lines)
}
