package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed    = lipgloss.Color("#E06C75")
	colorGreen  = lipgloss.Color("#98C379")
	colorYellow = lipgloss.Color("#E5C07B")
	colorBlue   = lipgloss.Color("#61AFEF")
	colorMuted  = lipgloss.Color("#636B78")
	colorBorder = lipgloss.Color("#3F4451")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorYellow).
			PaddingLeft(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	matchedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	missingStyle = lipgloss.NewStyle().Foreground(colorRed)
)

func tierStyle(t Tier) lipgloss.Style {
	switch t {
	case TierHigh:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	case TierMedium:
		return lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	}
}

func riskStyle(risk string) lipgloss.Style {
	switch strings.ToLower(risk) {
	case "high":
		return lipgloss.NewStyle().Foreground(colorRed)
	case "medium":
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen)
	}
}

func line(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func list(items []string, prefix string, style lipgloss.Style) string {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, style.Render(prefix+item))
	}
	return strings.Join(rendered, ", ")
}

func card(bannerText string, lines []string) string {
	body := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if bannerText == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, bannerStyle.Render(bannerText), body)
}

func RenderMatch(v MatchView) string {
	heading := v.Title
	if v.Company != "" {
		heading = fmt.Sprintf("%s at %s", v.Title, v.Company)
	}

	lines := []string{
		titleStyle.Render(heading) + "  " + tierStyle(v.Tier).Render(fmt.Sprintf("%d%%", v.Score)),
		line("Years of Experience", v.Experience),
	}

	if len(v.Skills) > 0 {
		lines = append(lines, line("Skills Extracted", strings.Join(v.Skills, ", ")))
	} else {
		lines = append(lines, line("Skills Extracted", "No skills detected"))
	}
	if len(v.MatchedSkills) > 0 {
		lines = append(lines, line("Matched Skills", list(v.MatchedSkills, "✓ ", matchedStyle)))
	}
	if len(v.MissingSkills) > 0 {
		lines = append(lines, line("Missing Skills", list(v.MissingSkills, "✗ ", missingStyle)))
	}
	lines = append(lines, line("Bias Risk Assessment", riskStyle(v.BiasRisk).Render(v.BiasRisk)))

	if len(v.Projects) > 0 {
		lines = append(lines, line("GitHub Projects", v.ProjectsSummary))
		for _, p := range v.Projects {
			entry := fmt.Sprintf("  %s %s", p.Status, p.Name)
			if len(p.Meta) > 0 {
				entry += " (" + strings.Join(p.Meta, ", ") + ")"
			}
			lines = append(lines, entry)
			if p.Description != "" {
				lines = append(lines, labelStyle.Render("    "+p.Description))
			}
		}
	}

	lines = append(lines, labelStyle.Render(v.Message))

	return card(v.Banner, lines)
}

func RenderBatch(v BatchView) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("Ranked %d candidates", v.Total))}

	if v.Top != nil {
		lines = append(lines, tierStyle(TierHigh).Render(fmt.Sprintf("Top Match: %s (%d%% Match)", v.Top.Filename, v.Top.Score)))
	}

	for _, c := range v.Candidates {
		marker := " "
		if c.Top {
			marker = "*"
		}
		entry := fmt.Sprintf("%s #%d %s %s", marker, c.Rank, c.Filename, tierStyle(c.Tier).Render(fmt.Sprintf("%d%%", c.Score)))
		lines = append(lines, entry)
		if len(c.MatchedSkills) > 0 {
			lines = append(lines, "    "+list(c.MatchedSkills, "✓ ", matchedStyle))
		}
		if len(c.MissingSkills) > 0 {
			lines = append(lines, "    "+list(c.MissingSkills, "✗ ", missingStyle))
		}
		details := []string{c.Experience, "bias " + riskStyle(c.BiasRisk).Render(c.BiasRisk)}
		if c.ProjectsSummary != "" {
			details = append(details, "projects "+c.ProjectsSummary)
		}
		lines = append(lines, labelStyle.Render("    ")+strings.Join(details, ", "))
	}

	return card("", lines)
}

func RenderBias(v BiasView) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Bias check: %s vs %s", v.JDFilename, v.ResumeFilename)),
		line("Overall Score", tierStyle(v.Tier).Render(fmt.Sprintf("%d/100", v.Score))),
		line("Bias Risk", riskStyle(v.BiasRisk).Render(v.BiasRisk)),
		labelStyle.Render("Findings:"),
	}
	for _, f := range v.Findings {
		lines = append(lines, "  - "+f)
	}
	lines = append(lines, labelStyle.Render("Recommendations:"))
	for _, r := range v.Recommendations {
		lines = append(lines, "  - "+r)
	}
	lines = append(lines, labelStyle.Render(v.Message))

	return card(v.Banner, lines)
}
