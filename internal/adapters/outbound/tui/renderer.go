package tui

import (
	"fmt"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/scoring"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	levelColors = map[string]lipgloss.Color{
		domain.LevelHigh:   success,
		domain.LevelMedium: warning,
		domain.LevelLow:    danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a scoring result for terminal output.
func RenderResult(res *domain.ScoringResult) string {
	var b strings.Builder

	// ── Header ──
	level := res.Summary.ConfidenceLevel
	title := headerStyle.Render("archscore")
	subtitle := dimStyle.Render(res.ApplicationName + " · catalog " + res.CatalogVersion)
	primary := res.Summary.PrimaryRecommendation
	if primary == "" {
		primary = "no eligible architecture"
	}
	primaryStyled := lipgloss.NewStyle().Bold(true).Foreground(levelColor(level)).Render(primary)
	levelStyled := dimStyle.Render(level + " confidence")

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + primaryStyled + "\n" + levelStyled))
	b.WriteString("\n\n")

	// ── Recommendations ──
	fmt.Fprintf(&b, "  %s  %s\n\n",
		titleStyle.Render("Recommendations"),
		dimStyle.Render(fmt.Sprintf("%d of %d eligible", len(res.Recommendations), res.EligibleCount)),
	)
	for i, r := range res.Recommendations {
		renderRecommendation(&b, i+1, r)
		if i < len(res.Recommendations)-1 {
			b.WriteString("\n")
		}
	}
	if len(res.Recommendations) == 0 {
		b.WriteString("  " + failStyle.Render("No architecture passed the hard constraints.") + "\n")
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Drivers and risks ──
	if len(res.Summary.KeyDrivers) > 0 {
		b.WriteString("  " + titleStyle.Render("Key drivers") + "\n")
		for _, d := range res.Summary.KeyDrivers {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("+"), dimStyle.Render(d))
		}
		b.WriteString("\n")
	}
	if len(res.Summary.KeyRisks) > 0 {
		b.WriteString("  " + titleStyle.Render("Key risks") + "\n")
		for _, r := range res.Summary.KeyRisks {
			fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("!"), dimStyle.Render(r))
		}
		b.WriteString("\n")
	}

	// ── Excluded ──
	if len(res.Excluded) > 0 {
		fmt.Fprintf(&b, "  %s  %s\n\n",
			titleStyle.Render("Excluded"),
			errorTagStyle.Render(fmt.Sprintf("%d filtered", len(res.Excluded))),
		)
		for _, x := range res.Excluded {
			fmt.Fprintf(&b, "    %s %s\n", constraintTag(x.Constraint), x.Name)
			for _, reason := range x.Reasons {
				fmt.Fprintf(&b, "         %s\n", dimStyle.Render(reason))
			}
		}
		b.WriteString("\n")
	}

	if len(res.ClarificationQuestions) > 0 {
		b.WriteString(RenderQuestions(res.ClarificationQuestions))
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", warnTagStyle.Render("warn"), dimStyle.Render(w))
	}
	b.WriteString("\n")
	return b.String()
}

func renderRecommendation(b *strings.Builder, rank int, r domain.ArchitectureRecommendation) {
	color := scoreColor(r.LikelihoodScore)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%3d", r.LikelihoodScore))
	bar := coloredBar(r.LikelihoodScore, 20)
	name := nameStyle.Render(padRight(r.Name, 34))
	fmt.Fprintf(b, "  %s %s %s %s\n", dimStyle.Render(fmt.Sprintf("%d.", rank)), name, bar, scoreText)

	meta := r.PatternName + " · " + string(r.CatalogQuality)
	fmt.Fprintf(b, "     %s\n", faintStyle.Render(meta))

	for _, d := range domain.ScoreDimensions {
		v, ok := r.Breakdown[d]
		if !ok {
			continue
		}
		pct := int(v*100 + 0.5)
		var icon string
		switch {
		case pct >= 80:
			icon = passStyle.Render("●")
		case pct >= 40:
			icon = warnStyle.Render("●")
		default:
			icon = failStyle.Render("●")
		}
		fmt.Fprintf(b, "     %s %s %s\n", icon, padRight(scoring.Label(d), 20), dimStyle.Render(fmt.Sprintf("%.2f", v)))
	}
	if r.FitSummary != "" {
		fmt.Fprintf(b, "     %s\n", passStyle.Render(r.FitSummary))
	}
	if r.StruggleSummary != "" {
		fmt.Fprintf(b, "     %s\n", warnStyle.Render(r.StruggleSummary))
	}
	if r.LearnURL != "" {
		fmt.Fprintf(b, "     %s\n", faintStyle.Render(r.LearnURL))
	}
}

// RenderQuestions formats clarification questions with their options.
func RenderQuestions(qs []domain.ClarificationQuestion) string {
	if len(qs) == 0 {
		return "  " + passStyle.Render("No clarification needed.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Clarification questions") + "\n\n")
	for _, q := range qs {
		tag := infoTagStyle.Render("optional")
		if q.Required {
			tag = warnTagStyle.Render("required")
		}
		fmt.Fprintf(&b, "    %s %s\n", tag, q.Question)
		fmt.Fprintf(&b, "         %s", dimStyle.Render("--answer "+q.ID+"=<value>"))
		if q.CurrentValue != "" {
			fmt.Fprintf(&b, "  %s", faintStyle.Render("current: "+q.CurrentValue))
		}
		b.WriteString("\n")
		for _, o := range q.Options {
			fmt.Fprintf(&b, "         %s %s\n", padRight(o.Value, 30), faintStyle.Render(o.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCatalog lists catalog entries grouped in catalog order.
func RenderCatalog(cat *domain.ArchitectureCatalog) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Catalog "+cat.Version),
		dimStyle.Render(fmt.Sprintf("%d architectures", len(cat.Architectures))))
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range cat.Architectures {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			nameStyle.Render(padRight(e.ID, 28)),
			e.Name,
			qualityTag(e.CatalogQuality),
		)
		var tags []string
		if e.WorkloadDomain != "" {
			tags = append(tags, string(e.WorkloadDomain))
		}
		if e.Family != "" {
			tags = append(tags, string(e.Family))
		}
		for _, r := range e.RuntimeModels {
			tags = append(tags, string(r))
		}
		if len(tags) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", padRight("", 28), dimStyle.Render(strings.Join(tags, " · ")))
		}
	}
	return b.String()
}

// RenderValidation formats a catalog or context validation report.
func RenderValidation(r *domain.ValidationReport) string {
	var b strings.Builder
	status := passStyle.Render("valid")
	if !r.Valid {
		status = failStyle.Render("invalid")
	}
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render(r.Path), status)
	if r.Version != "" {
		fmt.Fprintf(&b, "    %s\n", dimStyle.Render(fmt.Sprintf("version %s, %d architectures", r.Version, r.Entries)))
	}
	for _, i := range r.Issues {
		fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("error"), dimStyle.Render(i))
	}
	for _, a := range r.Advisories {
		fmt.Fprintf(&b, "    %s %s\n", infoTagStyle.Render("info "), dimStyle.Render(a))
	}
	return b.String()
}

// RenderHistory formats recorded scoring runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No scoring history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scoring History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CatalogCommit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.TopScore)).
			Render(fmt.Sprintf("%3d", e.TopScore))

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(hash),
			padRight(e.ApplicationName, 18),
			scoreStyled,
			e.PrimaryRecommendation,
		)

		if prev, ok := previousRun(entries[:i], e.ApplicationName); ok {
			diff := e.TopScore - prev.TopScore
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func previousRun(entries []domain.RunEntry, app string) (domain.RunEntry, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].ApplicationName == app {
			return entries[i], true
		}
	}
	return domain.RunEntry{}, false
}

func constraintTag(constraint string) string {
	return errorTagStyle.Render(padRight(constraint, 21))
}

func qualityTag(q domain.CatalogQuality) string {
	switch q {
	case domain.QualityCurated:
		return passStyle.Render(string(q))
	case domain.QualityAIEnriched, domain.QualityAISuggested:
		return warnStyle.Render(string(q))
	default:
		return faintStyle.Render(string(q))
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 75:
		return success
	case score >= 55:
		return lipgloss.Color("#A3E635") // lime
	case score >= 35:
		return warning
	default:
		return danger
	}
}

func levelColor(level string) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
