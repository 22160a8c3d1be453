package engine

import (
	"fmt"
	"strings"

	"jobmatch/internal/types"
)

// Thresholds (on the 0-100 scale) for classifying a factor as a strength
// or a gap in the recommendation report.
const (
	strengthThreshold = 80.0
	gapThreshold      = 50.0
)

var factorStrengths = []struct {
	score   func(types.ScoreDetails) float64
	message string
}{
	{func(d types.ScoreDetails) float64 { return d.TechnicalSkills }, "Habilidades técnicas bem alinhadas com a vaga"},
	{func(d types.ScoreDetails) float64 { return d.SoftSkills }, "Habilidades comportamentais compatíveis com a vaga"},
	{func(d types.ScoreDetails) float64 { return d.Experience }, "Nível de experiência adequado ao requerido"},
	{func(d types.ScoreDetails) float64 { return d.Education }, "Formação acadêmica atende aos requisitos"},
	{func(d types.ScoreDetails) float64 { return d.JobTitle }, "Trajetória profissional alinhada ao cargo"},
}

var factorGaps = []struct {
	score   func(types.ScoreDetails) float64
	message string
}{
	{func(d types.ScoreDetails) float64 { return d.TechnicalSkills }, "Habilidades técnicas abaixo do esperado para a vaga"},
	{func(d types.ScoreDetails) float64 { return d.SoftSkills }, "Habilidades comportamentais pouco evidentes no currículo"},
	{func(d types.ScoreDetails) float64 { return d.Experience }, "Experiência abaixo do nível requerido pela vaga"},
	{func(d types.ScoreDetails) float64 { return d.Education }, "Formação acadêmica aquém dos requisitos da vaga"},
	{func(d types.ScoreDetails) float64 { return d.JobTitle }, "Trajetória profissional distante do cargo anunciado"},
}

// buildReport summarizes a match into strengths, gaps, and the actionable
// recommendations already computed for the match.
func buildReport(match types.MatchResult, job types.NormalizedJob) types.RecommendationReport {
	report := types.RecommendationReport{
		Strengths:       []string{},
		Gaps:            []string{},
		Recommendations: match.Recommendations,
	}

	for _, factor := range factorStrengths {
		if factor.score(match.ScoreDetails) >= strengthThreshold {
			report.Strengths = append(report.Strengths, factor.message)
		}
	}
	for _, factor := range factorGaps {
		if factor.score(match.ScoreDetails) < gapThreshold {
			report.Gaps = append(report.Gaps, factor.message)
		}
	}

	if len(match.MatchingSkills) > 0 {
		head := match.MatchingSkills
		if len(head) > 5 {
			head = head[:5]
		}
		report.Strengths = append(report.Strengths, fmt.Sprintf(
			"Possui %d das %d habilidades requeridas, incluindo: %s",
			len(match.MatchingSkills), len(job.Skills.All()), strings.Join(head, ", ")))
	}
	if len(match.MissingSkills) > 0 {
		head := match.MissingSkills
		if len(head) > 5 {
			head = head[:5]
		}
		report.Gaps = append(report.Gaps, fmt.Sprintf(
			"Habilidades não identificadas no currículo: %s", strings.Join(head, ", ")))
	}

	return report
}
