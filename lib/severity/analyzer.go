package severity

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"fntp-backend/lib/questionbank"
	"fntp-backend/models"

	log "github.com/sirupsen/logrus"
)

type Response struct {
	QuestionID string `json:"question_id" validate:"required"`
	Value      int    `json:"value"`
	Text       string `json:"text"`
}

type Score struct {
	Category       string                  `json:"category"`
	Cluster        questionbank.ClusterKey `json:"cluster"`
	Score          int                     `json:"score"`
	Interpretation string                  `json:"interpretation"`
	Priority       models.Priority         `json:"priority"`
}

type cluster struct {
	key      questionbank.ClusterKey
	category string
	score    func(a *Analyzer, ref questionbank.ClusterRef, answers map[string]Response) (Score, bool)
}

// clusters are evaluated in this order, which is also the tie order of the result.
var clusters = []cluster{
	{key: questionbank.ClusterDigestive, category: "Digestive", score: singleScore(severityInterpretation)},
	{key: questionbank.ClusterChronicConditions, category: "Chronic Conditions", score: singleScore(impactInterpretation)},
	{key: questionbank.ClusterInflammation, category: "Inflammation", score: inflammationScore},
	{key: questionbank.ClusterMentalHealth, category: "Mental Health", score: mentalHealthScore},
}

var frequencyScores = map[string]int{
	"Daily":                  5,
	"Multiple times daily":   5,
	"4-6 times per week":     4,
	"Several times per week": 4,
	"2-3 times per week":     3,
	"Weekly":                 2,
	"A few times per month":  1,
	"Monthly or less":        0,
}

type Analyzer struct {
	tpl  *questionbank.Template
	refs map[questionbank.ClusterKey]questionbank.ClusterRef
}

// NewAnalyzer resolves cluster question ids once from the template metadata.
func NewAnalyzer(tpl *questionbank.Template) *Analyzer {
	return &Analyzer{
		tpl:  tpl,
		refs: tpl.ClusterRefs(),
	}
}

// Analyze scores every cluster present in the responses. Clusters with missing
// answers are omitted. The result is ordered by priority then score.
func (a *Analyzer) Analyze(responses []Response) []Score {
	answers := make(map[string]Response, len(responses))
	for _, response := range responses {
		answers[response.QuestionID] = response
	}
	result := []Score{}
	for _, c := range clusters {
		ref, ok := a.refs[c.key]
		if !ok {
			continue
		}
		score, ok := c.score(a, ref, answers)
		if !ok {
			continue
		}
		score.Category = c.category
		score.Cluster = c.key
		score.Priority = PriorityFor(score.Score)
		result = append(result, score)
	}
	sort.SliceStable(result, func(i, j int) bool {
		ri, rj := result[i].Priority.Rank(), result[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return result[i].Score > result[j].Score
	})
	return result
}

func CombinedScore(severity, frequencyScore int) int {
	return int(math.Round(float64(severity)*0.6 + float64(frequencyScore)*0.4))
}

func PriorityFor(score int) models.Priority {
	switch {
	case score <= 1:
		return models.PriorityLow
	case score <= 2:
		return models.PriorityMedium
	case score <= 4:
		return models.PriorityHigh
	default:
		return models.PriorityCritical
	}
}

// FrequencyScore maps a frequency label, unknown labels score 0.
func FrequencyScore(label string) int {
	return frequencyScores[label]
}

func (a *Analyzer) frequencyLabel(response Response) string {
	if response.Text != "" {
		return response.Text
	}
	q, ok := a.tpl.Question(response.QuestionID)
	if !ok {
		return ""
	}
	return q.AnswerLabel(response.Value, "")
}

func (a *Analyzer) frequency(response Response) (string, int) {
	label := a.frequencyLabel(response)
	score, ok := frequencyScores[label]
	if !ok {
		log.
			WithField("question_id", response.QuestionID).
			WithField("label", label).
			Warn("неизвестная метка частоты, оценка частоты принята за 0")
	}
	return label, score
}

func singleScore(interpret func(int) string) func(*Analyzer, questionbank.ClusterRef, map[string]Response) (Score, bool) {
	return func(a *Analyzer, ref questionbank.ClusterRef, answers map[string]Response) (Score, bool) {
		response, ok := answers[ref.Severity]
		if !ok {
			return Score{}, false
		}
		return Score{
			Score:          response.Value,
			Interpretation: interpret(response.Value),
		}, true
	}
}

func inflammationScore(a *Analyzer, ref questionbank.ClusterRef, answers map[string]Response) (Score, bool) {
	severity, ok := answers[ref.Severity]
	if !ok {
		return Score{}, false
	}
	frequency, ok := answers[ref.Frequency]
	if !ok {
		return Score{}, false
	}
	label, frequencyScore := a.frequency(frequency)
	return Score{
		Score:          CombinedScore(severity.Value, frequencyScore),
		Interpretation: fmt.Sprintf("%s at severity %d/5", label, severity.Value),
	}, true
}

func mentalHealthScore(a *Analyzer, ref questionbank.ClusterRef, answers map[string]Response) (Score, bool) {
	impact, ok := answers[ref.Severity]
	if !ok {
		return Score{}, false
	}
	frequency, ok := answers[ref.Frequency]
	if !ok {
		return Score{}, false
	}
	label, frequencyScore := a.frequency(frequency)
	return Score{
		Score:          CombinedScore(impact.Value, frequencyScore),
		Interpretation: fmt.Sprintf("%s with %s", label, strings.ToLower(impactInterpretation(impact.Value))),
	}, true
}

func severityInterpretation(score int) string {
	switch {
	case score <= 1:
		return "Minimal symptoms"
	case score <= 2:
		return "Mild symptoms - monitor"
	case score <= 3:
		return "Moderate symptoms - intervention recommended"
	case score <= 4:
		return "Significant symptoms - priority treatment"
	default:
		return "Severe symptoms - immediate attention needed"
	}
}

func impactInterpretation(score int) string {
	switch {
	case score <= 1:
		return "Minimal impact on daily life"
	case score <= 2:
		return "Some limitations"
	case score <= 3:
		return "Moderate interference with activities"
	case score <= 4:
		return "Significant disability"
	default:
		return "Severe disability - major life impact"
	}
}
