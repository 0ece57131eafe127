package questionbank

import (
	"fntp-backend/models"
)

// ClusterKey names a group of questions the severity analyzer scores together.
type ClusterKey string

const (
	ClusterDigestive         ClusterKey = "DIGESTIVE"
	ClusterChronicConditions ClusterKey = "CHRONIC_CONDITIONS"
	ClusterInflammation      ClusterKey = "INFLAMMATION"
	ClusterMentalHealth      ClusterKey = "MENTAL_HEALTH"
)

// ClusterRole tells which dimension of a cluster a question answers.
type ClusterRole string

const (
	RoleSeverity  ClusterRole = "severity"
	RoleFrequency ClusterRole = "frequency"
)

type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

type RedFlagOperator string

const (
	RedFlagGte RedFlagOperator = "gte"
	RedFlagLte RedFlagOperator = "lte"
)

type RedFlagRule struct {
	Operator  RedFlagOperator
	Threshold int
	Message   string
}

func (r RedFlagRule) Triggered(value int) bool {
	switch r.Operator {
	case RedFlagLte:
		return value <= r.Threshold
	default:
		return value >= r.Threshold
	}
}

type Question struct {
	ID              string                  `json:"id"`
	Text            string                  `json:"text"`
	Module          models.FunctionalModule `json:"module"`
	Type            models.QuestionType     `json:"type"`
	Options         []Option                `json:"options,omitempty"`
	Category        string                  `json:"category,omitempty"`
	Essential       bool                    `json:"-"`
	Cluster         ClusterKey              `json:"-"`
	ClusterRole     ClusterRole             `json:"-"`
	RedFlag         *RedFlagRule            `json:"-"`
	LabCorrelations []string                `json:"-"`
}

func (q Question) Option(value int) (Option, bool) {
	for _, option := range q.Options {
		if option.Value == value {
			return option, true
		}
	}
	return Option{}, false
}

// ValidateAnswer returns a human readable message when the answer does not fit the question type.
func (q Question) ValidateAnswer(value int, text string) string {
	switch q.Type {
	case models.QuestionTypeLikert:
		if value < 1 || value > 5 {
			return "value must be between 1 and 5"
		}
	case models.QuestionTypeYesNo:
		if value != 0 && value != 1 {
			return "value must be 0 (no) or 1 (yes)"
		}
	case models.QuestionTypeFrequency:
		if _, ok := q.Option(value); !ok {
			return "value must be one of the question options"
		}
	case models.QuestionTypeText:
		if text == "" {
			return "text answer is required"
		}
	}
	return ""
}

// AnswerLabel is the option label for enumerated answers, the raw text otherwise.
func (q Question) AnswerLabel(value int, text string) string {
	if text != "" {
		return text
	}
	if option, ok := q.Option(value); ok {
		return option.Label
	}
	return ""
}
