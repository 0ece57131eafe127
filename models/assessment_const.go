package models

import "github.com/pkg/errors"

// ErrNotFound is wrapped by handlers when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type FunctionalModule string

const (
	ModuleScreening         FunctionalModule = "SCREENING"
	ModuleAssimilation      FunctionalModule = "ASSIMILATION"
	ModuleDefenseRepair     FunctionalModule = "DEFENSE_REPAIR"
	ModuleEnergy            FunctionalModule = "ENERGY"
	ModuleBiotransformation FunctionalModule = "BIOTRANSFORMATION"
	ModuleTransport         FunctionalModule = "TRANSPORT"
	ModuleCommunication     FunctionalModule = "COMMUNICATION"
	ModuleStructural        FunctionalModule = "STRUCTURAL"
)

// ModuleSequence is the fixed order in which modules are walked.
var ModuleSequence = []FunctionalModule{
	ModuleScreening,
	ModuleAssimilation,
	ModuleDefenseRepair,
	ModuleEnergy,
	ModuleBiotransformation,
	ModuleTransport,
	ModuleCommunication,
	ModuleStructural,
}

var moduleTitles = map[FunctionalModule]string{
	ModuleScreening:         "Screening",
	ModuleAssimilation:      "Assimilation",
	ModuleDefenseRepair:     "Defense & Repair",
	ModuleEnergy:            "Energy",
	ModuleBiotransformation: "Biotransformation",
	ModuleTransport:         "Transport",
	ModuleCommunication:     "Communication",
	ModuleStructural:        "Structural",
}

func (m FunctionalModule) Title() string {
	if title, ok := moduleTitles[m]; ok {
		return title
	}
	return string(m)
}

type QuestionType string

const (
	QuestionTypeLikert    QuestionType = "LIKERT_SCALE"
	QuestionTypeYesNo     QuestionType = "YES_NO"
	QuestionTypeFrequency QuestionType = "FREQUENCY"
	QuestionTypeText      QuestionType = "TEXT"
)

type AssessmentStatus string

const (
	AssessmentStatusInProgress AssessmentStatus = "IN_PROGRESS"
	AssessmentStatusPaused     AssessmentStatus = "PAUSED"
	AssessmentStatusCompleted  AssessmentStatus = "COMPLETED"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// priorityRank orders priorities for sorting, higher is more urgent
var priorityRank = map[Priority]int{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

func (p Priority) Rank() int {
	return priorityRank[p]
}

type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "UPLOADED"
	DocumentStatusAnalyzing DocumentStatus = "ANALYZING"
	DocumentStatusAnalyzed  DocumentStatus = "ANALYZED"
	DocumentStatusFailed    DocumentStatus = "FAILED"
)
