package questionbank

import "fntp-backend/models"

var structuralQuestions = []Question{
	{
		ID:        "ST001",
		Text:      "Rate your chronic back or neck pain.",
		Module:    models.ModuleStructural,
		Type:      models.QuestionTypeLikert,
		Options:   likertOptions,
		Essential: true,
	},
	{
		ID:              "ST002",
		Text:            "How often do you get muscle cramps?",
		Module:          models.ModuleStructural,
		Type:            models.QuestionTypeFrequency,
		Options:         symptomFrequencyOptions,
		Essential:       true,
		LabCorrelations: []string{"Magnesium RBC", "Potassium"},
	},
	{
		ID:              "ST003",
		Text:            "Have you been diagnosed with osteopenia or osteoporosis?",
		Module:          models.ModuleStructural,
		Type:            models.QuestionTypeYesNo,
		Options:         yesNoOptions,
		Essential:       true,
		LabCorrelations: []string{"Vitamin D", "Calcium"},
	},
	{
		ID:      "ST004",
		Text:    "Rate your joint stiffness on waking.",
		Module:  models.ModuleStructural,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:      "ST005",
		Text:    "Do old injuries still cause you pain?",
		Module:  models.ModuleStructural,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "ST006",
		Text:    "How often do you do strength or weight-bearing exercise?",
		Module:  models.ModuleStructural,
		Type:    models.QuestionTypeFrequency,
		Options: generalFrequencyOptions,
	},
	{
		ID:      "ST007",
		Text:    "How much do posture or mobility problems limit you?",
		Module:  models.ModuleStructural,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:     "ST008",
		Text:   "Describe any surgeries you have had.",
		Module: models.ModuleStructural,
		Type:   models.QuestionTypeText,
	},
}
