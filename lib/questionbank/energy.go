package questionbank

import "fntp-backend/models"

var energyQuestions = []Question{
	{
		ID:        "EN001",
		Text:      "How strong is your afternoon energy slump?",
		Module:    models.ModuleEnergy,
		Type:      models.QuestionTypeLikert,
		Options:   likertOptions,
		Essential: true,
	},
	{
		ID:        "EN002",
		Text:      "How often do you wake up feeling unrefreshed?",
		Module:    models.ModuleEnergy,
		Type:      models.QuestionTypeFrequency,
		Options:   symptomFrequencyOptions,
		Essential: true,
	},
	{
		ID:        "EN003",
		Text:      "Do you rely on caffeine to get through the day?",
		Module:    models.ModuleEnergy,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:              "EN004",
		Text:            "How exhausted are you the day after moderate exercise?",
		Module:          models.ModuleEnergy,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		LabCorrelations: []string{"CoQ10", "Magnesium RBC"},
	},
	{
		ID:              "EN005",
		Text:            "How often do you feel shaky or irritable when a meal is delayed?",
		Module:          models.ModuleEnergy,
		Type:            models.QuestionTypeFrequency,
		Options:         generalFrequencyOptions,
		LabCorrelations: []string{"Fasting glucose", "Fasting insulin"},
	},
	{
		ID:      "EN006",
		Text:    "Do you crave sweets after meals?",
		Module:  models.ModuleEnergy,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "EN007",
		Text:    "Rate any muscle weakness you experience.",
		Module:  models.ModuleEnergy,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:     "EN008",
		Text:   "Describe a typical day of meals and snacks.",
		Module: models.ModuleEnergy,
		Type:   models.QuestionTypeText,
	},
}
