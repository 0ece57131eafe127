package questionbank

import "fntp-backend/models"

var screeningQuestions = []Question{
	{
		ID:              "SCR001",
		Text:            "How severe is the fatigue you experience on a typical day?",
		Module:          models.ModuleScreening,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		RedFlag:         &RedFlagRule{Operator: RedFlagGte, Threshold: 5, Message: "Severe fatigue reported"},
		LabCorrelations: []string{"Ferritin", "TSH", "Vitamin B12"},
	},
	{
		ID:        "SCR_SO01",
		Text:      "How often do you eat fried foods or foods cooked in seed oils?",
		Module:    models.ModuleScreening,
		Type:      models.QuestionTypeFrequency,
		Options:   generalFrequencyOptions,
		Category:  "SEED_OIL",
		Essential: true,
		RedFlag:   &RedFlagRule{Operator: RedFlagGte, Threshold: 4, Message: "Daily fried food consumption"},
	},
	{
		ID:              "essential-chronic-impact",
		Text:            "How much do chronic health conditions limit your daily activities?",
		Module:          models.ModuleScreening,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		Cluster:         ClusterChronicConditions,
		ClusterRole:     RoleSeverity,
		LabCorrelations: []string{"hs-CRP", "HbA1c"},
	},
	{
		ID:        "SCR002",
		Text:      "Are you currently taking prescription medications?",
		Module:    models.ModuleScreening,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:     "SCR003",
		Text:   "What are your top three health goals?",
		Module: models.ModuleScreening,
		Type:   models.QuestionTypeText,
	},
	{
		ID:      "SCR004",
		Text:    "How poor is your sleep quality?",
		Module:  models.ModuleScreening,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:      "SCR005",
		Text:    "Have you been diagnosed with a chronic condition?",
		Module:  models.ModuleScreening,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "SCR006",
		Text:    "How often do you experience headaches?",
		Module:  models.ModuleScreening,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
}
