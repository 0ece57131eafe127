package questionbank

import "fntp-backend/models"

var biotransformationQuestions = []Question{
	{
		ID:        "BT001",
		Text:      "How sensitive are you to strong smells, perfumes or chemicals?",
		Module:    models.ModuleBiotransformation,
		Type:      models.QuestionTypeLikert,
		Options:   likertOptions,
		Essential: true,
	},
	{
		ID:              "BT002",
		Text:            "How often do you drink alcohol?",
		Module:          models.ModuleBiotransformation,
		Type:            models.QuestionTypeFrequency,
		Options:         generalFrequencyOptions,
		Essential:       true,
		LabCorrelations: []string{"GGT", "ALT", "AST"},
	},
	{
		ID:        "BT003",
		Text:      "Do you react strongly to caffeine?",
		Module:    models.ModuleBiotransformation,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:        "BT004",
		Text:      "How often do you experience night sweats?",
		Module:    models.ModuleBiotransformation,
		Type:      models.QuestionTypeFrequency,
		Options:   symptomFrequencyOptions,
		Essential: true,
	},
	{
		ID:      "BT005",
		Text:    "Are you regularly exposed to mould, solvents or pesticides?",
		Module:  models.ModuleBiotransformation,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "BT006",
		Text:    "Rate any discomfort under the right rib cage.",
		Module:  models.ModuleBiotransformation,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:      "BT007",
		Text:    "Have you had your gallbladder removed?",
		Module:  models.ModuleBiotransformation,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "BT008",
		Text:    "How often do you experience acne or skin breakouts?",
		Module:  models.ModuleBiotransformation,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
}
