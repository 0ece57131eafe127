package questionbank

import "fntp-backend/models"

var transportQuestions = []Question{
	{
		ID:              "TR001",
		Text:            "Have you been diagnosed with high blood pressure?",
		Module:          models.ModuleTransport,
		Type:            models.QuestionTypeYesNo,
		Options:         yesNoOptions,
		Essential:       true,
		LabCorrelations: []string{"Lipid panel", "Homocysteine"},
	},
	{
		ID:        "TR002",
		Text:      "How often do you have cold hands or feet?",
		Module:    models.ModuleTransport,
		Type:      models.QuestionTypeFrequency,
		Options:   symptomFrequencyOptions,
		Essential: true,
	},
	{
		ID:        "TR003",
		Text:      "Rate any swelling in your ankles or legs.",
		Module:    models.ModuleTransport,
		Type:      models.QuestionTypeLikert,
		Options:   likertOptions,
		Essential: true,
	},
	{
		ID:        "TR004",
		Text:      "Is there a family history of heart disease?",
		Module:    models.ModuleTransport,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:      "TR005",
		Text:    "How often do you notice heart palpitations?",
		Module:  models.ModuleTransport,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
		RedFlag: &RedFlagRule{Operator: RedFlagGte, Threshold: 5, Message: "Daily heart palpitations reported"},
	},
	{
		ID:      "TR006",
		Text:    "Rate shortness of breath on mild exertion.",
		Module:  models.ModuleTransport,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
		RedFlag: &RedFlagRule{Operator: RedFlagGte, Threshold: 5, Message: "Severe shortness of breath on mild exertion"},
	},
	{
		ID:      "TR007",
		Text:    "Do you bruise easily?",
		Module:  models.ModuleTransport,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:     "TR008",
		Text:   "List any cardiovascular medications you take.",
		Module: models.ModuleTransport,
		Type:   models.QuestionTypeText,
	},
}
