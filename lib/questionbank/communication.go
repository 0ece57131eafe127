package questionbank

import "fntp-backend/models"

var communicationQuestions = []Question{
	{
		ID:              "essential-anxiety-impact",
		Text:            "How much do anxiety or low mood affect your daily life?",
		Module:          models.ModuleCommunication,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		Cluster:         ClusterMentalHealth,
		ClusterRole:     RoleSeverity,
		LabCorrelations: []string{"Vitamin D", "Cortisol (AM)"},
	},
	{
		ID:          "essential-anxiety-frequency",
		Text:        "How often do you feel anxious or low?",
		Module:      models.ModuleCommunication,
		Type:        models.QuestionTypeFrequency,
		Options:     symptomFrequencyOptions,
		Essential:   true,
		Cluster:     ClusterMentalHealth,
		ClusterRole: RoleFrequency,
	},
	{
		ID:        "CM001",
		Text:      "Have you recently had thoughts of harming yourself?",
		Module:    models.ModuleCommunication,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
		RedFlag:   &RedFlagRule{Operator: RedFlagGte, Threshold: 1, Message: "Self-harm thoughts reported"},
	},
	{
		ID:      "CM002",
		Text:    "How often do you experience brain fog?",
		Module:  models.ModuleCommunication,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
	{
		ID:      "CM003",
		Text:    "Rate your current level of stress.",
		Module:  models.ModuleCommunication,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:              "CM004",
		Text:            "Have you been diagnosed with a thyroid condition?",
		Module:          models.ModuleCommunication,
		Type:            models.QuestionTypeYesNo,
		Options:         yesNoOptions,
		LabCorrelations: []string{"TSH", "Free T3", "Free T4"},
	},
	{
		ID:      "CM005",
		Text:    "How often do you experience hormonal symptoms such as hot flushes or PMS?",
		Module:  models.ModuleCommunication,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
	{
		ID:     "CM006",
		Text:   "Is there anything else about your mood or stress you would like to share?",
		Module: models.ModuleCommunication,
		Type:   models.QuestionTypeText,
	},
}
