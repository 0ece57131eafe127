package questionbank

import "fntp-backend/models"

var defenseRepairQuestions = []Question{
	{
		ID:              "essential-inflammation-severity",
		Text:            "Rate the severity of joint pain, swelling or other signs of inflammation.",
		Module:          models.ModuleDefenseRepair,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		Cluster:         ClusterInflammation,
		ClusterRole:     RoleSeverity,
		LabCorrelations: []string{"hs-CRP", "ESR", "Omega-3 index"},
	},
	{
		ID:          "essential-inflammation-frequency",
		Text:        "How often do you notice these inflammation symptoms?",
		Module:      models.ModuleDefenseRepair,
		Type:        models.QuestionTypeFrequency,
		Options:     symptomFrequencyOptions,
		Essential:   true,
		Cluster:     ClusterInflammation,
		ClusterRole: RoleFrequency,
	},
	{
		ID:        "DR001",
		Text:      "How often do you catch colds or infections?",
		Module:    models.ModuleDefenseRepair,
		Type:      models.QuestionTypeFrequency,
		Options:   generalFrequencyOptions,
		Essential: true,
	},
	{
		ID:        "DR002",
		Text:      "Do you have seasonal or food allergies?",
		Module:    models.ModuleDefenseRepair,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:      "DR003",
		Text:    "How slowly do cuts and bruises heal?",
		Module:  models.ModuleDefenseRepair,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:              "DR004",
		Text:            "Do you have a diagnosed autoimmune condition?",
		Module:          models.ModuleDefenseRepair,
		Type:            models.QuestionTypeYesNo,
		Options:         yesNoOptions,
		LabCorrelations: []string{"ANA", "TPO antibodies"},
	},
	{
		ID:      "DR005",
		Text:    "How often do you experience skin rashes or eczema?",
		Module:  models.ModuleDefenseRepair,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
	{
		ID:     "DR006",
		Text:   "List any known food sensitivities.",
		Module: models.ModuleDefenseRepair,
		Type:   models.QuestionTypeText,
	},
}
