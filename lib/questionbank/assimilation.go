package questionbank

import "fntp-backend/models"

var assimilationQuestions = []Question{
	{
		ID:              "essential-digest-severity",
		Text:            "Rate the overall severity of your digestive symptoms.",
		Module:          models.ModuleAssimilation,
		Type:            models.QuestionTypeLikert,
		Options:         likertOptions,
		Essential:       true,
		Cluster:         ClusterDigestive,
		ClusterRole:     RoleSeverity,
		LabCorrelations: []string{"Comprehensive stool analysis", "Calprotectin"},
	},
	{
		ID:        "ASM001",
		Text:      "How often do you experience bloating after meals?",
		Module:    models.ModuleAssimilation,
		Type:      models.QuestionTypeFrequency,
		Options:   symptomFrequencyOptions,
		Essential: true,
	},
	{
		ID:        "ASM002",
		Text:      "Do you experience heartburn or acid reflux?",
		Module:    models.ModuleAssimilation,
		Type:      models.QuestionTypeYesNo,
		Options:   yesNoOptions,
		Essential: true,
	},
	{
		ID:        "ASM003",
		Text:      "How often do you experience constipation?",
		Module:    models.ModuleAssimilation,
		Type:      models.QuestionTypeFrequency,
		Options:   symptomFrequencyOptions,
		Essential: true,
	},
	{
		ID:      "ASM004",
		Text:    "Do you notice undigested food in your stool?",
		Module:  models.ModuleAssimilation,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "ASM005",
		Text:    "How strongly do specific foods trigger your symptoms?",
		Module:  models.ModuleAssimilation,
		Type:    models.QuestionTypeLikert,
		Options: likertOptions,
	},
	{
		ID:      "ASM006",
		Text:    "Have you taken antibiotics in the last 12 months?",
		Module:  models.ModuleAssimilation,
		Type:    models.QuestionTypeYesNo,
		Options: yesNoOptions,
	},
	{
		ID:      "ASM007",
		Text:    "How often do you have loose stools?",
		Module:  models.ModuleAssimilation,
		Type:    models.QuestionTypeFrequency,
		Options: symptomFrequencyOptions,
	},
}
