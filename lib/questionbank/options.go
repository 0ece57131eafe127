package questionbank

var likertOptions = []Option{
	{Value: 1, Label: "None", Score: 1},
	{Value: 2, Label: "Mild", Score: 2},
	{Value: 3, Label: "Moderate", Score: 3},
	{Value: 4, Label: "Significant", Score: 4},
	{Value: 5, Label: "Severe", Score: 5},
}

var yesNoOptions = []Option{
	{Value: 0, Label: "No", Score: 0},
	{Value: 1, Label: "Yes", Score: 1},
}

// symptomFrequencyOptions labels match the severity analyzer frequency table.
var symptomFrequencyOptions = []Option{
	{Value: 0, Label: "Monthly or less", Score: 0},
	{Value: 1, Label: "A few times per month", Score: 1},
	{Value: 2, Label: "Weekly", Score: 2},
	{Value: 3, Label: "2-3 times per week", Score: 3},
	{Value: 4, Label: "4-6 times per week", Score: 4},
	{Value: 5, Label: "Daily", Score: 5},
	{Value: 6, Label: "Multiple times daily", Score: 5},
}

var generalFrequencyOptions = []Option{
	{Value: 0, Label: "Never", Score: 0},
	{Value: 1, Label: "Rarely (1-2 times/month)", Score: 1},
	{Value: 2, Label: "Sometimes (weekly)", Score: 2},
	{Value: 3, Label: "Often (3-4 times/week)", Score: 3},
	{Value: 4, Label: "Daily", Score: 4},
}
