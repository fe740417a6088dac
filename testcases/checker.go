package testcases

var checkerCases = []TestCase{
	{
		Name:    "aligned",
		Width:   64,
		Height:  64,
		Pattern: Checker{Period: 16},
	},
	{
		Name:    "offgrid",
		Width:   64,
		Height:  64,
		Pattern: Checker{Period: 9.7},
	},
	{
		Name:    "fine",
		Width:   64,
		Height:  64,
		Pattern: Checker{Period: 0.5},
	},
}
