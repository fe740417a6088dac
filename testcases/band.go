package testcases

var bandCases = []TestCase{
	{
		Name:    "aligned",
		Width:   64,
		Height:  16,
		Pattern: Band{Edge0: 16, Edge1: 48},
	},
	{
		Name:    "offgrid",
		Width:   64,
		Height:  16,
		Pattern: Band{Edge0: 10.3, Edge1: 40.8},
	},
	{
		// narrower than a pixel
		Name:    "thin",
		Width:   32,
		Height:  16,
		Pattern: Band{Edge0: 15.2, Edge1: 15.6},
	},
	{
		Name:    "outside",
		Width:   32,
		Height:  16,
		Pattern: Band{Edge0: 40, Edge1: 50},
	},
}
