package testcases

var stripeCases = []TestCase{
	{
		Name:    "half",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.5, Period: 8},
	},
	{
		Name:    "quarter",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.25, Period: 8},
	},
	{
		// edges fall between pixel centres
		Name:    "offgrid",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.5, Period: 6.3},
	},
	{
		// period below one pixel, should come out flat grey
		Name:    "subpixel",
		Width:   64,
		Height:  16,
		Pattern: Stripes{Edge: 0.5, Period: 0.25},
	},
	{
		Name:    "solid",
		Width:   16,
		Height:  16,
		Pattern: Stripes{Edge: 0, Period: 5},
	},
	{
		Name:    "empty",
		Width:   16,
		Height:  16,
		Pattern: Stripes{Edge: 1, Period: 5},
	},
}
