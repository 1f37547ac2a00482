package units

// Default holds the built-in tables. It is built once at init.
var Default = MustBuild(DefaultTables()...)

// DefaultTables returns fresh copies of the built-in tables.
func DefaultTables() []Table {
	return []Table{
		{
			Domain: Length,
			Base:   "m",
			Units: []Unit{
				{"mm", "Millimeter", 0.001},
				{"cm", "Centimeter", 0.01},
				{"m", "Meter", 1},
				{"km", "Kilometer", 1000},
				{"inch", "Inch", 0.0254},
				{"foot", "Foot", 0.3048},
				{"yard", "Yard", 0.9144},
				{"mile", "Mile", 1609.344},
			},
		},
		{
			Domain: Weight,
			Base:   "kg",
			Units: []Unit{
				{"mg", "Milligram", 1e-6},
				{"g", "Gram", 0.001},
				{"kg", "Kilogram", 1},
				{"oz", "Ounce", 0.0283495},
				{"lb", "Pound", 0.453592},
				{"ton", "Metric ton", 1000},
			},
		},
		{
			Domain: Volume,
			Base:   "liter",
			Units: []Unit{
				{"ml", "Milliliter", 0.001},
				{"liter", "Liter", 1},
				{"gallon", "Gallon (US)", 3.78541},
				{"quart", "Quart (US)", 0.946353},
				{"pint", "Pint (US)", 0.473176},
				{"cup", "Cup (US)", 0.236588},
				{"fl_oz", "Fluid ounce (US)", 0.0295735},
				{"tbsp", "Tablespoon", 0.0147868},
				{"tsp", "Teaspoon", 0.00492892},
			},
		},
		{
			// Speed constants are units per m/s.
			Domain:  Speed,
			Base:    "ms",
			PerBase: true,
			Units: []Unit{
				{"ms", "Meter/second", 1},
				{"kmh", "Kilometer/hour", 3.6},
				{"mph", "Mile/hour", 2.23694},
				{"knots", "Knot", 1.94384},
			},
		},
		{
			Domain: Area,
			Base:   "m2",
			Units: []Unit{
				{"mm2", "Square millimeter", 1e-6},
				{"cm2", "Square centimeter", 0.0001},
				{"m2", "Square meter", 1},
				{"km2", "Square kilometer", 1e6},
				{"acre", "Acre", 4046.86},
				{"hectare", "Hectare", 10000},
			},
		},
		{
			Domain: Pressure,
			Base:   "pa",
			Units: []Unit{
				{"pa", "Pascal", 1},
				{"bar", "Bar", 100000},
				{"atm", "Atmosphere", 101325},
				{"psi", "Pound/square inch", 6894.76},
			},
		},
	}
}
