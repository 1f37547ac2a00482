package convert

import "unitconv-core/units"

// Per-domain entry points. Each sanitizes value, converts and formats.

func Length(value float64, from, to string) (string, error) {
	return std.display(units.Length, value, from, to)
}

func Weight(value float64, from, to string) (string, error) {
	return std.display(units.Weight, value, from, to)
}

func Volume(value float64, from, to string) (string, error) {
	return std.display(units.Volume, value, from, to)
}

func Speed(value float64, from, to string) (string, error) {
	return std.display(units.Speed, value, from, to)
}

func Area(value float64, from, to string) (string, error) {
	return std.display(units.Area, value, from, to)
}

func Pressure(value float64, from, to string) (string, error) {
	return std.display(units.Pressure, value, from, to)
}

func Temperature(value float64, from, to string) (string, error) {
	return std.display(units.Temperature, value, from, to)
}
