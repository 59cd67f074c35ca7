package domain

// Weather is a point-in-time report for a city. Temp keeps its display
// form ("22°C") because that is the wire contract the clients render as-is.
type Weather struct {
	Temp        string
	Condition   string
	Description string
	Humidity    int
	WindSpeed   float64
}
