package pricing

// Peak travel months: Dec-Jan (winter), Apr-Jun (summer), Oct-Nov (festive season).
var peakMonths = map[int]bool{
	12: true, 1: true, 4: true, 5: true, 6: true, 10: true, 11: true,
}

type dateWindow struct {
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

// Festival and holiday windows. The Christmas-New Year window wraps the year
// boundary and is handled by the wrap-around branch of inWindow.
var festivalWindows = []dateWindow{
	{10, 15, 11, 15}, // Diwali period
	{12, 20, 1, 5},   // Christmas-New Year
	{3, 1, 3, 31},    // Holi season
	{4, 15, 6, 15},   // Summer vacation
}

var metroRoutes = map[string]bool{
	"DEL-BOM": true, "BOM-DEL": true,
	"DEL-BLR": true, "BLR-DEL": true,
	"BOM-BLR": true, "BLR-BOM": true,
}

var touristRoutes = map[string]bool{
	"BOM-GOI": true, "DEL-SXR": true, "BLR-GOI": true, "DEL-IXL": true,
}

var businessRoutes = map[string]bool{
	"DEL-HYD": true, "BOM-HYD": true, "BLR-HYD": true, "DEL-PNQ": true,
}

type airlineTier string

const (
	tierPremium  airlineTier = "premium"
	tierStandard airlineTier = "standard"
	tierBudget   airlineTier = "budget"
)

var airlineTiers = map[string]airlineTier{
	"AI": tierPremium,  // Air India
	"UK": tierPremium,  // Vistara
	"6E": tierStandard, // IndiGo
	"SG": tierBudget,   // SpiceJet
	"I5": tierBudget,   // Air Asia
	"G8": tierBudget,   // GoFirst
}

var classMultipliers = map[string]float64{
	"economy":  1.0,
	"business": 2.8,
	"first":    4.5,
}
