package dashboard

// Range is an inclusive numeric bound. Decimal ranges are drawn with one
// decimal place, the rest as integers.
type Range struct {
	Lo, Hi  float64
	Decimal bool
}

// Ints declares an integer range.
func Ints(lo, hi int) Range { return Range{Lo: float64(lo), Hi: float64(hi)} }

// Tenths declares a one-decimal range.
func Tenths(lo, hi float64) Range { return Range{Lo: lo, Hi: hi, Decimal: true} }

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool { return v >= r.Lo && v <= r.Hi }

// Bounds maps a dotted JSON path (e.g. "budgetBurnRate.variance") to its range.
// For list fields the range applies to every element.
type Bounds map[string]Range

// Choices maps a dotted JSON path to the fixed set it is drawn from.
type Choices map[string][]string

// Demo constants. They have no business meaning beyond the dashboards.
const (
	velocityTarget     = 125
	velocityTrendUp    = "+15%"
	velocityTrendDown  = "-5%"
	annualSpend        = 2_040_000
	spendCurrency      = "USD"
	timeToFillAverage  = 22
	timeToFillTarget   = 18
	seriesLength       = 7
	dataStreamMessages = 3

	// DashboardsAvailable is reported by the health endpoint.
	DashboardsAvailable = 15
)

var (
	auditGrades       = []string{"A+", "A", "A-"}
	budgetHealthState = []string{"ON TRACK", "AT RISK", "AHEAD"}

	// dataStreamFeed is the pool the future truck ticker samples from.
	dataStreamFeed = []string{
		"AI model predicts 12% drop in component lead times",
		"Autonomous sourcing secured 3 new carbon-neutral suppliers",
		"Fleet telemetry flags 2 routes for rebalancing",
		"Supply chain risk index holding below threshold",
		"Predictive maintenance window scheduled for Q3 fleet",
	}
)

var complianceBounds = Bounds{
	"openExceptions":    Ints(8, 15),
	"sowViolations":     Ints(30, 45),
	"complianceScore":   Ints(88, 95),
	"certificationGaps": Ints(5, 10),
	"auditStatus":       Ints(2, 5),
}

var procurementPerformanceBounds = Bounds{
	"poVolume":    Ints(150, 250),
	"spendRate":   Ints(80, 120),
	"vendorCount": Ints(140, 180),
}

var procurementVelocityBounds = Bounds{
	"purchaseOrderVelocity.current":        Ints(115, 135),
	"vendorComplianceRate.compliance":      Ints(90, 98),
	"vendorComplianceRate.complianceScore": Ints(88, 95),
	"vendorComplianceRate.violations":      Ints(25_000, 35_000),
	"budgetBurnRate.dailySpend":            Ints(140_000, 160_000),
	"budgetBurnRate.monthlyForecast":       Ints(4_200_000, 4_800_000),
	"budgetBurnRate.variance":              Ints(-8, 2),
}

var procurementVelocityChoices = Choices{
	"vendorComplianceRate.auditGrade": auditGrades,
}

var workforceAnalyticsBounds = Bounds{
	"contractorUtilization.percentage": Tenths(75.0, 85.0),
	"contractorUtilization.capacity":   Ints(80, 90),
	"timeToFill.days":                  Ints(18, 26),
	"onboardingPipeline.total":         Ints(100, 140),
	"onboardingPipeline.pending":       Ints(25, 35),
	"onboardingPipeline.inProgress":    Ints(55, 70),
	"activePlacements.total":           Ints(440, 470),
	"activePlacements.thirtyDayChange": Ints(10, 20),
}

var executiveSummaryBounds = Bounds{
	"activeVendors.count":             Ints(160, 170),
	"activeVendors.ytdChange":         Ints(10, 15),
	"complianceRate.percentage":       Ints(90, 95),
	"workforceUtilization.percentage": Tenths(76.0, 82.0),
	"budgetHealth.variance":           Ints(-5, 3),
}

var executiveSummaryChoices = Choices{
	"budgetHealth.status": budgetHealthState,
}

var vendorScorecardBounds = Bounds{
	"poVolume":          Ints(300, 400),
	"vendorPerformance": Tenths(90.0, 98.0),
	"budgetUtilization": Ints(60, 75),
	"sowCompliance":     Ints(85, 95),
	"activeContracts":   Ints(140, 170),
}

var workforceHUDBounds = Bounds{
	"activeContractors": Ints(1200, 1300),
	"utilizationRate":   Ints(82, 92),
	"avgTimeToFill":     Ints(10, 15),
	"onboardingQueue":   Ints(25, 45),
	"complianceRate":    Ints(94, 98),
	"trendData":         Ints(75, 95),
}

var luxuryTruckBounds = Bounds{
	"openPOs":            Ints(110, 145),
	"vendorRating":       Tenths(8.5, 9.2),
	"spendVelocity":      Tenths(2.0, 2.8),
	"contractCompliance": Ints(90, 96),
	"poAverage":          Ints(17_000, 20_000),
	"onTimeDelivery":     Ints(88, 94),
	"invoiceAccuracy":    Ints(96, 99),
}

var electricCarBounds = Bounds{
	"energyEfficiency": Ints(90, 98),
	"costSavings":      Tenths(1.0, 1.5),
	"carbonOffset":     Ints(400, 500),
	"renewableEnergy":  Ints(82, 92),
	"vendorEcoScore":   Tenths(8.5, 9.5),
}

var electricCarChoices = Choices{
	"sustainabilityScore": auditGrades,
}

var futureTruckBounds = Bounds{
	"aiPredictionAccuracy":  Tenths(97.5, 99.2),
	"autonomousSourcing":    Ints(145, 170),
	"fleetUtilization":      Ints(75, 95),
	"supplyChainResilience": Ints(88, 95),
	"riskDetection":         Ints(2, 5),
}
