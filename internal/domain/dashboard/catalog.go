// Package dashboard generates the mock metric snapshots behind each dashboard.
//
// Generators are stateless: every call draws fresh values from a
// sampling.Sampler within the ranges declared in bounds.go and stamps the
// result with the catalog clock.
package dashboard

import (
	"strings"
	"time"

	"github.com/okian/velocity/internal/domain/sampling"
)

// TimestampLayout renders local time as ISO-8601 without a zone, to the microsecond.
const TimestampLayout = "2006-01-02T15:04:05.000000"

const (
	dataStreamSep    = "... "
	dataStreamSuffix = "..."
)

// Catalog produces one snapshot type per dashboard domain.
type Catalog struct {
	sampler *sampling.Sampler
	now     func() time.Time
	service string
	version string
}

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithSampler replaces the default sampler, e.g. with a seeded one.
func WithSampler(s *sampling.Sampler) Option {
	return func(c *Catalog) {
		if s != nil {
			c.sampler = s
		}
	}
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// WithServiceInfo sets the name and version reported by Health.
func WithServiceInfo(name, version string) Option {
	return func(c *Catalog) {
		if name != "" {
			c.service = name
		}
		if version != "" {
			c.version = version
		}
	}
}

// NewCatalog creates a Catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		sampler: sampling.New(),
		now:     time.Now,
		service: "Velocity Dashboard API",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) envelope() Envelope {
	return Envelope{Timestamp: c.timestamp(), Status: StatusSuccess}
}

func (c *Catalog) timestamp() string {
	return c.now().Format(TimestampLayout)
}

func (c *Catalog) draw(b Bounds, key string) int {
	r := b[key]
	return c.sampler.Int(int(r.Lo), int(r.Hi))
}

func (c *Catalog) drawTenths(b Bounds, key string) float64 {
	r := b[key]
	return c.sampler.Float1(r.Lo, r.Hi)
}

func (c *Catalog) series(b Bounds, key string) []int {
	r := b[key]
	return c.sampler.IntSeries(seriesLength, int(r.Lo), int(r.Hi))
}

// Compliance returns Compliance & Risk Monitor metrics.
func (c *Catalog) Compliance() ComplianceMetrics {
	b := complianceBounds
	return ComplianceMetrics{
		OpenExceptions:    c.draw(b, "openExceptions"),
		SOWViolations:     c.draw(b, "sowViolations"),
		ComplianceScore:   c.draw(b, "complianceScore"),
		CertificationGaps: c.draw(b, "certificationGaps"),
		AuditStatus:       c.draw(b, "auditStatus"),
		Envelope:          c.envelope(),
	}
}

// ProcurementPerformance returns Procurement Performance metrics.
func (c *Catalog) ProcurementPerformance() ProcurementPerformance {
	b := procurementPerformanceBounds
	return ProcurementPerformance{
		POVolume:    c.draw(b, "poVolume"),
		SpendRate:   c.draw(b, "spendRate"),
		VendorCount: c.draw(b, "vendorCount"),
		Envelope:    c.envelope(),
	}
}

// ProcurementVelocity returns Procurement Velocity Monitor metrics. The
// velocity trend is derived from the drawn current value.
func (c *Catalog) ProcurementVelocity() ProcurementVelocity {
	b := procurementVelocityBounds
	current := c.draw(b, "purchaseOrderVelocity.current")
	return ProcurementVelocity{
		PurchaseOrderVelocity: PurchaseOrderVelocity{
			Current: current,
			Target:  velocityTarget,
			Trend:   VelocityTrend(current),
			Status:  "STABLE",
		},
		VendorComplianceRate: VendorComplianceRate{
			Compliance:      c.draw(b, "vendorComplianceRate.compliance"),
			ComplianceScore: c.draw(b, "vendorComplianceRate.complianceScore"),
			Violations:      c.draw(b, "vendorComplianceRate.violations"),
			AuditGrade:      sampling.Choice(c.sampler, auditGrades),
		},
		BudgetBurnRate: BudgetBurnRate{
			DailySpend:      c.draw(b, "budgetBurnRate.dailySpend"),
			MonthlyForecast: c.draw(b, "budgetBurnRate.monthlyForecast"),
			Variance:        c.draw(b, "budgetBurnRate.variance"),
			Status:          "ON TRACK",
		},
		Envelope: c.envelope(),
	}
}

// VelocityTrend is "+15%" above the velocity target and "-5%" otherwise.
func VelocityTrend(current int) string {
	if current > velocityTarget {
		return velocityTrendUp
	}
	return velocityTrendDown
}

// WorkforceAnalytics returns Workforce Analytics metrics.
func (c *Catalog) WorkforceAnalytics() WorkforceAnalytics {
	b := workforceAnalyticsBounds
	return WorkforceAnalytics{
		ContractorUtilization: ContractorUtilization{
			Percentage: c.drawTenths(b, "contractorUtilization.percentage"),
			Capacity:   c.draw(b, "contractorUtilization.capacity"),
		},
		TimeToFill: TimeToFill{
			Days:    c.draw(b, "timeToFill.days"),
			Average: timeToFillAverage,
			Target:  timeToFillTarget,
			Trend:   "up",
		},
		OnboardingPipeline: OnboardingPipeline{
			Total:      c.draw(b, "onboardingPipeline.total"),
			Pending:    c.draw(b, "onboardingPipeline.pending"),
			InProgress: c.draw(b, "onboardingPipeline.inProgress"),
			Status:     "alert",
		},
		ActivePlacements: ActivePlacements{
			Total:           c.draw(b, "activePlacements.total"),
			ThirtyDayChange: c.draw(b, "activePlacements.thirtyDayChange"),
			Trend:           "up",
		},
		Envelope: c.envelope(),
	}
}

// ExecutiveSummary returns Executive Summary metrics.
func (c *Catalog) ExecutiveSummary() ExecutiveSummary {
	b := executiveSummaryBounds
	return ExecutiveSummary{
		TotalProcurementSpend: TotalProcurementSpend{Annual: annualSpend, Currency: spendCurrency},
		ActiveVendors: ActiveVendors{
			Count:     c.draw(b, "activeVendors.count"),
			YTDChange: c.draw(b, "activeVendors.ytdChange"),
		},
		ComplianceRate: ComplianceRate{
			Percentage: c.draw(b, "complianceRate.percentage"),
			Status:     "HIGH",
		},
		WorkforceUtilization: WorkforceUtilization{
			Percentage: c.drawTenths(b, "workforceUtilization.percentage"),
		},
		BudgetHealth: BudgetHealth{
			Status:   sampling.Choice(c.sampler, budgetHealthState),
			Variance: c.draw(b, "budgetHealth.variance"),
		},
		Envelope: c.envelope(),
	}
}

// VendorScorecard returns vendor scorecard metrics.
func (c *Catalog) VendorScorecard() VendorScorecard {
	b := vendorScorecardBounds
	return VendorScorecard{
		POVolume:          c.draw(b, "poVolume"),
		VendorPerformance: c.drawTenths(b, "vendorPerformance"),
		BudgetUtilization: c.draw(b, "budgetUtilization"),
		SOWCompliance:     c.draw(b, "sowCompliance"),
		ActiveContracts:   c.draw(b, "activeContracts"),
		Envelope:          c.envelope(),
	}
}

// WorkforceHUD returns workforce HUD metrics with a seven point trend.
func (c *Catalog) WorkforceHUD() WorkforceHUD {
	b := workforceHUDBounds
	return WorkforceHUD{
		ActiveContractors: c.draw(b, "activeContractors"),
		UtilizationRate:   c.draw(b, "utilizationRate"),
		AvgTimeToFill:     c.draw(b, "avgTimeToFill"),
		OnboardingQueue:   c.draw(b, "onboardingQueue"),
		ComplianceRate:    c.draw(b, "complianceRate"),
		TrendData:         c.series(b, "trendData"),
		Envelope:          c.envelope(),
	}
}

// LuxuryTruck returns luxury truck board metrics.
func (c *Catalog) LuxuryTruck() LuxuryTruck {
	b := luxuryTruckBounds
	return LuxuryTruck{
		OpenPOs:            c.draw(b, "openPOs"),
		VendorRating:       c.drawTenths(b, "vendorRating"),
		SpendVelocity:      c.drawTenths(b, "spendVelocity"),
		ContractCompliance: c.draw(b, "contractCompliance"),
		POAverage:          c.draw(b, "poAverage"),
		OnTimeDelivery:     c.draw(b, "onTimeDelivery"),
		InvoiceAccuracy:    c.draw(b, "invoiceAccuracy"),
		Envelope:           c.envelope(),
	}
}

// ElectricCar returns electric car board metrics.
func (c *Catalog) ElectricCar() ElectricCar {
	b := electricCarBounds
	return ElectricCar{
		EnergyEfficiency:    c.draw(b, "energyEfficiency"),
		SustainabilityScore: sampling.Choice(c.sampler, auditGrades),
		CostSavings:         c.drawTenths(b, "costSavings"),
		CarbonOffset:        c.draw(b, "carbonOffset"),
		RenewableEnergy:     c.draw(b, "renewableEnergy"),
		VendorEcoScore:      c.drawTenths(b, "vendorEcoScore"),
		Envelope:            c.envelope(),
	}
}

// FutureTruck returns future truck board metrics, including a ticker of
// three distinct feed messages.
func (c *Catalog) FutureTruck() FutureTruck {
	b := futureTruckBounds
	msgs := sampling.Sample(c.sampler, dataStreamFeed, dataStreamMessages)
	return FutureTruck{
		AIPredictionAccuracy:  c.drawTenths(b, "aiPredictionAccuracy"),
		AutonomousSourcing:    c.draw(b, "autonomousSourcing"),
		FleetUtilization:      c.series(b, "fleetUtilization"),
		SupplyChainResilience: c.draw(b, "supplyChainResilience"),
		RiskDetection:         c.draw(b, "riskDetection"),
		DataStream:            strings.Join(msgs, dataStreamSep) + dataStreamSuffix,
		Envelope:              c.envelope(),
	}
}

// Health returns the service health body.
func (c *Catalog) Health() Health {
	return Health{
		Status:              "healthy",
		Service:             c.service,
		Version:             c.version,
		DashboardsAvailable: DashboardsAvailable,
		Timestamp:           c.timestamp(),
	}
}

// DataStreamFeed returns a copy of the future truck message pool.
func DataStreamFeed() []string {
	return append([]string(nil), dataStreamFeed...)
}

// SplitDataStream breaks a ticker string back into its messages. ok is false
// when the string is not suffix-terminated.
func SplitDataStream(s string) (msgs []string, ok bool) {
	body, found := strings.CutSuffix(s, dataStreamSuffix)
	if !found {
		return nil, false
	}
	return strings.Split(body, dataStreamSep), true
}
