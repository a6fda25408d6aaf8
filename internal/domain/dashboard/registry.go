package dashboard

import (
	"maps"
)

// HealthRoute is served outside the registry because its body has no Envelope.
const HealthRoute = "/api/health"

// Entry binds one dashboard domain to its API route and generator.
type Entry struct {
	// Key names the domain in logs and metrics, e.g. "procurement-velocity".
	Key string
	// Route is the GET path serving the snapshot.
	Route string
	// Bounds and Choices describe the drawn fields by dotted JSON path.
	Bounds  Bounds
	Choices Choices
	// Generate returns a fresh snapshot.
	Generate func() any
}

// Registry lists every metric domain in route order. Bounds and Choices
// are copies; callers may modify them.
func (c *Catalog) Registry() []Entry {
	return []Entry{
		entry("compliance", "/api/compliance/metrics", complianceBounds, nil, func() any { return c.Compliance() }),
		entry("procurement-performance", "/api/procurement/performance", procurementPerformanceBounds, nil, func() any { return c.ProcurementPerformance() }),
		entry("procurement-velocity", "/api/procurement/velocity", procurementVelocityBounds, procurementVelocityChoices, func() any { return c.ProcurementVelocity() }),
		entry("workforce-analytics", "/api/workforce/analytics", workforceAnalyticsBounds, nil, func() any { return c.WorkforceAnalytics() }),
		entry("executive-summary", "/api/executive/summary", executiveSummaryBounds, executiveSummaryChoices, func() any { return c.ExecutiveSummary() }),
		entry("vendor-scorecard", "/api/vendor-scorecard/metrics", vendorScorecardBounds, nil, func() any { return c.VendorScorecard() }),
		entry("workforce-hud", "/api/workforce-hud/metrics", workforceHUDBounds, nil, func() any { return c.WorkforceHUD() }),
		entry("luxury-truck", "/api/luxury-truck/metrics", luxuryTruckBounds, nil, func() any { return c.LuxuryTruck() }),
		entry("electric-car", "/api/electric-car/metrics", electricCarBounds, electricCarChoices, func() any { return c.ElectricCar() }),
		entry("future-truck", "/api/future-truck/metrics", futureTruckBounds, nil, func() any { return c.FutureTruck() }),
	}
}

func entry(key, route string, b Bounds, ch Choices, gen func() any) Entry {
	e := Entry{Key: key, Route: route, Bounds: maps.Clone(b), Generate: gen}
	if ch != nil {
		e.Choices = maps.Clone(ch)
	}
	return e
}
