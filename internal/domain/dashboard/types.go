package dashboard

// Envelope is attached to every metric snapshot.
type Envelope struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// StatusSuccess marks a generated snapshot.
const StatusSuccess = "success"

// ComplianceMetrics feeds the Compliance & Risk Monitor.
type ComplianceMetrics struct {
	OpenExceptions    int `json:"openExceptions"`
	SOWViolations     int `json:"sowViolations"`
	ComplianceScore   int `json:"complianceScore"`
	CertificationGaps int `json:"certificationGaps"`
	AuditStatus       int `json:"auditStatus"`
	Envelope
}

// ProcurementPerformance feeds the Procurement Performance dashboard.
type ProcurementPerformance struct {
	POVolume    int `json:"poVolume"`
	SpendRate   int `json:"spendRate"`
	VendorCount int `json:"vendorCount"`
	Envelope
}

// ProcurementVelocity feeds the Procurement Velocity Monitor.
type ProcurementVelocity struct {
	PurchaseOrderVelocity PurchaseOrderVelocity `json:"purchaseOrderVelocity"`
	VendorComplianceRate  VendorComplianceRate  `json:"vendorComplianceRate"`
	BudgetBurnRate        BudgetBurnRate        `json:"budgetBurnRate"`
	Envelope
}

type PurchaseOrderVelocity struct {
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Trend   string `json:"trend"`
	Status  string `json:"status"`
}

type VendorComplianceRate struct {
	Compliance      int    `json:"compliance"`
	ComplianceScore int    `json:"complianceScore"`
	Violations      int    `json:"violations"`
	AuditGrade      string `json:"auditGrade"`
}

type BudgetBurnRate struct {
	DailySpend      int    `json:"dailySpend"`
	MonthlyForecast int    `json:"monthlyForecast"`
	Variance        int    `json:"variance"`
	Status          string `json:"status"`
}

// WorkforceAnalytics feeds the Workforce Analytics dashboard.
type WorkforceAnalytics struct {
	ContractorUtilization ContractorUtilization `json:"contractorUtilization"`
	TimeToFill            TimeToFill            `json:"timeToFill"`
	OnboardingPipeline    OnboardingPipeline    `json:"onboardingPipeline"`
	ActivePlacements      ActivePlacements      `json:"activePlacements"`
	Envelope
}

type ContractorUtilization struct {
	Percentage float64 `json:"percentage"`
	Capacity   int     `json:"capacity"`
}

type TimeToFill struct {
	Days    int    `json:"days"`
	Average int    `json:"average"`
	Target  int    `json:"target"`
	Trend   string `json:"trend"`
}

type OnboardingPipeline struct {
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"inProgress"`
	Status     string `json:"status"`
}

type ActivePlacements struct {
	Total           int    `json:"total"`
	ThirtyDayChange int    `json:"thirtyDayChange"`
	Trend           string `json:"trend"`
}

// ExecutiveSummary feeds the Executive Summary dashboard.
type ExecutiveSummary struct {
	TotalProcurementSpend TotalProcurementSpend `json:"totalProcurementSpend"`
	ActiveVendors         ActiveVendors         `json:"activeVendors"`
	ComplianceRate        ComplianceRate        `json:"complianceRate"`
	WorkforceUtilization  WorkforceUtilization  `json:"workforceUtilization"`
	BudgetHealth          BudgetHealth          `json:"budgetHealth"`
	Envelope
}

type TotalProcurementSpend struct {
	Annual   int    `json:"annual"`
	Currency string `json:"currency"`
}

type ActiveVendors struct {
	Count     int `json:"count"`
	YTDChange int `json:"ytdChange"`
}

type ComplianceRate struct {
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

type WorkforceUtilization struct {
	Percentage float64 `json:"percentage"`
}

type BudgetHealth struct {
	Status   string `json:"status"`
	Variance int    `json:"variance"`
}

// VendorScorecard feeds the vendor scorecard board.
type VendorScorecard struct {
	POVolume          int     `json:"poVolume"`
	VendorPerformance float64 `json:"vendorPerformance"`
	BudgetUtilization int     `json:"budgetUtilization"`
	SOWCompliance     int     `json:"sowCompliance"`
	ActiveContracts   int     `json:"activeContracts"`
	Envelope
}

// WorkforceHUD feeds the workforce heads-up display.
type WorkforceHUD struct {
	ActiveContractors int   `json:"activeContractors"`
	UtilizationRate   int   `json:"utilizationRate"`
	AvgTimeToFill     int   `json:"avgTimeToFill"`
	OnboardingQueue   int   `json:"onboardingQueue"`
	ComplianceRate    int   `json:"complianceRate"`
	TrendData         []int `json:"trendData"`
	Envelope
}

// LuxuryTruck feeds the luxury truck themed board.
type LuxuryTruck struct {
	OpenPOs            int     `json:"openPOs"`
	VendorRating       float64 `json:"vendorRating"`
	SpendVelocity      float64 `json:"spendVelocity"`
	ContractCompliance int     `json:"contractCompliance"`
	POAverage          int     `json:"poAverage"`
	OnTimeDelivery     int     `json:"onTimeDelivery"`
	InvoiceAccuracy    int     `json:"invoiceAccuracy"`
	Envelope
}

// ElectricCar feeds the electric car themed board.
type ElectricCar struct {
	EnergyEfficiency    int     `json:"energyEfficiency"`
	SustainabilityScore string  `json:"sustainabilityScore"`
	CostSavings         float64 `json:"costSavings"`
	CarbonOffset        int     `json:"carbonOffset"`
	RenewableEnergy     int     `json:"renewableEnergy"`
	VendorEcoScore      float64 `json:"vendorEcoScore"`
	Envelope
}

// FutureTruck feeds the future truck themed board.
type FutureTruck struct {
	AIPredictionAccuracy  float64 `json:"aiPredictionAccuracy"`
	AutonomousSourcing    int     `json:"autonomousSourcing"`
	FleetUtilization      []int   `json:"fleetUtilization"`
	SupplyChainResilience int     `json:"supplyChainResilience"`
	RiskDetection         int     `json:"riskDetection"`
	DataStream            string  `json:"dataStream"`
	Envelope
}

// Health is the /api/health body. It carries its own status instead of an Envelope.
type Health struct {
	Status              string `json:"status"`
	Service             string `json:"service"`
	Version             string `json:"version"`
	DashboardsAvailable int    `json:"dashboards_available"`
	Timestamp           string `json:"timestamp"`
}
