package simulation

// Lookup tables for the generators. Every table that is keyed by a free-form
// seed value carries an explicit DefaultKey entry so the fallback behavior is
// part of the contract rather than an incidental zero value.

// DefaultKey is the named fallback entry in keyed lookup tables.
const DefaultKey = "Default"

// vendorCategory pairs a service taxonomy entry with its name suffixes and
// draw weight.
type vendorCategory struct {
	Name     string
	Suffixes []string
	Weight   float64
}

var vendorCategories = []vendorCategory{
	{"Legal & Regulatory Counsel", []string{"LLP", "Law Group", "Counsel"}, 0.08},
	{"Real Estate Appraisers", []string{"Realty Advisors", "Appraisal Services"}, 0.05},
	{"Title & Escrow Services", []string{"Title Co.", "Escrow Services", "Closing Group"}, 0.05},
	{"Financial & Tax Advisors", []string{"Capital Advisors", "CPA Group", "Tax Consulting"}, 0.07},
	{"Investor Relations Platforms", []string{"Investor Services", "Capital Partners", "IR Systems"}, 0.03},
	{"Market Research & Analytics", []string{"Analytics Group", "Market Insights", "Data Advisors"}, 0.04},
	{"Architecture & Design Firms", []string{"Design Group", "Studio", "Architects"}, 0.08},
	{"General Contractors", []string{"Construction", "Builders", "Contracting"}, 0.10},
	{"Engineering Services", []string{"Engineering", "Systems Design", "Infrastructure Group"}, 0.07},
	{"Environmental Consultants", []string{"Environmental Group", "Eco Services", "EnviroTech"}, 0.03},
	{"Zoning & Permitting Consultants", []string{"Zoning Group", "Permitting Services", "Code Advisors"}, 0.03},
	{"ESG & Sustainability Consultants", []string{"Green Partners", "Sustainability Group", "ESG Advisors"}, 0.03},
	{"Property Management Firms", []string{"Realty Management", "Asset Group", "Property Services"}, 0.08},
	{"Maintenance & Janitorial Vendors", []string{"Facility Services", "CleanTech", "Maintenance Co."}, 0.06},
	{"Security & Surveillance Providers", []string{"Security Solutions", "Surveillance Group", "CRE Watch"}, 0.04},
	{"Leasing Brokers & Tenant Reps", []string{"Realty", "Leasing Group", "Tenant Advisors"}, 0.05},
	{"Software Providers", []string{"Technologies", "Software Group", "Systems"}, 0.05},
	{"Construction Managers", []string{"Construction Management", "Build Group", "Project Controls"}, 0.05},
	{"Landscaping & Outdoor Services", []string{"Landscaping", "Outdoor Services", "GreenScape"}, 0.05},
}

// subtypeCategory maps a property subtype from the seed listing to one of
// the broad categories the tenant and lease tables are keyed by.
var subtypeCategory = map[string]string{
	// Commercial
	"Other": "Commercial",

	// Industrial
	"Distribution Center":                "Industrial",
	"Flex Industrial":                    "Industrial",
	"Large-Scale Distribution Facility":  "Industrial",
	"Light Industrial":                   "Industrial",
	"Multi-Tenant Industrial":            "Industrial",
	"R&D/Flex Industrial":                "Industrial",
	"Stabilized Warehouse":               "Industrial",
	"Warehouse/Distribution":             "Industrial",

	// Mixed use
	"Mixed-Use Office": "Mixed-Use",

	// Office
	"Urban Office":                   "Office",
	"Business Park":                  "Office",
	"CBD Office":                     "Office",
	"Class A Office":                 "Office",
	"Class B Office":                 "Office",
	"Corporate Office":               "Office",
	"Downtown Office":                "Office",
	"Government/Medical Office":      "Office",
	"Historic Building / CBD Office": "Office",
	"Medical Office":                 "Office",
	"Office Campus":                  "Office",
	"Office Park":                    "Office",
	"Office Tower":                   "Office",
	"Small Office/Creative Space":    "Office",
	"Small Professional Suites":      "Office",
	"Stabilized Government Office":   "Office",
	"Suburban Office":                "Office",
	"Tech Campus":                    "Office",

	// Retail
	"Flex Space":          "Retail",
	"Street-Level Retail": "Retail",
}

var industriesByCategory = map[string][]string{
	"Office": {
		"Law Firm", "Accounting", "Architecture", "Consulting", "Corporate HQ", "Financial Services",
		"Tech Startup", "Insurance", "Nonprofit", "Real Estate Brokerage", "Marketing & PR",
	},
	"Industrial": {
		"Third-Party Logistics (3PL)", "Light Manufacturing", "Auto Parts Distribution",
		"Aerospace Supply Chain", "Food & Beverage Processing", "Packaging & Warehousing",
		"Medical Supplies", "E-commerce Fulfillment",
	},
	"Retail": {
		"Coffee Shop", "Fitness Studio", "Boutique Retail", "Salon & Spa",
		"Quick-Serve Restaurant", "Pharmacy", "Franchise Retailer", "Pop-Up Retail",
	},
	"Mixed-Use": {
		"Coworking Operator", "Design Studio", "Tech Lab", "Creative Agency",
		"Local Retail + Office", "Startup HQ", "Nonprofit Hub",
	},
	"Commercial": {
		"City Government", "Education Services", "Coworking Space", "Job Training Center",
		"Community Organization", "Remote Work Hub", "Startup Incubator",
	},
	DefaultKey: {"General Business"},
}

var moveInReasonsByCategory = map[string][]string{
	"Office": {
		"Lease expiration at prior location", "Desire for upgraded amenities",
		"Strategic relocation closer to clients", "Consolidation due to hybrid work",
		"New regional headquarters", "Better public transit access",
	},
	"Industrial": {
		"Warehouse capacity expansion", "Consolidating logistics operations",
		"Relocating closer to shipping routes", "Upgrade to high-bay facility",
		"Automation and process redesign", "Temperature-controlled storage needs",
	},
	"Retail": {
		"Expansion into new market", "Street visibility and foot traffic",
		"New franchise opening", "Proximity to target demographic",
		"Lease buyout opportunity", "Seasonal pop-up location",
	},
	"Mixed-Use": {
		"Flexible zoning and usage", "Live-work opportunity",
		"Creative space needs", "Integrated customer and back-office location",
		"Growth-stage business flexibility",
	},
	"Commercial": {
		"Community-focused relocation", "Short-term lease with flexible terms",
		"Alternative use designation", "Shared service model pilot",
		"Strategic public-private initiative",
	},
	DefaultKey: {"Expansion", "Relocation"},
}

// weightedInts is a discrete distribution over integer values.
type weightedInts struct {
	Values  []int
	Weights []float64
}

var leaseTermYearsByType = map[string]weightedInts{
	"Office":     {Values: []int{1, 3, 5, 10}, Weights: []float64{0.2, 0.3, 0.3, 0.2}},
	"Industrial": {Values: []int{3, 5, 10, 15}, Weights: []float64{0.1, 0.4, 0.3, 0.2}},
	"Retail":     {Values: []int{1, 3, 5, 10}, Weights: []float64{0.2, 0.3, 0.3, 0.2}},
	"Mixed-Use":  {Values: []int{1, 3, 5, 10}, Weights: []float64{0.25, 0.35, 0.25, 0.15}},
	"Commercial": {Values: []int{1, 3, 5, 10}, Weights: []float64{0.4, 0.3, 0.2, 0.1}},
	DefaultKey:   {Values: []int{1, 3, 5, 10}, Weights: []float64{0.25, 0.35, 0.25, 0.15}},
}

type rateRange struct {
	Low  float64
	High float64
}

var rentPerSqFtByType = map[string]rateRange{
	"Office":     {25, 45},
	"Industrial": {5, 12},
	"Retail":     {20, 60},
	"Mixed-Use":  {18, 40},
	"Commercial": {10, 30},
	DefaultKey:   {20, 40},
}

// autoRenewWeightsByType weights [true, false].
var autoRenewWeightsByType = map[string][2]float64{
	"Office":     {0.3, 0.7},
	"Retail":     {0.4, 0.6},
	"Industrial": {0.2, 0.8},
	"Mixed-Use":  {0.35, 0.65},
	"Commercial": {0.35, 0.65},
	DefaultKey:   {0.35, 0.65},
}

var depositCategoryMultiplier = map[string]float64{
	"Industrial": 1.0,
	"Office":     1.5,
	"Retail":     2.0,
	"Mixed-Use":  2.0,
	"Commercial": 1.25,
	DefaultKey:   1.5,
}

// weightedAccounts is a discrete distribution over GL account codes.
type weightedAccounts struct {
	Codes   []string
	Weights []float64
}

// vendorGLAccounts maps a vendor service category to the GL accounts its
// invoices are coded to. Categories absent from this table fall through to
// the unclassified account.
var vendorGLAccounts = map[string]weightedAccounts{
	"Legal & Regulatory Counsel":        {Codes: []string{"60220", "60230", "60325", "60415", "60520", "60530", "60615", "60715"}, Weights: []float64{0.02, 0.02, 0.02, 0.04, 0.05, 0.15, 0.5, 0.15}},
	"Real Estate Appraisers":            {Codes: []string{"60210", "60520", "60530"}, Weights: []float64{0.7, 0.15, 0.15}},
	"Title & Escrow Services":           {Codes: []string{"60265", "60620", "60520", "60530"}, Weights: []float64{0.4, 0.4, 0.1, 0.1}},
	"Financial & Tax Advisors":          {Codes: []string{"60510", "60515", "60715", "60520", "60530"}, Weights: []float64{0.25, 0.2, 0.45, 0.05, 0.05}},
	"Investor Relations Platforms":      {Codes: []string{"60115", "60720"}, Weights: []float64{0.2, 0.8}},
	"Market Research & Analytics":       {Codes: []string{"60810", "60815"}, Weights: []float64{0.4, 0.6}},
	"Architecture & Design Firms":       {Codes: []string{"60215", "60220", "60235", "60415"}, Weights: []float64{0.6, 0.2, 0.1, 0.1}},
	"General Contractors":               {Codes: []string{"50210", "60235", "60240"}, Weights: []float64{0.15, 0.8, 0.05}},
	"Engineering Services":              {Codes: []string{"60225"}, Weights: []float64{1.0}},
	"Environmental Consultants":         {Codes: []string{"60255", "60260", "60525"}, Weights: []float64{0.75, 0.125, 0.125}},
	"Zoning & Permitting Consultants":   {Codes: []string{"60230", "60250", "60265"}, Weights: []float64{0.25, 0.375, 0.375}},
	"ESG & Sustainability Consultants":  {Codes: []string{"60410", "60415", "60420"}, Weights: []float64{0.5, 0.25, 0.25}},
	"Property Management Firms":         {Codes: []string{"50130", "50135"}, Weights: []float64{0.5, 0.5}},
	"Maintenance & Janitorial Vendors":  {Codes: []string{"50120", "50210", "50235"}, Weights: []float64{0.3, 0.3, 0.4}},
	"Security & Surveillance Providers": {Codes: []string{"50220", "50240"}, Weights: []float64{0.4, 0.6}},
	"Leasing Brokers & Tenant Reps":     {Codes: []string{"50110", "50125"}, Weights: []float64{0.5, 0.5}},
	"Software Providers":                {Codes: []string{"60120", "60315", "60320"}, Weights: []float64{0.4, 0.3, 0.3}},
	"Construction Managers":             {Codes: []string{"60240"}, Weights: []float64{1.0}},
	"Landscaping & Outdoor Services":    {Codes: []string{"50120", "50210"}, Weights: []float64{0.8, 0.2}},
}

// categoryFor resolves a seed subtype to its broad category, falling back
// to the named default. Subtypes that already name a category pass through.
func categoryFor(subtype string) string {
	if cat, ok := subtypeCategory[subtype]; ok {
		return cat
	}
	if _, ok := industriesByCategory[subtype]; ok {
		return subtype
	}
	return DefaultKey
}
