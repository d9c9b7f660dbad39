// Package content is the fixed copy and mock data the shell renders: the
// navigation, the services and pricing catalogs, the dashboard metrics and
// the weekly chart series.
//
// Records carry only identity and text. Icons are IconKey values that the
// ui package maps to a glyph and a color, so this package has no rendering
// dependency. Every accessor returns a fresh copy; callers may not mutate the
// catalog.
package content

import "slices"

// Brand names the product.
const Brand = "ProdMast"

// IconKey names an icon without choosing how it is drawn.
type IconKey string

const (
	IconSettings  IconKey = "settings"
	IconCPU       IconKey = "cpu"
	IconShield    IconKey = "shield-check"
	IconBarChart  IconKey = "bar-chart"
	IconGlobe     IconKey = "globe"
	IconZap       IconKey = "zap"
	IconBox       IconKey = "box"
	IconActivity  IconKey = "activity"
	IconUsers     IconKey = "users"
	IconAlert     IconKey = "alert-circle"
	IconTrending  IconKey = "trending-up"
	IconHexagon   IconKey = "hexagon"
	IconCheck     IconKey = "check"
	IconArrow     IconKey = "arrow-right"
	IconChevron   IconKey = "chevron-right"
	IconDashboard IconKey = "layout-dashboard"
	IconLogout    IconKey = "log-out"
)

// NavItem is a navbar link.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Service is a card in the services grid.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        IconKey `json:"icon"`
}

// PricingPlan is a pricing tier. Exactly one plan is Popular.
type PricingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}

// Monthly reports whether the price is a per-month amount; "Custom" is not.
func (p PricingPlan) Monthly() bool {
	return p.Price != "Custom"
}

// Metric is a dashboard KPI card. Trend is a percentage; positive is good.
type Metric struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Unit  string  `json:"unit"`
	Icon  IconKey `json:"icon"`
	Trend float64 `json:"trend"`
}

// ChartPoint is one day of the weekly series. Value is production output,
// Value2 the target.
type ChartPoint struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Value2 float64 `json:"value2"`
}

// FooterColumn is a titled list of footer links.
type FooterColumn struct {
	Title string    `json:"title"`
	Links []NavItem `json:"links"`
}

var navItems = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Services", Path: "/services"},
	{Label: "Pricing", Path: "/pricing"},
	{Label: "Contact", Path: "/contact"},
}

var services = []Service{
	{ID: "1", Title: "Smart Assembly", Description: "Automated assembly line management with real-time error detection.", Icon: IconSettings},
	{ID: "2", Title: "IoT Integration", Description: "Seamlessly connect all your machinery for unified data streams.", Icon: IconCPU},
	{ID: "3", Title: "Quality Control", Description: "AI-powered visual inspection to ensure 99.9% defect-free output.", Icon: IconShield},
	{ID: "4", Title: "Predictive Analytics", Description: "Forecast maintenance needs before breakdowns occur.", Icon: IconBarChart},
	{ID: "5", Title: "Global Logistics", Description: "Real-time supply chain tracking across continents.", Icon: IconGlobe},
	{ID: "6", Title: "Energy Optimization", Description: "Reduce carbon footprint with smart energy consumption algorithms.", Icon: IconZap},
}

var pricing = []PricingPlan{
	{Name: "Starter", Price: "$499", Features: []string{"Up to 5 Production Lines", "Basic Analytics", "Email Support", "1 Year Data Retention"}},
	{Name: "Professional", Price: "$1,299", Features: []string{"Unlimited Production Lines", "AI Predictive Models", "24/7 Priority Support", "5 Year Data Retention", "Custom Integrations"}, Popular: true},
	{Name: "Enterprise", Price: "Custom", Features: []string{"Dedicated Account Manager", "On-Premise Deployment", "SLA Guarantees", "Unlimited History", "Full API Access"}},
}

var metrics = []Metric{
	{Label: "Total Production", Value: "12,450", Unit: "units", Icon: IconBox, Trend: 12.5},
	{Label: "Efficiency Rate", Value: "94.2", Unit: "%", Icon: IconActivity, Trend: 2.1},
	{Label: "Active Workers", Value: "142", Unit: "staff", Icon: IconUsers, Trend: -0.5},
	{Label: "Downtime", Value: "0.4", Unit: "hrs", Icon: IconAlert, Trend: -15.3},
}

var weekly = []ChartPoint{
	{Name: "Mon", Value: 4000, Value2: 2400},
	{Name: "Tue", Value: 3000, Value2: 1398},
	{Name: "Wed", Value: 2000, Value2: 9800},
	{Name: "Thu", Value: 2780, Value2: 3908},
	{Name: "Fri", Value: 1890, Value2: 4800},
	{Name: "Sat", Value: 2390, Value2: 3800},
	{Name: "Sun", Value: 3490, Value2: 4300},
}

var controlFeatures = []string{
	"Live 3D Digital Twin visualization",
	"Instant alert notifications on mobile",
	"Historical data replay & analysis",
	"Drag-and-drop workflow builder",
}

var footerColumns = []FooterColumn{
	{Title: "Platform", Links: []NavItem{
		{Label: "Features", Path: "/services"},
		{Label: "Pricing", Path: "/pricing"},
		{Label: "Integration", Path: "/dashboard"},
		{Label: "Enterprise", Path: "/about"},
	}},
	{Title: "Resources", Links: []NavItem{
		{Label: "Documentation"}, {Label: "API Reference"}, {Label: "Community"}, {Label: "Blog"},
	}},
	{Title: "Legal", Links: []NavItem{
		{Label: "Privacy Policy"}, {Label: "Terms of Service"}, {Label: "Security"},
	}},
}

// NavItems returns the navbar links in display order.
func NavItems() []NavItem { return slices.Clone(navItems) }

// Services returns the services grid in display order.
func Services() []Service { return slices.Clone(services) }

// Pricing returns the pricing tiers in display order.
func Pricing() []PricingPlan {
	out := make([]PricingPlan, len(pricing))
	for i, p := range pricing {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}

// Metrics returns the dashboard KPI cards in display order.
func Metrics() []Metric { return slices.Clone(metrics) }

// WeeklySeries returns the seven-day chart series, Mon through Sun.
func WeeklySeries() []ChartPoint { return slices.Clone(weekly) }

// ControlFeatures returns the "Real-time Control" bullet list.
func ControlFeatures() []string { return slices.Clone(controlFeatures) }

// FooterColumns returns the footer link columns.
func FooterColumns() []FooterColumn {
	out := make([]FooterColumn, len(footerColumns))
	for i, c := range footerColumns {
		c.Links = slices.Clone(c.Links)
		out[i] = c
	}
	return out
}
