package content

// Copy blocks for the marketing pages. Kept beside the data so the views
// stay free of literals.
const (
	SplashStatus   = "Systems Online"
	SplashTitle    = "PRODMAST"
	SplashLede     = "The next generation of manufacturing intelligence."
	SplashTagline  = "Immersive. Real-time. Secure."
	SplashEnterCTA = "Enter Platform"

	HeroBadge    = "New: AI 2.0 Engine Released"
	HeroTitle    = "Efficient and Integrated"
	HeroSubtitle = "Manufacturing Services"
	HeroLede     = "Elevate your production with the world's most advanced SaaS platform. Real-time insights, AI-driven optimization, and seamless control, all in one place."

	ServicesTitle    = "Intelligent Manufacturing"
	ServicesSubtitle = "Our suite of tools covers every aspect of the modern production floor, from raw material to final delivery."

	ControlTitle = "Real-time Control"
	ControlLede  = "Stop guessing. Start knowing. ProdMast gives you granular visibility into every machine, worker, and process in your factory."

	PricingTitle    = "Transparent Pricing"
	PricingSubtitle = "Choose the plan that fits your factory scale."

	CTATitle = "Ready to optimize your production?"
	CTALede  = "Join 500+ manufacturing leaders using ProdMast today."

	FooterBlurb     = "Empowering modern manufacturing with AI-driven insights, real-time tracking, and seamless production management."
	FooterCopyright = "© 2025 ProdMast Inc. All rights reserved."

	DashboardTitle    = "Dashboard"
	DashboardGreeting = "Welcome back, Production Manager."
	DashboardUpdated  = "Last updated: Just now"
	OutputChartTitle  = "Production Output vs Target"
	EfficiencyTitle   = "Efficiency Analysis"
	UpgradeTitle      = "Upgrade to Pro"
	UpgradeBody       = "Unlock advanced AI predictive maintenance models."
	UpgradeCTA        = "View Plans"
)

// Status panel figures shown beside the "Real-time Control" copy.
const (
	SystemStatus      = "Optimal"
	SystemLoadPercent = 92
	UptimeFigure      = "99%"
	MonitoringFigure  = "24/7"
)
