// Package ui is the Bubble Tea front end of ProdMast.
//
// The App (AppModel) owns the session and location history. On every
// navigation, history move or session change it resolves the location with
// internal/route and mounts exactly one screen:
//   - LandingView: the scrolling marketing page, hosting SplashView first
//   - AuthView: the simulated login/signup form
//   - DashboardView: mocked metrics and charts
//   - NotFoundView: unknown paths
//
// Views implement View (Init/Update/View). Views that own scheduled tasks
// implement Teardowner and are torn down when unmounted. Global keys go
// through KeybindRegistry/KeyHandler with SPC as leader; overlays sit on an
// OverlayStack and take input first.
package ui
