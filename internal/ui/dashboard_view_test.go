package ui

import (
	"testing"

	"prodmast/internal/content"
	"prodmast/internal/route"

	"github.com/stretchr/testify/assert"
)

func TestDashboardView_Content(t *testing.T) {
	v := NewDashboardView(140, 60)
	out := v.Content()
	for _, want := range []string{
		content.DashboardTitle,
		content.DashboardGreeting,
		content.OutputChartTitle,
		content.EfficiencyTitle,
		content.UpgradeTitle,
		"Weekly",
		"+12.5%",
		"-0.5%",
	} {
		assert.Contains(t, out, want)
	}
	for _, m := range content.Metrics() {
		assert.Contains(t, out, m.Label)
		assert.Contains(t, out, m.Value)
	}
}

func TestDashboardView_NarrowStacksCharts(t *testing.T) {
	v := NewDashboardView(60, 30)
	out := v.Content()
	assert.Contains(t, out, content.OutputChartTitle)
	assert.Contains(t, out, content.EfficiencyTitle)
}

func TestDashboardView_FooterScrolls(t *testing.T) {
	v := NewDashboardView(120, 20)
	v.SetFooter(content.FooterCopyright)
	assert.NotContains(t, v.View(), content.FooterCopyright)
	v.vp.GotoBottom()
	assert.Contains(t, v.View(), content.FooterCopyright)
}

func TestNotFoundView(t *testing.T) {
	v := NewNotFoundView("/nowhere", 100, 30)
	assert.Equal(t, "/nowhere", v.Path())
	assert.Contains(t, v.View(), "Page not found")
	assert.Equal(t, route.PathHome, v.Selected())

	v.Update(keyMsg("down"))
	assert.NotEqual(t, route.PathHome, v.Selected())
	nav, ok := find[NavigateMsg](runCmd(sendKeys(v, "enter")))
	assert.True(t, ok)
	assert.Equal(t, v.Selected(), nav.Path)
}
