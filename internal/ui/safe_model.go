package ui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// RecoveredToast is shown after a panic sends the user home.
const RecoveredToast = "Unexpected error (see logs)"

// safeModel recovers panics from the wrapped model, logs them with a stack
// trace and returns the user to the landing page.
type safeModel struct {
	app *appModelAdapter
	log *zap.Logger
}

var _ tea.Model = (*safeModel)(nil)

func newSafeModel(app *appModelAdapter, log *zap.Logger) *safeModel {
	if log == nil {
		log = zap.NewNop()
	}
	return &safeModel{app: app, log: log}
}

func (s *safeModel) Init() tea.Cmd {
	return s.app.Init()
}

func (s *safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered",
				zap.String("where", "ui.update"),
				zap.String("panic", fmt.Sprint(r)),
				zap.ByteString("stack", debug.Stack()),
			)
			tm, cmd = s, s.app.recoverHome(RecoveredToast)
		}
	}()
	_, cmd = s.app.Update(msg)
	return s, cmd
}

func (s *safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered",
				zap.String("where", "ui.view"),
				zap.String("panic", fmt.Sprint(r)),
				zap.ByteString("stack", debug.Stack()),
			)
			out = RecoveredToast
		}
	}()
	return s.app.View()
}
