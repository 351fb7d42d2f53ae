package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"github.com/axitpadasala108/roven-global/internal/ui/views"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// showHelpPager returns a command that shows help using the ov pager.
func (m *Model) showHelpPager() tea.Cmd {
	content := views.RenderHelpContentPlain()
	return func() tea.Msg {
		return helpPagerMsg{err: m.runPager(content)}
	}
}

// showDetailPager pages the full text of the current detail screen.
func (m *Model) showDetailPager() tea.Cmd {
	content := views.RenderDetailPlain(m.router.Current())
	return func() tea.Msg {
		return helpPagerMsg{err: m.runPager(content)}
	}
}

// runPager releases the terminal, pages the content with ov, and
// restores the terminal afterwards.
func (m *Model) runPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay so ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write pager content to the screen on exit
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
