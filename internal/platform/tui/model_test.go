package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/face"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testOptions(values ...int) Options {
	opts := DefaultOptions()
	opts.Source = dice.Scripted(values...)
	opts.Clock = func() time.Time { return t0 }
	return opts
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialScreenShowsValueOne(t *testing.T) {
	m := NewModel(testOptions(20))

	assert.Equal(t, 1, m.Value())
	assert.Equal(t, face.IDFor(1), m.Display().ImageID)

	view := m.View()
	assert.Contains(t, view, "Critical failure!")
	assert.Contains(t, view, "rolled 1 · d20_1")
	assert.Contains(t, view, "[ Roll ]")
}

func TestRollKeys(t *testing.T) {
	keys := map[string]tea.KeyMsg{
		"space": {Type: tea.KeySpace, Runes: []rune{' '}},
		"enter": {Type: tea.KeyEnter},
		"r":     runes("r"),
	}

	for name, msg := range keys {
		t.Run(name, func(t *testing.T) {
			m := NewModel(testOptions(20))
			m, _ = update(t, m, msg)

			assert.Equal(t, 20, m.Value())
			view := m.View()
			assert.Contains(t, view, "Critical success!")
			assert.Contains(t, view, "d20_20")
			assert.NotContains(t, view, "Critical failure!")
		})
	}
}

func TestNormalRollHasNoMessage(t *testing.T) {
	m := NewModel(testOptions(7))
	m, _ = update(t, m, runes("r"))

	view := m.View()
	assert.Contains(t, view, "rolled 7 · d20_7")
	assert.NotContains(t, view, "Critical")
}

func TestMouseClickOnButton(t *testing.T) {
	m := NewModel(testOptions(13))
	button := m.layout().button

	// Outside the button nothing happens
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.Value())

	// Right click on the button is ignored too
	m, _ = update(t, m, tea.MouseMsg{X: button.X, Y: button.Y, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.Value())

	m, _ = update(t, m, tea.MouseMsg{X: button.X + 1, Y: button.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 13, m.Value())
}

func TestButtonIsDrawnWhereClicksLand(t *testing.T) {
	m := NewModel(testOptions(1))
	m.View()

	button := m.layout().button
	row := []rune(m.screen.Row(button.Y))
	assert.Equal(t, "[ Roll ]", string(row[button.X:button.Right()]))
}

func TestFrameLoop(t *testing.T) {
	m := NewModel(testOptions(1))

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Animating())
	gen := m.anim.Generation()

	m, cmd = update(t, m, FrameMsg{Gen: gen, Time: t0.Add(4 * time.Second)})
	assert.NotNil(t, cmd, "next frame is scheduled")
	assert.InDelta(t, 180, m.Angle(), 1e-9)

	m, cmd = update(t, m, FrameMsg{Gen: gen, Time: t0.Add(8 * time.Second)})
	assert.NotNil(t, cmd)
	assert.InDelta(t, 0, m.Angle(), 1e-9)

	m, cmd = update(t, m, FrameMsg{Gen: gen - 1, Time: t0.Add(2 * time.Second)})
	assert.Nil(t, cmd, "stale frame is dropped")
	assert.InDelta(t, 0, m.Angle(), 1e-9)
}

func TestBlurStopsAndFocusRestarts(t *testing.T) {
	m := NewModel(testOptions(1))
	m.Init()
	first := m.anim.Generation()

	m, _ = update(t, m, FrameMsg{Gen: first, Time: t0.Add(2 * time.Second)})
	assert.InDelta(t, 90, m.Angle(), 1e-9)

	m, cmd := update(t, m, tea.BlurMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.Animating())

	m, cmd = update(t, m, FrameMsg{Gen: first, Time: t0.Add(3 * time.Second)})
	assert.Nil(t, cmd, "no frames after blur")
	assert.InDelta(t, 90, m.Angle(), 1e-9)

	m, cmd = update(t, m, tea.FocusMsg{})
	require.NotNil(t, cmd)
	assert.True(t, m.Animating())
	assert.Zero(t, m.Angle(), "restart begins at angle 0")

	m, cmd = update(t, m, FrameMsg{Gen: first, Time: t0.Add(time.Second)})
	assert.Nil(t, cmd, "frame from the old cycle is dropped")

	m, cmd = update(t, m, FrameMsg{Gen: m.anim.Generation(), Time: t0.Add(time.Second)})
	assert.NotNil(t, cmd)
	assert.InDelta(t, 45, m.Angle(), 1e-9)

	// A second focus while running does not start another loop
	_, cmd = update(t, m, tea.FocusMsg{})
	assert.Nil(t, cmd)
}

func TestQuitStopsAnimation(t *testing.T) {
	m := NewModel(testOptions(1))
	m.Init()
	gen := m.anim.Generation()

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Animating())
	assert.Empty(t, m.View())

	_, cmd = update(t, m, FrameMsg{Gen: gen, Time: t0.Add(time.Second)})
	assert.Nil(t, cmd, "no dangling frames after quit")

	_, cmd = update(t, m, tea.FocusMsg{})
	assert.Nil(t, cmd, "focus after quit does not restart")
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(testOptions(1))
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "toggle help")

	m, _ = update(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestTooSmallTerminal(t *testing.T) {
	m := NewModel(testOptions(1))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	view := m.View()
	assert.Contains(t, view, "Terminal too small")
	assert.NotContains(t, view, "[ Roll ]")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "[ Roll ]")
}

func TestClickIgnoredWhileTooSmall(t *testing.T) {
	m := NewModel(testOptions(13))
	button := m.layout().button

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	m, _ = update(t, m, tea.MouseMsg{X: button.X + 1, Y: button.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.Value())
	assert.Contains(t, m.View(), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	button = m.layout().button
	m, _ = update(t, m, tea.MouseMsg{X: button.X + 1, Y: button.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 13, m.Value())
}

func TestCompactLayout(t *testing.T) {
	m := NewModel(testOptions(1))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 14})

	l := m.layout()
	assert.True(t, l.compact)

	view := m.View()
	assert.Contains(t, view, "Critical failure!")
	assert.Contains(t, view, "rolled 1 · d20_1")
	assert.Contains(t, view, "[ Roll ]")
	assert.NotContains(t, view, "███", "art is hidden in compact mode")
}

func TestFullLayoutFitsDefaultTerminal(t *testing.T) {
	m := NewModel(testOptions(1))
	l := m.layout()

	assert.False(t, l.compact)
	assert.Less(t, l.button.Y, l.height)
	assert.Equal(t, l.box.Bottom(), l.messageY)
}

func TestCustomStringsAndArt(t *testing.T) {
	opts := testOptions(20)
	opts.Strings = face.Strings{CriticalFailure: "Ouch", CriticalSuccess: "Nat 20", Roll: "Throw"}
	opts.Images = face.DefaultImages().WithArt(20, []string{"TWENTY"})
	m := NewModel(opts)

	view := m.View()
	assert.Contains(t, view, "Ouch")
	assert.Contains(t, view, "[ Throw ]")

	m, _ = update(t, m, runes("r"))
	view = m.View()
	assert.Contains(t, view, "Nat 20")
	assert.Contains(t, view, "TWENTY")
}

func TestRollsAreRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec := storage.NewRecorder(store, nil)
	opts := testOptions(4, 20)
	opts.Recorder = rec
	m := NewModel(opts)

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, runes("q"))

	// Rolls after quit are not recorded
	m.state.Roll()

	rolls, err := store.SessionRolls(rec.Session(), 10)
	require.NoError(t, err)
	require.Len(t, rolls, 2)
	assert.Equal(t, 20, rolls[0].Value)
	assert.Equal(t, 4, rolls[1].Value)
}
