package screens

import "github.com/charmbracelet/bubbles/key"

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyOpen   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keySearch = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keySubmit = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search/open"))
	keyFocus  = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus"))
	keyPrev   = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page"))
	keyNext   = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page"))
	keySaver  = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "data saver"))
	keyRetry  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))
	keyBack   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyQuit   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	keyForce  = key.NewBinding(key.WithKeys("ctrl+c"))
)

// bindings adapts a fixed list to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding { return b }

func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
