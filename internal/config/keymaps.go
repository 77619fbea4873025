package config

// KeyMappings defines all configurable key bindings for the board view
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	RenameCard string `yaml:"rename_card"`
	DeleteCard string `yaml:"delete_card"`
	PickUpCard string `yaml:"pick_up_card"` // starts a drag, drops it when pressed again
	DropCard   string `yaml:"drop_card"`
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Boards
	CreateBoard string `yaml:"create_board"`
	RenameBoard string `yaml:"rename_board"`
	DeleteBoard string `yaml:"delete_board"`
	NextBoard   string `yaml:"next_board"`
	PrevBoard   string `yaml:"prev_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		RenameCard: "e",
		DeleteCard: "d",
		PickUpCard: "space",
		DropCard:   "enter",
		CancelDrag: "esc",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		// Boards
		CreateBoard: "B",
		RenameBoard: "E",
		DeleteBoard: "D",
		NextBoard:   "tab",
		PrevBoard:   "shift+tab",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.AddCard, d.AddCard)
	fill(&k.RenameCard, d.RenameCard)
	fill(&k.DeleteCard, d.DeleteCard)
	fill(&k.PickUpCard, d.PickUpCard)
	fill(&k.DropCard, d.DropCard)
	fill(&k.CancelDrag, d.CancelDrag)
	fill(&k.CreateColumn, d.CreateColumn)
	fill(&k.RenameColumn, d.RenameColumn)
	fill(&k.DeleteColumn, d.DeleteColumn)
	fill(&k.CreateBoard, d.CreateBoard)
	fill(&k.RenameBoard, d.RenameBoard)
	fill(&k.DeleteBoard, d.DeleteBoard)
	fill(&k.NextBoard, d.NextBoard)
	fill(&k.PrevBoard, d.PrevBoard)
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevCard, d.PrevCard)
	fill(&k.NextCard, d.NextCard)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
