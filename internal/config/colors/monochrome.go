package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#000000",

		ColumnBorder:   "#808080",
		CardBorder:     "#606060",
		SelectedBorder: "#FFFFFF",
		DraggingBorder: "#C0C0C0",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",
		Error:  "#FFFFFF",
	}
}
