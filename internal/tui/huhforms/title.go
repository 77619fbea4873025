package huhforms

import "charm.land/huh/v2"

// MaxTitleLength bounds prompt input to keep cards readable
const MaxTitleLength = 100

// formWidth fits a form inside the 50 column dialog box and its padding
const formWidth = 44

// TitleForm creates a single-field form for naming a board, column or card.
// The prompt is drawn by the surrounding dialog, so the field has no title.
func TitleForm(title *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Placeholder("title").
			CharLimit(MaxTitleLength).
			Value(title),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(KeyMap()).WithShowHelp(false).WithWidth(formWidth)
}

// ConfirmForm creates the yes/no buttons for a destructive action
func ConfirmForm(confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewConfirm().
			Key("confirm").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(KeyMap()).WithShowHelp(false).WithWidth(formWidth)
}
