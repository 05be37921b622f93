package codebehind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"axamlforge/internal/normalize"
)

func TestInferType(t *testing.T) {
	cases := []struct {
		path   string
		target string
		typ    string
	}{
		{"IsBusy", "IsEnabled", "bool"},
		{"HasErrors", "IsVisible", "bool"},
		{"CanSave", "IsEnabled", "bool"},
		{"ShouldRetry", "IsChecked", "bool"},
		{"ItemCount", "Text", "int"},
		{"SelectedIndex", "SelectedIndex", "int"},
		{"GrandTotal", "Text", "int"},
		{"UnitPrice", "Text", "double"},
		{"TotalAmount", "Text", "double"},
		{"UploadProgress", "Value", "double"},
		{"Opacity", "Opacity", "double"},
		{"SliderValue", "Value", "double"},
		{"StartDate", "SelectedDate", "DateTime"},
		{"EndTime", "SelectedTime", "DateTime"},
		{"MenuItems", "ItemsSource", "ObservableCollection<string>"},
		{"TodoList", "Text", "ObservableCollection<string>"},
		{"UserName", "Text", "string"},
		{"Title", "Text", "string"},
		// Plurals are collections only when bound to an items source.
		{"Orders", "ItemsSource", "ObservableCollection<string>"},
		{"Orders", "Text", "string"},
	}

	for _, c := range cases {
		got := inferType(normalize.Binding{Path: c.path, Target: c.target})
		assert.Equal(t, c.typ, got, c.path)
	}
}

func TestCommandPaths(t *testing.T) {
	assert.True(t, isCommandPath("SubmitCommand"))
	assert.True(t, isCommandPath("SaveAllCommand"))
	assert.False(t, isCommandPath("CommandCenter"))
	assert.False(t, isCommandPath("Submit"))

	assert.Equal(t, "Submit", commandBase("SubmitCommand"))
	assert.Equal(t, "SaveAll", commandBase("SaveAllCommand"))

	// Check a path that is only the suffix keeps its name.
	assert.Equal(t, "Command", commandBase("Command"))
}

func TestIsFlatIdent(t *testing.T) {
	assert.True(t, isFlatIdent("UserName"))
	assert.True(t, isFlatIdent("_private"))
	assert.True(t, isFlatIdent("Value2"))

	assert.False(t, isFlatIdent("User.Name"))
	assert.False(t, isFlatIdent("Items[0]"))
	assert.False(t, isFlatIdent("2fast"))
	assert.False(t, isFlatIdent(""))
}
