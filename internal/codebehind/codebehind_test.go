package codebehind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"axamlforge/internal/normalize"
	"axamlforge/options"
)

func lines(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

func TestCodeBehind(t *testing.T) {
	res := &normalize.Result{Handlers: []normalize.Handler{
		{Name: "SubmitButton_Click", Args: "RoutedEventArgs"},
		{Name: "Email_TextChanged", Args: "TextChangedEventArgs"},
	}}

	out := New(options.Default()).CodeBehind(res)

	assert.Equal(t, lines(
		`// <auto-generated>`,
		`//     Code generated by axamlforge. DO NOT EDIT.`,
		`// </auto-generated>`,
		`#nullable enable`,
		``,
		`using Avalonia.Controls;`,
		`using Avalonia.Interactivity;`,
		`using Avalonia.Markup.Xaml;`,
		``,
		`namespace Generated.Views`,
		`{`,
		`    public partial class MainView : UserControl`,
		`    {`,
		`        public MainView()`,
		`        {`,
		`            InitializeComponent();`,
		`            DataContext = new MainViewViewModel();`,
		`        }`,
		``,
		`        private void InitializeComponent()`,
		`        {`,
		`            AvaloniaXamlLoader.Load(this);`,
		`        }`,
		``,
		`        private void SubmitButton_Click(object? sender, RoutedEventArgs e)`,
		`        {`,
		`        }`,
		``,
		`        private void Email_TextChanged(object? sender, TextChangedEventArgs e)`,
		`        {`,
		`        }`,
		`    }`,
		`}`,
	), out)
}

func TestCodeBehindWithoutViewModel(t *testing.T) {
	opts := options.Default()
	opts.IncludeViewModel = false

	out := New(opts).CodeBehind(&normalize.Result{})

	assert.NotContains(t, out, "DataContext")
	assert.Contains(t, out, "InitializeComponent();")
}

func TestCodeBehindWindowRoot(t *testing.T) {
	opts := options.WithPreset(options.PresetWindow)

	out := New(opts).CodeBehind(&normalize.Result{})

	assert.Contains(t, out, "public partial class MainWindow : Window")
	assert.Contains(t, out, "public MainWindow()")
	assert.Contains(t, out, "DataContext = new MainWindowViewModel();")
}

func TestCodeBehindUsingsFollowHandlerArgs(t *testing.T) {
	res := &normalize.Result{Handlers: []normalize.Handler{
		{Name: "Volume_ValueChanged", Args: "RangeBaseValueChangedEventArgs"},
		{Name: "Card_Tapped", Args: "TappedEventArgs"},
	}}

	out := New(options.Default()).CodeBehind(res)

	// Check namespaces arrive sorted and deduplicated.
	assert.Contains(t, out, lines(
		`using Avalonia.Controls;`,
		`using Avalonia.Controls.Primitives;`,
		`using Avalonia.Input;`,
		`using Avalonia.Markup.Xaml;`,
	))
	assert.NotContains(t, out, "Avalonia.Interactivity")
}

func TestCodeBehindDeterministic(t *testing.T) {
	res := &normalize.Result{Handlers: []normalize.Handler{
		{Name: "A_Click", Args: "RoutedEventArgs"},
		{Name: "B_KeyDown", Args: "KeyEventArgs"},
	}}

	g := New(options.Default())
	first := g.CodeBehind(res)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.CodeBehind(res))
	}
}
