package codebehind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"axamlforge/internal/normalize"
	"axamlforge/options"
)

func TestViewModelClassic(t *testing.T) {
	res := &normalize.Result{Bindings: []normalize.Binding{
		{Path: "UserName", Target: "Text"},
	}}

	out := New(options.Default()).ViewModel(res)

	assert.Equal(t, lines(
		`// <auto-generated>`,
		`//     Code generated by axamlforge. DO NOT EDIT.`,
		`// </auto-generated>`,
		`#nullable enable`,
		``,
		`using System.ComponentModel;`,
		`using System.Runtime.CompilerServices;`,
		``,
		`namespace Generated.Views`,
		`{`,
		`    public partial class MainViewViewModel : INotifyPropertyChanged`,
		`    {`,
		`        public event PropertyChangedEventHandler? PropertyChanged;`,
		``,
		`        private string _userName = string.Empty;`,
		`        public string UserName`,
		`        {`,
		`            get => _userName;`,
		`            set`,
		`            {`,
		`                if (_userName == value) return;`,
		`                _userName = value;`,
		`                OnPropertyChanged();`,
		`            }`,
		`        }`,
		``,
		`        protected void OnPropertyChanged([CallerMemberName] string? propertyName = null)`,
		`        {`,
		`            PropertyChanged?.Invoke(this, new PropertyChangedEventArgs(propertyName));`,
		`        }`,
		`    }`,
		`}`,
	), out)
}

func TestViewModelClassicMemberMix(t *testing.T) {
	res := &normalize.Result{Bindings: []normalize.Binding{
		{Path: "UserName", Target: "Text"},
		{Path: "ItemCount", Target: "Text"},
		{Path: "IsBusy", Target: "IsEnabled"},
		{Path: "StartDate", Target: "SelectedDate"},
		{Path: "Orders", Target: "ItemsSource"},
		{Path: "SubmitCommand", Target: "Command"},
		{Path: "User.Name", Target: "Text"},
	}}

	out := New(options.Default()).ViewModel(res)

	// Check the conditional usings all activate, sorted.
	assert.Contains(t, out, lines(
		`using System;`,
		`using System.Collections.ObjectModel;`,
		`using System.ComponentModel;`,
		`using System.Runtime.CompilerServices;`,
		`using System.Windows.Input;`,
	))

	assert.Contains(t, out, "private int _itemCount;")
	assert.Contains(t, out, "public int ItemCount")
	assert.Contains(t, out, "private bool _isBusy;")
	assert.Contains(t, out, "private DateTime _startDate;")
	assert.Contains(t, out, "private ObservableCollection<string> _orders = new();")
	assert.Contains(t, out, "public ICommand? SubmitCommand { get; set; }")

	// Check nested paths surface as a comment, not a member.
	assert.Contains(t, out, "// Nested binding paths resolve against host model members: User.Name")
	assert.NotContains(t, out, "public string User.Name")

	// Check member order follows discovery order.
	assert.Less(t, strings.Index(out, "_userName"), strings.Index(out, "_itemCount"))
	assert.Less(t, strings.Index(out, "_itemCount"), strings.Index(out, "_isBusy"))
	assert.Less(t, strings.Index(out, "_orders"), strings.Index(out, "SubmitCommand"))
}

func TestViewModelToolkit(t *testing.T) {
	opts := options.Default()
	opts.MvvmToolkit = true

	res := &normalize.Result{Bindings: []normalize.Binding{
		{Path: "UserName", Target: "Text"},
		{Path: "SubmitCommand", Target: "Command"},
	}}

	out := New(opts).ViewModel(res)

	assert.Equal(t, lines(
		`// <auto-generated>`,
		`//     Code generated by axamlforge. DO NOT EDIT.`,
		`// </auto-generated>`,
		`#nullable enable`,
		``,
		`using CommunityToolkit.Mvvm.ComponentModel;`,
		`using CommunityToolkit.Mvvm.Input;`,
		``,
		`namespace Generated.Views`,
		`{`,
		`    public partial class MainViewViewModel : ObservableObject`,
		`    {`,
		`        [ObservableProperty]`,
		`        private string _userName = string.Empty;`,
		``,
		`        [RelayCommand]`,
		`        private void Submit()`,
		`        {`,
		`        }`,
		`    }`,
		`}`,
	), out)
}

func TestViewModelEmpty(t *testing.T) {
	out := New(options.Default()).ViewModel(&normalize.Result{})

	// Check an empty scene still yields a valid INPC shell.
	assert.Contains(t, out, "public partial class MainViewViewModel : INotifyPropertyChanged")
	assert.Contains(t, out, "public event PropertyChangedEventHandler? PropertyChanged;")
	assert.Contains(t, out, "protected void OnPropertyChanged")
	assert.NotContains(t, out, "ICommand")
}
