package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"axamlforge/internal/codebehind"
	"axamlforge/options"
)

func lines(ss ...string) string {
	return strings.Join(ss, "\n") + "\n"
}

func TestProjectManifest(t *testing.T) {
	got := projectManifest(options.WithPreset(options.PresetProject))

	assert.Equal(t, lines(
		`<Project Sdk="Microsoft.NET.Sdk">`,
		`    <PropertyGroup>`,
		`        <OutputType>WinExe</OutputType>`,
		`        <TargetFramework>net8.0</TargetFramework>`,
		`        <Nullable>enable</Nullable>`,
		`        <RootNamespace>GeneratedApp</RootNamespace>`,
		`    </PropertyGroup>`,
		``,
		`    <ItemGroup>`,
		`        <PackageReference Include="Avalonia" Version="11.0.10" />`,
		`        <PackageReference Include="Avalonia.Desktop" Version="11.0.10" />`,
		`        <PackageReference Include="Avalonia.Themes.Fluent" Version="11.0.10" />`,
		`    </ItemGroup>`,
		`</Project>`,
	), got)
}

func TestAppMarkup(t *testing.T) {
	got := appMarkup(options.WithPreset(options.PresetProject))

	assert.Equal(t, lines(
		`<!-- Code generated by axamlforge. DO NOT EDIT. -->`,
		`<Application`,
		`    xmlns="https://github.com/avaloniaui"`,
		`    xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml"`,
		`    x:Class="GeneratedApp.App">`,
		`    <Application.Styles>`,
		`        <FluentTheme/>`,
		`        <StyleInclude Source="avares://GeneratedApp/AppTheme.axaml"/>`,
		`    </Application.Styles>`,
		`</Application>`,
	), got)
}

func TestAppMarkupWithoutTheme(t *testing.T) {
	opts := options.WithPreset(options.PresetProject)
	opts.IncludeTheme = false

	got := appMarkup(opts)

	// Check the application never references a file the export omits.
	assert.NotContains(t, got, "StyleInclude")
	assert.Contains(t, got, "<FluentTheme/>")
}

func TestProjectFileNames(t *testing.T) {
	opts := options.WithPreset(options.PresetProject)
	opts.ProjectName = "KioskShell"

	files := projectFiles(codebehind.New(opts), opts)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"KioskShell.csproj", "Program.cs", "App.axaml", "App.axaml.cs"}, names)
	assert.Len(t, files, projectFileCount)
}
