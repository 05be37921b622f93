package export

import (
	"axamlforge/internal/codebehind"
	"axamlforge/internal/emit"
	"axamlforge/internal/markup"
	"axamlforge/options"
)

// projectFileCount is the number of boilerplate files the project preset
// appends after the core file set.
const projectFileCount = 4

// avaloniaVersion pins the package references in the generated csproj.
const avaloniaVersion = "11.0.10"

// projectFiles renders the fixed boilerplate of the project preset: the
// project manifest, the entry point, and the application class pair.
func projectFiles(gen *codebehind.Generator, opts options.ExportOptions) []File {
	return []File{
		{Name: opts.ProjectName + ".csproj", Content: projectManifest(opts), Kind: options.FileMarkup},
		{Name: "Program.cs", Content: gen.ProgramSource(), Kind: options.FileSource},
		{Name: "App.axaml", Content: appMarkup(opts), Kind: options.FileMarkup},
		{Name: "App.axaml.cs", Content: gen.AppSource(), Kind: options.FileSource},
	}
}

// projectManifest renders the csproj for a desktop Avalonia application.
func projectManifest(opts options.ExportOptions) string {
	b := emit.NewBuffer(opts.IndentUnit())

	b.Line(`<Project Sdk="Microsoft.NET.Sdk">`)
	b.Indent()

	b.Line("<PropertyGroup>")
	b.Indent()
	b.Line("<OutputType>WinExe</OutputType>")
	b.Line("<TargetFramework>net8.0</TargetFramework>")
	b.Line("<Nullable>enable</Nullable>")
	b.Line("<RootNamespace>" + opts.ProjectName + "</RootNamespace>")
	b.Dedent()
	b.Line("</PropertyGroup>")
	b.Blank()

	b.Line("<ItemGroup>")
	b.Indent()

	for _, pkg := range []string{"Avalonia", "Avalonia.Desktop", "Avalonia.Themes.Fluent"} {
		b.Line(`<PackageReference Include="` + pkg + `" Version="` + avaloniaVersion + `" />`)
	}

	b.Dedent()
	b.Line("</ItemGroup>")

	b.Dedent()
	b.Line("</Project>")

	return b.String()
}

// appMarkup renders App.axaml: the fluent base theme plus, when the theme
// file is part of the export, an include of the generated dictionary.
func appMarkup(opts options.ExportOptions) string {
	b := emit.NewBuffer(opts.IndentUnit())

	b.Line(markup.Preamble)
	b.Line("<Application")
	b.Indent()
	b.Line(`xmlns="https://github.com/avaloniaui"`)
	b.Line(`xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml"`)
	b.Line(`x:Class="` + opts.ProjectName + `.App">`)

	b.Line("<Application.Styles>")
	b.Indent()
	b.Line("<FluentTheme/>")

	if opts.IncludeTheme {
		b.Line(`<StyleInclude Source="avares://` + opts.ProjectName + `/` + ThemeFileName + `"/>`)
	}

	b.Dedent()
	b.Line("</Application.Styles>")

	b.Dedent()
	b.Line("</Application>")

	return b.String()
}
