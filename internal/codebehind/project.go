package codebehind

import (
	"axamlforge/internal/common"
	"axamlforge/internal/emit"
	"axamlforge/options"
)

// ProgramSource renders the Program.cs entry point for the project preset.
func (g *Generator) ProgramSource() string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	writeHeader(b)
	writeUsings(b, []string{"Avalonia", "System"})

	b.Line("namespace " + g.opts.ProjectName)
	b.Line("{")
	b.Indent()

	b.Line("internal static class Program")
	b.Line("{")
	b.Indent()

	b.Line("[STAThread]")
	b.Line("public static void Main(string[] args) => BuildAvaloniaApp()")
	b.Indent()
	b.Line(".StartWithClassicDesktopLifetime(args);")
	b.Dedent()
	b.Blank()

	b.Line("public static AppBuilder BuildAvaloniaApp()")
	b.Indent()
	b.Line("=> AppBuilder.Configure<App>()")
	b.Indent()
	b.Line(".UsePlatformDetect()")
	b.Line(".LogToTrace();")
	b.Dedent()
	b.Dedent()

	b.Dedent()
	b.Line("}")
	b.Dedent()
	b.Line("}")

	return b.String()
}

// AppSource renders the App.axaml.cs application class for the project
// preset. When the exported root is not a Window the view is hosted inside a
// plain Window so the desktop lifetime still has a main window.
func (g *Generator) AppSource() string {
	b := emit.NewBuffer(g.opts.IndentUnit())
	writeHeader(b)

	usings := []string{
		"Avalonia",
		"Avalonia.Controls.ApplicationLifetimes",
		"Avalonia.Markup.Xaml",
	}
	usings = common.AppendUnique(usings, g.opts.Namespace)
	if g.opts.Root != options.RootWindow {
		usings = common.AppendUnique(usings, "Avalonia.Controls")
	}
	writeUsings(b, usings)

	b.Line("namespace " + g.opts.ProjectName)
	b.Line("{")
	b.Indent()

	b.Line("public partial class App : Application")
	b.Line("{")
	b.Indent()

	b.Line("public override void Initialize()")
	b.Line("{")
	b.Indent()
	b.Line("AvaloniaXamlLoader.Load(this);")
	b.Dedent()
	b.Line("}")
	b.Blank()

	b.Line("public override void OnFrameworkInitializationCompleted()")
	b.Line("{")
	b.Indent()
	b.Line("if (ApplicationLifetime is IClassicDesktopStyleApplicationLifetime desktop)")
	b.Line("{")
	b.Indent()

	if g.opts.Root == options.RootWindow {
		b.Line("desktop.MainWindow = new " + g.opts.ClassName + "();")
	} else {
		b.Line("desktop.MainWindow = new Window { Content = new " + g.opts.ClassName + "() };")
	}

	b.Dedent()
	b.Line("}")
	b.Blank()
	b.Line("base.OnFrameworkInitializationCompleted();")
	b.Dedent()
	b.Line("}")

	b.Dedent()
	b.Line("}")
	b.Dedent()
	b.Line("}")

	return b.String()
}
