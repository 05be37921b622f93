package mapping

// rule builds a PropertyRule with optional skip values.
func rule(src, tgt string, kind ConverterKind, skip ...string) PropertyRule {
	return PropertyRule{Source: src, Target: tgt, Kind: kind, SkipValues: skip}
}

// enumRule builds a ConvertEnum rule over a literal table.
func enumRule(src, tgt string, values map[string]string, skip ...string) PropertyRule {
	return PropertyRule{Source: src, Target: tgt, Kind: ConvertEnum, EnumValues: values, SkipValues: skip}
}

// itemsRule builds a ConvertItems rule expanding list entries into children.
func itemsRule(src, elem, attr string) PropertyRule {
	return PropertyRule{Source: src, Target: "", Kind: ConvertItems, ItemElement: elem, ItemAttr: attr}
}

// Enum literal tables. Keys are folded scene literals.
var (
	horizontalAlignValues = map[string]string{
		"left": "Left", "start": "Left", "center": "Center", "middle": "Center",
		"right": "Right", "end": "Right", "stretch": "Stretch",
	}
	verticalAlignValues = map[string]string{
		"top": "Top", "start": "Top", "center": "Center", "middle": "Center",
		"bottom": "Bottom", "end": "Bottom", "stretch": "Stretch",
	}
	fontWeightValues = map[string]string{
		"thin": "Thin", "light": "Light", "normal": "Normal", "regular": "Normal",
		"medium": "Medium", "semibold": "SemiBold", "bold": "Bold", "black": "Black",
		"400": "Normal", "500": "Medium", "600": "SemiBold", "700": "Bold",
	}
	fontStyleValues = map[string]string{
		"normal": "Normal", "italic": "Italic", "oblique": "Italic",
	}
	textAlignValues = map[string]string{
		"left": "Left", "center": "Center", "right": "Right", "justify": "Justify",
	}
	stretchValues = map[string]string{
		"fill": "Fill", "contain": "Uniform", "uniform": "Uniform",
		"cover": "UniformToFill", "none": "None",
	}
	orientationValues = map[string]string{
		"horizontal": "Horizontal", "row": "Horizontal",
		"vertical": "Vertical", "column": "Vertical",
	}
	scrollValues = map[string]string{
		"auto": "Auto", "always": "Visible", "never": "Disabled",
		"hidden": "Hidden", "true": "Auto", "false": "Disabled",
	}
)

// fontRules are the typography rules shared by every text-bearing control.
func fontRules() []PropertyRule {
	return []PropertyRule{
		rule("fontSize", "FontSize", ConvertNumber, "0"),
		enumRule("fontWeight", "FontWeight", fontWeightValues, "Normal"),
		enumRule("fontStyle", "FontStyle", fontStyleValues, "Normal"),
		rule("fontFamily", "FontFamily", ConvertText),
		rule("color", "Foreground", ConvertColor),
	}
}

// borderRules are the outline rules shared by bordered containers.
func borderRules() []PropertyRule {
	return []PropertyRule{
		rule("stroke", "BorderBrush", ConvertColor),
		rule("strokeWidth", "BorderThickness", ConvertThickness, "0"),
		rule("cornerRadius", "CornerRadius", ConvertCornerRadius, "0"),
	}
}

// shapeRules are the fill/outline rules shared by vector shapes.
func shapeRules() []PropertyRule {
	return []PropertyRule{
		rule("fill", "Fill", ConvertBrush),
		rule("stroke", "Stroke", ConvertColor),
		rule("strokeWidth", "StrokeThickness", ConvertNumber, "0"),
	}
}

// globalEvents is the fallback handler table consulted when a mapping has no
// rule of its own for a scene handler property.
var globalEvents = []EventRule{
	{Source: "onClick", Attr: "Tapped", Args: "TappedEventArgs"},
	{Source: "onDoubleClick", Attr: "DoubleTapped", Args: "TappedEventArgs"},
	{Source: "onFocus", Attr: "GotFocus", Args: "GotFocusEventArgs"},
	{Source: "onBlur", Attr: "LostFocus", Args: "RoutedEventArgs"},
	{Source: "onKeyDown", Attr: "KeyDown", Args: "KeyEventArgs"},
	{Source: "onKeyUp", Attr: "KeyUp", Args: "KeyEventArgs"},
}

// LayoutRules returns the systematic rules applied to every node after its
// mapped rules, in the fixed emission order.
func LayoutRules() []PropertyRule {
	return []PropertyRule{
		rule("width", "Width", ConvertNumber, "0"),
		rule("height", "Height", ConvertNumber, "0"),
		rule("margin", "Margin", ConvertThickness, "0"),
		rule("padding", "Padding", ConvertThickness, "0"),
		enumRule("horizontalAlignment", "HorizontalAlignment", horizontalAlignValues, "Stretch"),
		enumRule("verticalAlignment", "VerticalAlignment", verticalAlignValues, "Stretch"),
		rule("enabled", "IsEnabled", ConvertBool, "True"),
		rule("visible", "IsVisible", ConvertBool, "True"),
		rule("opacity", "Opacity", ConvertNumber, "1"),
	}
}

// UniversalRules returns the cross-cutting rules every node responds to
// unless its mapping declares its own rule for the same source.
func UniversalRules() []PropertyRule {
	return []PropertyRule{
		rule("tooltip", "ToolTip.Tip", ConvertText),
		rule("transform", "RenderTransform", ConvertTransform),
		rule("shadow", "Effect", ConvertEffect),
		rule("effect", "Effect", ConvertEffect),
	}
}

// builtins is the builtin mapping table. Order is the listing order.
func builtins() []Mapping {
	return []Mapping{
		{
			SourceType: "button", Target: "Button", Category: CategoryInput,
			Rules: append([]PropertyRule{
				rule("text", "Content", ConvertText),
				rule("command", "Command", ConvertBinding),
				rule("background", "Background", ConvertBrush),
			}, fontRules()...),
			Events: []EventRule{{Source: "onClick", Attr: "Click", Args: "RoutedEventArgs"}},
		},
		{
			SourceType: "label", Target: "TextBlock", Category: CategoryDisplay,
			ContentProperty: "text",
			Rules: append([]PropertyRule{
				rule("text", "Text", ConvertText),
				enumRule("textAlign", "TextAlignment", textAlignValues, "Left"),
			}, fontRules()...),
		},
		{
			SourceType: "heading", Target: "TextBlock", Category: CategoryDisplay,
			StyleClass: "heading", ContentProperty: "text",
			Rules: append([]PropertyRule{
				rule("text", "Text", ConvertText),
				enumRule("textAlign", "TextAlignment", textAlignValues, "Left"),
			}, fontRules()...),
		},
		{
			SourceType: "textinput", Target: "TextBox", Category: CategoryInput,
			Rules: append([]PropertyRule{
				rule("value", "Text", ConvertBinding),
				rule("placeholder", "Watermark", ConvertText),
				rule("maxLength", "MaxLength", ConvertNumber, "0"),
				rule("readOnly", "IsReadOnly", ConvertBool, "False"),
			}, fontRules()...),
			Events: []EventRule{{Source: "onChange", Attr: "TextChanged", Args: "TextChangedEventArgs"}},
		},
		{
			SourceType: "textarea", Target: "TextBox", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("value", "Text", ConvertBinding),
				rule("placeholder", "Watermark", ConvertText),
				rule("rows", "MinLines", ConvertNumber, "0"),
			},
			Static: []StaticAttr{
				{Name: "AcceptsReturn", Value: "True"},
				{Name: "TextWrapping", Value: "Wrap"},
			},
			Events: []EventRule{{Source: "onChange", Attr: "TextChanged", Args: "TextChangedEventArgs"}},
		},
		{
			SourceType: "passwordinput", Target: "TextBox", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("value", "Text", ConvertBinding),
				rule("placeholder", "Watermark", ConvertText),
			},
			Static: []StaticAttr{{Name: "PasswordChar", Value: "*"}},
		},
		{
			SourceType: "checkbox", Target: "CheckBox", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("text", "Content", ConvertText),
				rule("checked", "IsChecked", ConvertBool, "False"),
			},
			Events: []EventRule{{Source: "onChange", Attr: "IsCheckedChanged", Args: "RoutedEventArgs"}},
		},
		{
			SourceType: "radiobutton", Target: "RadioButton", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("text", "Content", ConvertText),
				rule("checked", "IsChecked", ConvertBool, "False"),
				rule("group", "GroupName", ConvertText),
			},
			Events: []EventRule{{Source: "onChange", Attr: "IsCheckedChanged", Args: "RoutedEventArgs"}},
		},
		{
			SourceType: "toggle", Target: "ToggleSwitch", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("checked", "IsChecked", ConvertBool, "False"),
				rule("onLabel", "OnContent", ConvertText),
				rule("offLabel", "OffContent", ConvertText),
			},
			Events: []EventRule{{Source: "onChange", Attr: "IsCheckedChanged", Args: "RoutedEventArgs"}},
		},
		{
			SourceType: "slider", Target: "Slider", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("value", "Value", ConvertNumber),
				rule("min", "Minimum", ConvertNumber, "0"),
				rule("max", "Maximum", ConvertNumber, "100"),
				rule("step", "TickFrequency", ConvertNumber, "0"),
			},
			Events: []EventRule{{Source: "onChange", Attr: "ValueChanged", Args: "RangeBaseValueChangedEventArgs"}},
		},
		{
			SourceType: "progressbar", Target: "ProgressBar", Category: CategoryDisplay,
			Rules: []PropertyRule{
				rule("value", "Value", ConvertNumber),
				rule("min", "Minimum", ConvertNumber, "0"),
				rule("max", "Maximum", ConvertNumber, "100"),
				rule("indeterminate", "IsIndeterminate", ConvertBool, "False"),
			},
		},
		{
			SourceType: "dropdown", Target: "ComboBox", Category: CategoryInput,
			Rules: []PropertyRule{
				itemsRule("items", "ComboBoxItem", "Content"),
				rule("selectedIndex", "SelectedIndex", ConvertNumber, "-1"),
				rule("placeholder", "PlaceholderText", ConvertText),
			},
			Events: []EventRule{{Source: "onChange", Attr: "SelectionChanged", Args: "SelectionChangedEventArgs"}},
		},
		{
			SourceType: "listbox", Target: "ListBox", Category: CategoryInput,
			Rules: []PropertyRule{
				itemsRule("items", "ListBoxItem", "Content"),
				rule("selectedIndex", "SelectedIndex", ConvertNumber, "-1"),
			},
			Events: []EventRule{{Source: "onSelect", Attr: "SelectionChanged", Args: "SelectionChangedEventArgs"}},
		},
		{
			SourceType: "datagrid", Target: "DataGrid", Category: CategoryDisplay,
			Rules: []PropertyRule{
				rule("items", "ItemsSource", ConvertBinding),
			},
			Static: []StaticAttr{{Name: "AutoGenerateColumns", Value: "True"}},
			Events: []EventRule{{Source: "onSelect", Attr: "SelectionChanged", Args: "SelectionChangedEventArgs"}},
		},
		{
			SourceType: "treeview", Target: "TreeView", Category: CategoryDisplay,
			Rules: []PropertyRule{
				rule("items", "ItemsSource", ConvertBinding),
			},
			Events: []EventRule{{Source: "onSelect", Attr: "SelectionChanged", Args: "SelectionChangedEventArgs"}},
		},
		{
			SourceType: "image", Target: "Image", Category: CategoryMedia,
			Rules: []PropertyRule{
				rule("src", "Source", ConvertText),
				enumRule("stretch", "Stretch", stretchValues, "Uniform"),
			},
		},
		{
			SourceType: "icon", Target: "PathIcon", Category: CategoryMedia,
			Rules: []PropertyRule{
				rule("path", "Data", ConvertGeometry),
				rule("color", "Foreground", ConvertColor),
			},
		},
		{
			SourceType: "rectangle", Target: "Rectangle", Category: CategoryShape,
			Rules: append(shapeRules(),
				rule("cornerRadius", "RadiusX", ConvertNumber, "0"),
			),
		},
		{
			SourceType: "ellipse", Target: "Ellipse", Category: CategoryShape,
			Rules:      shapeRules(),
		},
		{
			SourceType: "line", Target: "Line", Category: CategoryShape,
			Rules: []PropertyRule{
				rule("points", "", ConvertGeometry),
				rule("stroke", "Stroke", ConvertColor),
				rule("strokeWidth", "StrokeThickness", ConvertNumber, "0"),
			},
		},
		{
			SourceType: "divider", Target: "Separator", Category: CategoryDisplay,
		},
		{
			SourceType: "panel", Target: "Panel", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "border", Target: "Border", Category: CategoryContainer,
			Rules: append([]PropertyRule{
				rule("background", "Background", ConvertBrush),
			}, borderRules()...),
		},
		{
			SourceType: "stack", Target: "StackPanel", Category: CategoryContainer,
			Rules: []PropertyRule{
				enumRule("orientation", "Orientation", orientationValues, "Vertical"),
				rule("spacing", "Spacing", ConvertNumber, "0"),
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "row", Target: "StackPanel", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("spacing", "Spacing", ConvertNumber, "0"),
				rule("background", "Background", ConvertBrush),
			},
			Static: []StaticAttr{{Name: "Orientation", Value: "Horizontal"}},
		},
		{
			SourceType: "column", Target: "StackPanel", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("spacing", "Spacing", ConvertNumber, "0"),
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "grid", Target: "Grid", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("columns", "ColumnDefinitions", ConvertGridDefs),
				rule("rows", "RowDefinitions", ConvertGridDefs),
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "card", Target: "Border", Category: CategoryContainer,
			StyleClass: "card",
			Rules: append([]PropertyRule{
				rule("background", "Background", ConvertBrush),
				rule("shadow", "BoxShadow", ConvertBoxShadow),
			}, borderRules()...),
		},
		{
			SourceType: "groupbox", Target: "HeaderedContentControl", Category: CategoryContainer,
			StyleClass: "groupbox",
			Rules: []PropertyRule{
				rule("title", "Header", ConvertText),
			},
		},
		{
			SourceType: "scrollview", Target: "ScrollViewer", Category: CategoryContainer,
			Rules: []PropertyRule{
				enumRule("horizontalScroll", "HorizontalScrollBarVisibility", scrollValues, "Disabled"),
				enumRule("verticalScroll", "VerticalScrollBarVisibility", scrollValues, "Auto"),
			},
		},
		{
			SourceType: "expander", Target: "Expander", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("title", "Header", ConvertText),
				rule("expanded", "IsExpanded", ConvertBool, "False"),
			},
		},
		{
			SourceType: "viewbox", Target: "Viewbox", Category: CategoryContainer,
			Rules: []PropertyRule{
				enumRule("stretch", "Stretch", stretchValues, "Uniform"),
			},
		},
		{
			SourceType: "canvas", Target: "Canvas", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "tabcontrol", Target: "TabControl", Category: CategoryNavigation,
			Rules: []PropertyRule{
				rule("selectedIndex", "SelectedIndex", ConvertNumber, "-1"),
			},
		},
		{
			SourceType: "tabitem", Target: "TabItem", Category: CategoryNavigation,
			Rules: []PropertyRule{
				rule("title", "Header", ConvertText),
			},
		},
		{
			SourceType: "menu", Target: "Menu", Category: CategoryNavigation,
			Rules: []PropertyRule{
				itemsRule("items", "MenuItem", "Header"),
			},
		},
		{
			SourceType: "hyperlink", Target: "HyperlinkButton", Category: CategoryNavigation,
			Rules: []PropertyRule{
				rule("text", "Content", ConvertText),
				rule("href", "NavigateUri", ConvertText),
			},
			Events: []EventRule{{Source: "onClick", Attr: "Click", Args: "RoutedEventArgs"}},
		},
		{
			SourceType: "window", Target: "Window", Category: CategoryContainer,
			Rules: []PropertyRule{
				rule("title", "Title", ConvertText),
				rule("background", "Background", ConvertBrush),
			},
		},
		{
			SourceType: "calendar", Target: "Calendar", Category: CategoryInput,
		},
		{
			SourceType: "datepicker", Target: "DatePicker", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("selectedDate", "SelectedDate", ConvertBinding),
			},
		},
		{
			SourceType: "timepicker", Target: "TimePicker", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("selectedTime", "SelectedTime", ConvertBinding),
			},
		},
		{
			SourceType: "colorpicker", Target: "ColorPicker", Category: CategoryInput,
			Rules: []PropertyRule{
				rule("color", "Color", ConvertColor),
			},
		},
	}
}
