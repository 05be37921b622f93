package mapping

import "axamlforge/internal/naming"

func foldName(s string) string { return naming.Fold(s) }

// typeAliases folds alternative scene type spellings onto canonical source
// types. Keys and values are folded forms.
var typeAliases = map[string]string{
	"btn":        "button",
	"text":       "label",
	"textfield":  "textinput",
	"input":      "textinput",
	"textbox":    "textinput",
	"multiline":  "textarea",
	"password":   "passwordinput",
	"check":      "checkbox",
	"radio":      "radiobutton",
	"switch":     "toggle",
	"progress":   "progressbar",
	"select":     "dropdown",
	"combobox":   "dropdown",
	"list":       "listbox",
	"table":      "datagrid",
	"gridview":   "datagrid",
	"img":        "image",
	"picture":    "image",
	"rect":       "rectangle",
	"circle":     "ellipse",
	"oval":       "ellipse",
	"separator":  "divider",
	"container":  "panel",
	"box":        "panel",
	"frame":      "border",
	"hstack":     "row",
	"vstack":     "column",
	"group":      "groupbox",
	"fieldset":   "groupbox",
	"scroll":     "scrollview",
	"scrollarea": "scrollview",
	"tabs":       "tabcontrol",
	"tab":        "tabitem",
	"link":       "hyperlink",
	"anchor":     "hyperlink",
	"dialog":     "window",
	"tree":       "treeview",
}

// propAliases folds alternative property spellings onto canonical folded
// property keys.
var propAliases = map[string]string{
	"bg":          "background",
	"bgcolor":     "background",
	"fg":          "color",
	"foreground":  "color",
	"textcolor":   "color",
	"content":     "text",
	"caption":     "text",
	"hint":        "placeholder",
	"watermark":   "placeholder",
	"source":      "src",
	"url":         "href",
	"ischecked":   "checked",
	"isenabled":   "enabled",
	"isvisible":   "visible",
	"halign":      "horizontalalignment",
	"align":       "horizontalalignment",
	"valign":      "verticalalignment",
	"radius":      "cornerradius",
	"bordercolor": "stroke",
	"borderwidth": "strokewidth",
	"gap":         "spacing",
	"options":     "items",
	"choices":     "items",
}

// CanonicalType folds a scene node type and resolves type aliases.
func CanonicalType(t string) string {
	key := foldName(t)
	if canon, ok := typeAliases[key]; ok {
		return canon
	}

	return key
}

// CanonicalProperty folds a scene property name and resolves property
// aliases. The result is a folded key comparable against folded rule sources.
func CanonicalProperty(p string) string {
	key := foldName(p)
	if canon, ok := propAliases[key]; ok {
		return canon
	}

	return key
}
