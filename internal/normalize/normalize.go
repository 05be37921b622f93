package normalize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"axamlforge/internal/common"
	"axamlforge/internal/convert"
	"axamlforge/internal/diagnostic"
	"axamlforge/internal/emit"
	"axamlforge/internal/mapping"
	"axamlforge/internal/naming"
	"axamlforge/options"
	"axamlforge/scene"
)

// nearestLimit bounds the did-you-mean list on unmapped-type warnings.
const nearestLimit = 3

// Normalizer resolves a scene against the registry. One instance serves one
// export call; it accumulates handlers, bindings, and name bookkeeping.
type Normalizer struct {
	registry *mapping.Registry
	opts     options.ExportOptions
	diags    *diagnostic.Diagnostics

	handlers    []Handler
	bindings    []Binding
	unsupported []string
	namespaces  map[string]string
	usedNames   map[string]int
	elemSeq     map[string]int
}

// New returns a normalizer for one export call. Options are clamped here so
// every downstream consumer sees sane values.
func New(registry *mapping.Registry, opts options.ExportOptions, diags *diagnostic.Diagnostics) *Normalizer {
	return &Normalizer{
		registry:   registry,
		opts:       opts.Clamped(),
		diags:      diags,
		namespaces: make(map[string]string),
		usedNames:  make(map[string]int),
		elemSeq:    make(map[string]int),
	}
}

// Normalize flattens visible layers and resolves every node. Only structural
// problems return an error; per-node issues become diagnostics.
func (n *Normalizer) Normalize(s *scene.Scene) (*Result, error) {
	if s == nil {
		return nil, ErrNotTraversable
	}

	for _, layer := range s.Layers {
		if !layer.IsVisible() {
			n.diags.AddInfo("hidden-layer", "layer excluded from export", layer.Name, "")
		}
	}

	nodes := s.VisibleNodes()
	if common.IsEmpty(nodes) {
		return nil, ErrSceneEmpty
	}

	res := &Result{}
	for _, nd := range nodes {
		cn, err := n.node(nd, "", 1)
		if err != nil {
			return nil, err
		}

		res.Roots = append(res.Roots, cn)
	}

	for _, root := range res.Roots {
		if root.HasAttr("Canvas.Left") || root.HasAttr("Canvas.Top") {
			res.WrapCanvas = true

			break
		}
	}

	res.Handlers = n.handlers
	res.Bindings = n.bindings
	res.Namespaces = n.sortedNamespaces()
	res.Unsupported = common.SortedUnique(n.unsupported)

	return res, nil
}

// node resolves one scene node and its subtree.
func (n *Normalizer) node(nd *scene.Node, parentPath string, depth int) (*CanonicalNode, error) {
	path := childPath(parentPath, nd)
	if depth > n.opts.MaxDepth {
		return nil, errors.Wrapf(ErrDepthExceeded, "at %s", path)
	}

	props := canonicalProps(nd)
	cn := &CanonicalNode{SourceType: nd.Type}

	m, mapped := n.registry.LookupBySourceType(nd.Type)

	switch {
	case nd.TargetType != "":
		// Explicit target override is trusted even without a mapping.
		cn.Element = nd.TargetType
		if !mapped {
			m = mapping.Mapping{}
		}
	case mapped:
		cn.Element = m.QualifiedTarget()
		if m.Prefix != "" {
			n.addNamespace(m.Prefix, m.Namespace)
		}
	default:
		cn.Element = "Border"
		cn.Unsupported = true
		m = mapping.Mapping{}

		canon := mapping.CanonicalType(nd.Type)
		n.unsupported = append(n.unsupported, canon)
		n.diags.AddWarningWithSuggestions(
			"unmapped-type",
			"no mapping for node type "+strconv.Quote(nd.Type),
			path, "",
			naming.Nearest(canon, n.registry.SourceTypes(), nearestLimit),
		)
	}

	ident := n.identFor(nd, cn.Element)
	if nd.Name != "" && ident != "" {
		cn.Attrs = append(cn.Attrs, emit.Attr{Name: "x:Name", Value: ident})
	}

	if cn.Unsupported {
		cn.Attrs = append(cn.Attrs,
			emit.Attr{Name: "Classes", Value: "unsupported"},
			emit.Attr{Name: "Tag", Value: nd.Type},
		)
	} else if m.StyleClass != "" && n.opts.IncludeStyles {
		cn.Attrs = append(cn.Attrs, emit.Attr{Name: "Classes", Value: m.StyleClass})
	}

	for _, rule := range m.Rules {
		n.applyRule(cn, rule, props, path, m.ContentProperty)
	}

	for _, st := range m.Static {
		cn.Attrs = append(cn.Attrs, emit.Attr{Name: st.Name, Value: st.Value})
	}

	for _, rule := range mapping.UniversalRules() {
		if _, owned := m.RuleFor(naming.Fold(rule.Source)); owned {
			continue
		}

		n.applyRule(cn, rule, props, path, "")
	}

	for _, rule := range mapping.LayoutRules() {
		n.applyRule(cn, rule, props, path, "")
	}

	n.applyEvents(cn, m, props, ident)

	if nd.X != 0 || nd.Y != 0 {
		cn.Attrs = append(cn.Attrs,
			emit.Attr{Name: "Canvas.Left", Value: emit.Float(nd.X)},
			emit.Attr{Name: "Canvas.Top", Value: emit.Float(nd.Y)},
		)
	}

	for _, child := range nd.Children {
		childNode, err := n.node(child, path, depth+1)
		if err != nil {
			return nil, err
		}

		cn.Children = append(cn.Children, childNode)
	}

	return cn, nil
}

// ruleGatedOff reports whether a converter family is disabled by options.
func (n *Normalizer) ruleGatedOff(rule mapping.PropertyRule) bool {
	switch rule.Kind {
	case mapping.ConvertTransform:
		return !n.opts.IncludeTransforms
	case mapping.ConvertEffect, mapping.ConvertBoxShadow:
		return !n.opts.IncludeEffects
	default:
		return false
	}
}

// applyRule converts one property and attaches the result to the node.
// Conversion failures downgrade to diagnostics and drop the property.
func (n *Normalizer) applyRule(cn *CanonicalNode, rule mapping.PropertyRule, props map[string]any, path, contentProp string) {
	// A null property value means unset; the property is omitted entirely.
	val, ok := props[naming.Fold(rule.Source)]
	if !ok || val == nil {
		return
	}

	if n.ruleGatedOff(rule) {
		return
	}

	res, err := convert.Convert(val, rule, n.opts)
	if err != nil {
		n.diags.AddWarning("converter-failure", err.Error(), path, rule.Source)

		return
	}

	switch {
	case len(res.Attrs) > 0:
		cn.Attrs = append(cn.Attrs, res.Attrs...)

		for _, a := range res.Attrs {
			n.collectBinding(a.Value, a.Name)
		}
	case len(res.Els) > 0 && res.Nested:
		cn.Nested = append(cn.Nested, NestedProperty{Property: rule.Target, Els: res.Els})
	case len(res.Els) > 0:
		for _, el := range res.Els {
			cn.Children = append(cn.Children, elToCanonical(el))
		}
	default:
		if skipsValue(rule, res.Text) {
			return
		}

		if contentProp != "" && naming.Fold(rule.Source) == naming.Fold(contentProp) && strings.Contains(res.Text, "\n") {
			cn.InlineText = res.Text

			return
		}

		cn.Attrs = append(cn.Attrs, emit.Attr{Name: rule.Target, Value: res.Text})
		n.collectBinding(res.Text, rule.Target)
	}
}

// applyEvents turns on* properties into event attributes and handler stubs.
// Properties are visited in sorted order so output never depends on map
// iteration.
func (n *Normalizer) applyEvents(cn *CanonicalNode, m mapping.Mapping, props map[string]any, ident string) {
	keys := make([]string, 0, len(props))
	for k := range props {
		if strings.HasPrefix(k, "on") {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	for _, k := range keys {
		ev, ok := m.EventFor(k)
		if !ok {
			continue
		}

		name := ident + "_" + ev.Attr
		if custom, ok := props[k].(string); ok && custom != "" && !strings.ContainsAny(custom, " (){}") {
			name = naming.Pascal(custom)
		}

		cn.Attrs = append(cn.Attrs, emit.Attr{Name: ev.Attr, Value: name})
		n.handlers = common.AppendUnique(n.handlers, Handler{Name: name, Args: ev.Args})
	}
}

// collectBinding records the path of a binding expression for the
// view-model generator. Paths deduplicate on first sight; the first bound
// attribute wins.
func (n *Normalizer) collectBinding(attrValue, target string) {
	for _, prefix := range []string{"{Binding ", "{CompiledBinding "} {
		if !strings.HasPrefix(attrValue, prefix) {
			continue
		}

		rest := attrValue[len(prefix):]
		end := strings.IndexAny(rest, ",}")
		if end < 0 {
			return
		}

		path := strings.TrimSpace(rest[:end])
		if path == "" {
			return
		}

		for _, b := range n.bindings {
			if b.Path == path {
				return
			}
		}

		n.bindings = append(n.bindings, Binding{Path: path, Target: target})

		return
	}
}

// addNamespace records a prefixed namespace. The first URI seen for a prefix
// wins; the registry guarantees prefixes map consistently within one file.
func (n *Normalizer) addNamespace(prefix, uri string) {
	if _, ok := n.namespaces[prefix]; ok {
		return
	}

	n.namespaces[prefix] = uri
}

// sortedNamespaces returns the collected namespaces ordered by prefix.
func (n *Normalizer) sortedNamespaces() []Namespace {
	if len(n.namespaces) == 0 {
		return nil
	}

	out := make([]Namespace, 0, len(n.namespaces))
	for prefix, uri := range n.namespaces {
		out = append(out, Namespace{Prefix: prefix, URI: uri})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })

	return out
}

// identFor derives the unique C# identifier for a node, used for x:Name and
// handler names. Unnamed nodes fall back to a per-element sequence.
func (n *Normalizer) identFor(nd *scene.Node, element string) string {
	ident := naming.SafeIdent(nd.Name, "")
	if ident == "" {
		// Prefixed elements drop the prefix; a colon is not a C# identifier.
		if i := strings.LastIndex(element, ":"); i >= 0 {
			element = element[i+1:]
		}

		n.elemSeq[element]++

		return element + strconv.Itoa(n.elemSeq[element])
	}

	n.usedNames[ident]++
	if c := n.usedNames[ident]; c > 1 {
		return ident + strconv.Itoa(c)
	}

	return ident
}

// canonicalProps folds and alias-resolves the node's property names. Keys
// are visited sorted so duplicate aliases resolve deterministically, first
// sorted name wins.
func canonicalProps(nd *scene.Node) map[string]any {
	if len(nd.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(nd.Properties))
	for name := range nd.Properties {
		names = append(names, name)
	}

	sort.Strings(names)

	out := make(map[string]any, len(names))
	for _, name := range names {
		key := mapping.CanonicalProperty(name)
		if _, exists := out[key]; !exists {
			out[key] = nd.Properties[name]
		}
	}

	return out
}

// skipsValue reports whether the converted text equals one of the rule's
// declared target defaults.
func skipsValue(rule mapping.PropertyRule, text string) bool {
	for _, skip := range rule.SkipValues {
		if text == skip {
			return true
		}
	}

	return false
}

// elToCanonical adapts a converter-produced element into a canonical child.
func elToCanonical(el emit.El) *CanonicalNode {
	cn := &CanonicalNode{
		Element:    el.Name,
		Attrs:      el.Attrs,
		InlineText: el.Text,
	}

	for _, child := range el.Children {
		cn.Children = append(cn.Children, elToCanonical(child))
	}

	return cn
}

// childPath extends the diagnostic path with a node's display name.
func childPath(parent string, nd *scene.Node) string {
	label := nd.Name
	if label == "" {
		label = nd.Type
	}

	if parent == "" {
		return label
	}

	return parent + "/" + label
}
