package gotemplate

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-vuetag/pkg/directive"
)

// directivesKey holds an engine's directive set in its template globals.
const directivesKey = "__vuetag_directives"

// pongo2 keeps tags in a process wide registry, so each tag name is registered
// once with a parser that knows only the name. The directive itself is looked
// up at render time from the executing engine's globals.
var (
	tagsMu     sync.Mutex
	tagsByName = map[string]struct{}{}
)

// RegisterDirectives exposes every directive in set as a block tag:
//
//	{% vue "user-card" attrs %}<p>{{ body }}</p>{% endvue %}
//
// The set replaces the directives previously registered on this engine; other
// engines keep their own. Arguments may be separated by commas or spaces. They
// are evaluated at render time and handed to the directive as is, so argument
// shape errors surface as execution errors.
func (e *Engine) RegisterDirectives(set *directive.Set) error {
	if e == nil || e.templateSet == nil {
		return fmt.Errorf("gotemplate: engine is nil")
	}
	for _, d := range set.All() {
		if err := registerTag(d.Name()); err != nil {
			return fmt.Errorf("gotemplate: register directive %q: %w", d.Name(), err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templateSet.Globals == nil {
		e.templateSet.Globals = make(pongo2.Context)
	}
	e.templateSet.Globals[directivesKey] = set
	return nil
}

func registerTag(name string) error {
	tagsMu.Lock()
	defer tagsMu.Unlock()

	if _, registered := tagsByName[name]; registered {
		return nil
	}
	if err := pongo2.RegisterTag(name, directiveTagParser(name)); err != nil {
		return err
	}
	tagsByName[name] = struct{}{}
	return nil
}

type directiveNode struct {
	name string
	args []pongo2.IEvaluator
	body *pongo2.NodeWrapper
}

func directiveTagParser(name string) pongo2.TagParser {
	endName := "end" + name
	return func(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
		node := &directiveNode{name: name}
		for arguments.Remaining() > 0 {
			expr, err := arguments.ParseExpression()
			if err != nil {
				return nil, err
			}
			node.args = append(node.args, expr)
			arguments.Match(pongo2.TokenSymbol, ",")
		}
		if len(node.args) == 0 {
			return nil, arguments.Error(fmt.Sprintf("'%s' requires a component name", name), start)
		}

		body, endArgs, err := doc.WrapUntilTag(endName)
		if err != nil {
			return nil, err
		}
		if endArgs.Count() > 0 {
			return nil, endArgs.Error(fmt.Sprintf("'%s' does not take arguments", endName), nil)
		}
		node.body = body

		return node, nil
	}
}

func (n *directiveNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	d, err := n.lookup(ctx)
	if err != nil {
		return n.error(err)
	}

	name, perr := n.args[0].Evaluate(ctx)
	if perr != nil {
		return perr
	}
	rest := make([]any, 0, len(n.args)-1)
	for _, arg := range n.args[1:] {
		value, perr := arg.Evaluate(ctx)
		if perr != nil {
			return perr
		}
		rest = append(rest, value.Interface())
	}

	start, err := d.Start(name.String(), rest...)
	if err != nil {
		return n.error(err)
	}
	if _, err := writer.WriteString(start); err != nil {
		return n.error(err)
	}
	if perr := n.body.Execute(ctx, writer); perr != nil {
		return perr
	}
	if _, err := writer.WriteString(d.End()); err != nil {
		return n.error(err)
	}
	return nil
}

func (n *directiveNode) lookup(ctx *pongo2.ExecutionContext) (*directive.Directive, error) {
	set, _ := ctx.Public[directivesKey].(*directive.Set)
	d, ok := set.Lookup(n.name)
	if !ok {
		return nil, fmt.Errorf("directive %q is not registered on this engine", n.name)
	}
	return d, nil
}

func (n *directiveNode) error(err error) *pongo2.Error {
	return &pongo2.Error{Sender: "tag:" + n.name, OrigError: err}
}
