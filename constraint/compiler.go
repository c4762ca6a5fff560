package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Workiva/go-datastructures/queue"

	"github.com/rdkcentral/zilker-sdk-sub008/ruleir"
	"github.com/rdkcentral/zilker-sdk-sub008/scriptassets"
	"github.com/rdkcentral/zilker-sdk-sub008/spec"
	"github.com/rdkcentral/zilker-sdk-sub008/uid"
	"github.com/rdkcentral/zilker-sdk-sub008/xerrors"
)

// tokenKind distinguishes the three token shapes the depth-first traversal
// emits, per spec.md §4.2: {ParentOp, childTokens…, HelperName, EndMarker}.
type tokenKind int

const (
	tokenOp tokenKind = iota
	tokenHelper
	tokenEnd
)

type token struct {
	kind   tokenKind
	op     ruleir.LogicOp
	helper string
}

func (t token) queueItem() queue.Item { return tokenItem{t} }

// tokenItem adapts token to queue.Item so the traversal can hand its
// output to a real FIFO queue rather than a bespoke slice-based one,
// generalizing the teacher's `app.go` scheduled-work priority queue into a
// queue-of-tokens (ordering here is pure insertion order, so Compare is a
// constant draw — see DESIGN.md).
type tokenItem struct{ token }

func (tokenItem) Compare(queue.Item) int { return 0 }

// emit walks node depth-first, synthesizing one helper function per node
// (its own time-window evaluation) and pushing the traversal's token
// stream onto q. It returns the JS source of every helper function it
// created, in emission order.
func emit(node *ruleir.Constraint, gen *uid.Generator, q *queue.Queue) ([]string, error) {
	var funcs []string

	if err := q.Put(token{kind: tokenOp, op: node.Logic}.queueItem()); err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "constraint: queue put failed")
	}

	for _, child := range node.Children {
		childFuncs, err := emit(child, gen, q)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, childFuncs...)
	}

	name := gen.NextHelperFunc()
	funcs = append(funcs, windowFunction(name, node))

	if err := q.Put(token{kind: tokenHelper, helper: name}.queueItem()); err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "constraint: queue put failed")
	}
	if err := q.Put(token{kind: tokenEnd}.queueItem()); err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "constraint: queue put failed")
	}

	return funcs, nil
}

// aggregate consumes tokens starting at pos (which must be a ParentOp) and
// returns the parenthesized boolean expression for that group plus the
// position just past its EndMarker. This is the final aggregation pass
// from spec.md §4.2: each EndMarker closes the current group, and the
// first helper name inside a group is emitted without a leading operator.
func aggregate(tokens []token, pos int) (string, int, error) {
	if pos >= len(tokens) || tokens[pos].kind != tokenOp {
		return "", 0, xerrors.New(xerrors.InternalError, "constraint: expected operator token at position %d", pos)
	}
	opStr := " && "
	if tokens[pos].op == ruleir.LogicOR {
		opStr = " || "
	}
	pos++

	var parts []string
	for {
		if pos >= len(tokens) {
			return "", 0, xerrors.New(xerrors.InternalError, "constraint: token stream ended inside a group")
		}
		switch tokens[pos].kind {
		case tokenEnd:
			pos++
			return "(" + strings.Join(parts, opStr) + ")", pos, nil
		case tokenOp:
			sub, next, err := aggregate(tokens, pos)
			if err != nil {
				return "", 0, err
			}
			parts = append(parts, sub)
			pos = next
		case tokenHelper:
			parts = append(parts, tokens[pos].helper+"(bindings)")
			pos++
		}
	}
}

// windowFunction builds the JS source of isAllowed_<uid>, the named helper
// function spec.md §4.2 requires for every constraint node.
func windowFunction(name string, node *ruleir.Constraint) string {
	if len(node.TimeConstraints) == 0 {
		return fmt.Sprintf("function %s(bindings) {\n  return true;\n}\n", name)
	}

	opStr := "&&"
	if node.Logic == ruleir.LogicOR {
		opStr = "||"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "function %s(bindings) {\n", name)
	fmt.Fprintf(&b, "  var allowed = %s;\n", windowExpr(node.TimeConstraints[0]))
	for _, w := range node.TimeConstraints[1:] {
		fmt.Fprintf(&b, "  allowed = allowed %s %s;\n", opStr, windowExpr(w))
	}
	b.WriteString("  return allowed;\n}\n")
	return b.String()
}

// windowExpr builds the inline JS expression evaluating a single
// TimeWindow, using the shared nowDayOfWeek/nowSecondsOfDay/dayInMask
// helpers (scriptassets.TimeFunctions) and the reserved "sunrise"/"sunset"
// bindings (spec.md §6).
func windowExpr(w ruleir.TimeWindow) string {
	var check string
	switch w.Start.Symbol {
	case ruleir.SymbolSunrise:
		check = `var sunrise = bindings["sunrise"]; var sunset = bindings["sunset"]; return (now >= sunrise) && (now <= sunset);`
	case ruleir.SymbolSunset:
		check = `var sunrise = bindings["sunrise"]; var sunset = bindings["sunset"]; return (now >= sunset) || (now <= sunrise);`
	default:
		check = fmt.Sprintf(`var start = %d; var end = %d; if (end < start) { return (now >= start) || (now <= end); } return (now >= start) && (now <= end);`,
			w.Start.Seconds, w.End.Seconds)
	}
	return fmt.Sprintf(`(function() {
    if (!dayInMask(%s, nowDayOfWeek(bindings))) { return false; }
    var now = nowSecondsOfDay(bindings);
    %s
  })()`, strconv.Itoa(int(w.DayOfWeek)), check)
}

// Compile lowers root into the script source of the `constraints` node.
// A nil root (empty constraint tree) returns an empty string, matching the
// edge-case policy in spec.md §4.2.
func Compile(root *ruleir.Constraint, gen *uid.Generator) (string, error) {
	if root == nil {
		return "", nil
	}

	q := queue.New(16)
	defer q.Dispose()

	funcs, err := emit(root, gen, q)
	if err != nil {
		return "", err
	}

	items, err := q.Get(int64(q.Len()))
	if err != nil {
		return "", xerrors.Wrap(xerrors.InternalError, err, "constraint: failed to drain token queue")
	}
	tokens := make([]token, len(items))
	for i, it := range items {
		tokens[i] = it.(tokenItem).token
	}

	expr, _, err := aggregate(tokens, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(scriptassets.Blob(scriptassets.TimeFunctions))
	b.WriteString("\n")
	for _, f := range funcs {
		b.WriteString(f)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `bindings["allowed"] = %s;
return bindings;
`, expr)
	return b.String(), nil
}

// BuildConstraintsNode produces the `constraints` node per spec.md §4.2's
// edge-case policy: an empty tree yields a script-less node with just a
// default branch to `actions`; a non-empty tree's script assigns the
// aggregated result to `allowed`, and its branches are (allowed=true ->
// actions), then a default to reset.
func BuildConstraintsNode(root *ruleir.Constraint, gen *uid.Generator) (*spec.Node, error) {
	source, err := Compile(root, gen)
	if err != nil {
		return nil, err
	}
	if root == nil {
		branch, berr := spec.MakeBranch(nil, "actions", false)
		if berr != nil {
			return nil, xerrors.Wrap(xerrors.InternalError, berr, "constraint: failed to build default branch")
		}
		return spec.MakeStateNode("", []spec.Branch{branch}, false), nil
	}

	allowedBranch, err := spec.MakeBranch(spec.Pattern{"allowed": true}, "actions", false)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.InternalError, err, "constraint: failed to build allowed branch")
	}
	return spec.MakeStateNode(source, []spec.Branch{allowedBranch}, false), nil
}
