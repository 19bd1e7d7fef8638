package satplan

import "strings"

// ActionSchema is a parameterised action as read from an "A" line, before
// grounding. Params holds the schema head's argument terms in declared
// order (a mix of variables and, in the degenerate case, constants);
// the same tokens may recur inside Pre and Eff. A ground action's name is
// formed from Name plus the (substituted) Params, exactly like an atom's
// canonical text.
type ActionSchema struct {
	Name   string
	Params []string
	Pre    []Literal
	Eff    []Literal
}

// Arity returns the number of distinct lowercase-initial variables in the
// schema's parameter list.
func (a ActionSchema) Arity() int {
	return len(a.Variables())
}

// Variables returns the schema's distinct variables in first-seen order,
// scanning Params first and then Pre/Eff (in case a variable is used in the
// body but, degenerately, omitted from the declared head).
func (a ActionSchema) Variables() []string {
	seen := make(map[string]struct{})
	var vars []string
	addTok := func(tok string) {
		if IsVariableToken(tok) {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				vars = append(vars, tok)
			}
		}
	}
	for _, p := range a.Params {
		addTok(p)
	}
	for _, l := range a.Pre {
		for _, v := range variablesOf(l) {
			addTok(v)
		}
	}
	for _, l := range a.Eff {
		for _, v := range variablesOf(l) {
			addTok(v)
		}
	}
	return vars
}

// CanonicalName returns the schema's current name text: the schema name
// followed by its (possibly still-variable) parameters, space-joined, in
// the same style as an atom's canonical text.
func (a ActionSchema) CanonicalName() string {
	if len(a.Params) == 0 {
		return a.Name
	}
	return a.Name + " " + strings.Join(a.Params, " ")
}

// substitute returns a copy of the schema with every occurrence of
// variable v replaced by constant c, in Params, Pre, and Eff.
func (a ActionSchema) substitute(v, c string) ActionSchema {
	out := ActionSchema{Name: a.Name}
	out.Params = substituteTokens(a.Params, v, c)
	out.Pre = make([]Literal, len(a.Pre))
	for i, l := range a.Pre {
		out.Pre[i] = substituteLiteral(l, v, c)
	}
	out.Eff = make([]Literal, len(a.Eff))
	for i, l := range a.Eff {
		out.Eff[i] = substituteLiteral(l, v, c)
	}
	return out
}

func substituteTokens(toks []string, v, c string) []string {
	if len(toks) == 0 {
		return nil
	}
	out := make([]string, len(toks))
	for i, t := range toks {
		if t == v {
			out[i] = c
		} else {
			out[i] = t
		}
	}
	return out
}

func substituteLiteral(l Literal, v, c string) Literal {
	return Literal{Negated: l.Negated, Name: l.Name, Args: substituteTokens(l.Args, v, c)}
}

// ParsedLine is the result of parsing one line of a `.dat` file: exactly
// one of Init, Goal, or Action is populated (or the line was blank).
type ParsedLine struct {
	Blank  bool
	Init   []Literal
	Goal   []Literal
	Action *ActionSchema
}

// ParseLine parses a single `.dat` line per spec:
//
//	I <atom>...   initial-state atoms
//	G <atom>...   goal atoms
//	A <name>(args): <pre>... -> <eff>...
//
// lineNo is used only to decorate MalformedInputError; it has no effect on
// parsing.
func ParseLine(lineNo int, line string) (ParsedLine, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ParsedLine{Blank: true}, nil
	}

	prefix := trimmed[0]
	rest := strings.TrimSpace(trimmed[1:])

	switch prefix {
	case 'I':
		lits, err := parseLiteralList(lineNo, trimmed, rest)
		if err != nil {
			return ParsedLine{}, err
		}
		return ParsedLine{Init: lits}, nil
	case 'G':
		lits, err := parseLiteralList(lineNo, trimmed, rest)
		if err != nil {
			return ParsedLine{}, err
		}
		return ParsedLine{Goal: lits}, nil
	case 'A':
		schema, err := parseActionSchema(lineNo, trimmed, rest)
		if err != nil {
			return ParsedLine{}, err
		}
		return ParsedLine{Action: &schema}, nil
	default:
		return ParsedLine{}, &MalformedInputError{
			Line: lineNo, Text: line,
			Msg: "unrecognised line prefix (expected I, G, or A)",
		}
	}
}

func parseLiteralList(lineNo int, orig, rest string) ([]Literal, error) {
	var lits []Literal
	for _, tok := range tokenizeLiterals(rest) {
		lit, ok := parseLiteral(tok)
		if !ok {
			return nil, &MalformedInputError{Line: lineNo, Text: orig, Msg: "expected atom(args) token list"}
		}
		lits = append(lits, lit)
	}
	return lits, nil
}

// parseActionSchema parses the body following the leading "A" of a schema
// line: "name(args): pre... -> eff...".
func parseActionSchema(lineNo int, orig, rest string) (ActionSchema, error) {
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return ActionSchema{}, &MalformedInputError{Line: lineNo, Text: orig, Msg: "action schema missing ':'"}
	}
	head := strings.TrimSpace(rest[:colon])
	body := rest[colon+1:]

	arrow := strings.Index(body, "->")
	if arrow < 0 {
		return ActionSchema{}, &MalformedInputError{Line: lineNo, Text: orig, Msg: "action schema missing '->'"}
	}
	preStr := body[:arrow]
	effStr := body[arrow+2:]

	open := strings.IndexByte(head, '(')
	if open < 0 || !strings.HasSuffix(head, ")") {
		return ActionSchema{}, &MalformedInputError{Line: lineNo, Text: orig, Msg: "action schema head missing (args)"}
	}
	name := strings.TrimSpace(head[:open])
	if name == "" {
		return ActionSchema{}, &MalformedInputError{Line: lineNo, Text: orig, Msg: "action schema missing name"}
	}
	argStr := head[open+1 : len(head)-1]
	var params []string
	if strings.TrimSpace(argStr) != "" {
		for _, a := range strings.Split(argStr, ",") {
			a = strings.TrimSpace(a)
			if a == "" {
				return ActionSchema{}, &MalformedInputError{Line: lineNo, Text: orig, Msg: "action schema has an empty parameter"}
			}
			params = append(params, a)
		}
	}

	pre, err := parseLiteralList(lineNo, orig, preStr)
	if err != nil {
		return ActionSchema{}, err
	}
	eff, err := parseLiteralList(lineNo, orig, effStr)
	if err != nil {
		return ActionSchema{}, err
	}

	return ActionSchema{Name: name, Params: params, Pre: pre, Eff: eff}, nil
}
