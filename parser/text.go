package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/liznear/almanac-from-scratch/table"
	"go.uber.org/multierr"
)

type almanacFile struct {
	Seeds []uint64    `"seeds" ":" @Number*`
	Maps  []*mapBlock `@@*`
}

// mapBlock is a "<name> map:" header and its rules.
type mapBlock struct {
	Pos   lexer.Position
	Name  string      `@Ident "map" ":"`
	Rules []*ruleLine `@@*`
}

type ruleLine struct {
	Pos    lexer.Position
	Dest   uint64 `@Number`
	Src    uint64 `@Number`
	Length uint64 `@Number`
}

// Line breaks carry no meaning: rules are read three numbers at a time and a
// table ends where the next header starts.
var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var almanacParser = participle.MustBuild[almanacFile](
	participle.Lexer(almanacLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseString parses the text form of an almanac.
func ParseString(input string) (*Almanac, error) {
	return parseText("", []byte(input))
}

func parseText(filename string, input []byte) (*Almanac, error) {
	f, err := almanacParser.ParseBytes(filename, input)
	if err != nil {
		return nil, fmt.Errorf("almanac: fail to parse: %w", err)
	}
	return f.toAlmanac()
}

// toAlmanac builds the tables, reporting every bad rule rather than only the
// first one.
func (f *almanacFile) toAlmanac() (*Almanac, error) {
	ret := &Almanac{Seeds: f.Seeds}
	var errs error
	for _, m := range f.Maps {
		rules := make([]table.Rule, 0, len(m.Rules))
		for _, l := range m.Rules {
			r, err := table.NewRule(l.Dest, l.Src, l.Length)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %s: %w", l.Pos, m.Name, err))
				continue
			}
			rules = append(rules, r)
		}
		ret.Tables = append(ret.Tables, table.New(m.Name, rules...))
	}
	if errs != nil {
		return nil, fmt.Errorf("almanac: invalid rules: %w", errs)
	}
	return ret, nil
}
