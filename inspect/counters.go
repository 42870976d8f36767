package inspect

import (
	"context"
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"

	"pcss/counters"
	"pcss/css"
	"pcss/state"
)

// Counters prints marker text (prefix, representation and suffix) for a
// range of values, using
// the predefined styles plus any @counter-style rules from the given
// stylesheets.
func Counters(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() < 1 {
		return fmt.Errorf("no counter style name given")
	}
	name := cmd.Args().Get(0)
	from, to := 1, 20
	var err error
	if cmd.NArg() > 1 {
		if from, err = strconv.Atoi(cmd.Args().Get(1)); err != nil {
			return fmt.Errorf("malformed range start: %w", err)
		}
	}
	if cmd.NArg() > 2 {
		if to, err = strconv.Atoi(cmd.Args().Get(2)); err != nil {
			return fmt.Errorf("malformed range end: %w", err)
		}
	}

	var rules []*css.CounterStyleRule
	for _, path := range env.AuthorStylesheets {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet '%s': %w", path, err)
		}
		parser := css.NewParser(css.ParserContext{Origin: css.OriginAuthor}, env.Log)
		for _, r := range parser.ParseSheet(data) {
			if r.CounterStyle != nil {
				rules = append(rules, r.CounterStyle)
			}
		}
	}
	m := counters.NewMap(rules, counters.UserAgentMap(), env.Log)

	for value := from; value <= to; value++ {
		fmt.Printf("%d\t%s\n", value, m.MarkerText(value, name))
	}
	return nil
}
