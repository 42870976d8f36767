package inspect

import (
	"context"
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"

	"pcss/css"
	"pcss/state"
	"pcss/utils/debug"
)

// Tokens dumps the token stream of a stylesheet.
func Tokens(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() < 1 {
		return fmt.Errorf("no stylesheet to process")
	}
	data, err := os.ReadFile(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}

	tw := debug.NewTreeWriter()
	for _, t := range css.Tokenize(data) {
		switch t.Kind {
		case css.TokenEOF:
			tw.Line(0, "eof")
		case css.TokenWhitespace:
			tw.Line(0, "whitespace")
		case css.TokenDelim:
			tw.Line(0, "delim %q", string(t.Delim))
		case css.TokenNumber, css.TokenPercentage:
			tw.Line(0, "%s %s", t.Kind, formatFloat(t.Value))
		case css.TokenDimension:
			tw.Line(0, "dimension %s%s", formatFloat(t.Value), t.Unit)
		case css.TokenUnicodeRange:
			tw.Line(0, "unicode-range u+%x-%x", t.RangeFrom, t.RangeTo)
		default:
			if t.Data != "" {
				tw.Line(0, "%s %s", t.Kind, strconv.Quote(t.Data))
			} else {
				tw.Line(0, "%s", t.Kind)
			}
		}
	}
	fmt.Print(tw.String())

	if env.Rpt != nil {
		env.Rpt.StoreData("tokens.txt", []byte(tw.String()))
	}
	return nil
}
