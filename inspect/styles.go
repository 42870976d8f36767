package inspect

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"pcss/css"
	"pcss/dom"
	"pcss/state"
	"pcss/style"
	"pcss/utils/debug"
)

// propertyDumpList is the subset of resolved properties the styles
// command prints for every element.
var propertyDumpList = []css.PropertyID{
	css.PropDisplay, css.PropPosition, css.PropFloat, css.PropColor,
	css.PropBackgroundColor, css.PropMarginTop, css.PropMarginRight,
	css.PropMarginBottom, css.PropMarginLeft, css.PropWidth, css.PropHeight,
	css.PropLineHeight, css.PropTextAlign, css.PropListStyleType,
}

// Styles parses an HTML document plus the configured stylesheets and
// prints the computed style tree, optionally restricted to elements
// matching a selector.
func Styles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log

	if cmd.NArg() < 1 {
		return fmt.Errorf("no document to process")
	}
	docPath := cmd.Args().Get(0)
	selectorText := cmd.Args().Get(1)

	var filter []css.Selector
	if selectorText != "" {
		list, ok := css.ParseSelectorText(selectorText, true)
		if !ok {
			return fmt.Errorf("malformed selector '%s'", selectorText)
		}
		filter = list
	}

	f, err := os.Open(docPath)
	if err != nil {
		return fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	reader, err := charset.NewReader(f, "text/html")
	if err != nil {
		return fmt.Errorf("unable to detect document encoding: %w", err)
	}
	doc, err := html.Parse(reader)
	if err != nil {
		return fmt.Errorf("unable to parse document: %w", err)
	}

	engine := style.NewEngine(style.Options{
		Viewport: env.Cfg.Viewport.Viewport(),
		BaseURL:  env.Cfg.Document.BaseURL,
		HTML:     true,
		Loader:   fileLoader(log),
	}, log)

	for _, path := range env.UserStylesheets {
		if err := addSheet(engine, path, css.OriginUser); err != nil {
			return err
		}
	}
	for _, path := range env.AuthorStylesheets {
		if err := addSheet(engine, path, css.OriginAuthor); err != nil {
			return err
		}
	}
	collectDocumentStylesheets(doc, engine, log)

	root := dom.WrapHTML(doc)
	if root == nil {
		return fmt.Errorf("document has no root element")
	}

	tw := debug.NewTreeWriter()
	dumpElement(engine, root, nil, 0, filter, tw)
	fmt.Print(tw.String())

	if env.Rpt != nil {
		env.Rpt.StoreData("styles.txt", []byte(tw.String()))
	}
	return nil
}

func addSheet(engine *style.Engine, path string, origin css.Origin) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet '%s': %w", path, err)
	}
	engine.AddStylesheet(data, origin)
	return nil
}

func fileLoader(log *zap.Logger) style.Loader {
	return func(href string) ([]byte, error) {
		log.Debug("Loading imported stylesheet", zap.String("href", href))
		return os.ReadFile(href)
	}
}

// collectDocumentStylesheets indexes the content of every style
// element in document order.
func collectDocumentStylesheets(n *html.Node, engine *style.Engine, log *zap.Logger) {
	if n.Type == html.ElementNode && n.Data == "style" {
		var text string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				text += c.Data
			}
		}
		log.Debug("Adding document stylesheet", zap.Int("bytes", len(text)))
		engine.AddStylesheet([]byte(text), css.OriginAuthor)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectDocumentStylesheets(c, engine, log)
	}
}

func dumpElement(engine *style.Engine, el dom.Element, parent *style.Style, depth int, filter []css.Selector, tw *debug.TreeWriter) {
	s := engine.StyleForElement(el, parent)

	selected := len(filter) == 0
	for _, sel := range filter {
		if style.MatchSelector(el, css.PseudoNone, sel) {
			selected = true
			break
		}
	}
	if selected {
		tw.Line(depth, "<%s> font-size=%s", el.TagName(), formatFloat(s.FontSize()))
		props := make(map[string]string)
		for _, id := range propertyDumpList {
			if v := s.Get(id); v != nil {
				props[string(id)] = FormatValue(v)
			}
		}
		tw.Properties(depth+1, props)
	}

	for child := el.FirstChild(); child != nil; child = child.NextSibling() {
		dumpElement(engine, child, s, depth+1, filter, tw)
	}
}
