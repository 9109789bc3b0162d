package cli

import (
	"fmt"

	"github.com/khalid-nowaf/ternary/pkg/trifurcate"
	"go.uber.org/zap"
)

type LookupCmd struct {
	Source
	Queries []string `name:"query" short:"q" required:"" help:"Text to look up, repeatable"`
}

// Run prints, for every query, the longest stored key the query starts with.
func (cmd *LookupCmd) Run(ctx *Context) error {
	dict, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	for _, q := range cmd.Queries {
		prefix, value, ok := dict.FindPrefix(q)
		if !ok {
			fmt.Fprintf(ctx.Out, "%s: %s\n", q, ctx.miss.Sprint("not found"))
			continue
		}
		fmt.Fprintf(ctx.Out, "%s: %s => %s (%d)\n", q, ctx.match.Sprint(prefix), value, len([]rune(prefix)))
	}
	return nil
}

type ScanCmd struct {
	Source
	Text string `required:"" help:"Text to split into stored keys"`
}

func (cmd *ScanCmd) Run(ctx *Context) error {
	dict, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	tokens := dict.Tokenize(cmd.Text)
	for _, tok := range tokens {
		fmt.Fprintf(ctx.Out, "[%d,%d) %s => %s\n", tok.Start, tok.End, ctx.match.Sprint(tok.Key), tok.Value)
	}
	ctx.Log.Info("scanned text", zap.Int("runes", len([]rune(cmd.Text))), zap.Int("tokens", len(tokens)))
	return nil
}

type EntriesCmd struct {
	Source
	Format string `help:"Output format" default:"csv" enum:"csv,tsv,json"`
}

func (cmd *EntriesCmd) Run(ctx *Context) error {
	dict, stats, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	if err := newWriter(cmd.Format, &cmd.Source, stats).Write(dict, ctx.Out); err != nil {
		return err
	}
	ctx.Log.Info("wrote entries",
		zap.Int("input", stats.Input), zap.Int("duplicates", stats.Duplicates), zap.Int("output", stats.Output))
	return nil
}

type DumpCmd struct {
	Source
}

func (cmd *DumpCmd) Run(ctx *Context) error {
	dict, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	root := dict.Tree().Root()
	if root == nil {
		fmt.Fprintln(ctx.Out, "(empty)")
		return nil
	}
	fmt.Fprint(ctx.Out, renderTree(root, ctx).String())
	fmt.Fprintf(ctx.Out, "keys: %d, weight: %d, height: %d\n",
		dict.Len(), trifurcate.Weight(root), trifurcate.Height(root))
	return nil
}
