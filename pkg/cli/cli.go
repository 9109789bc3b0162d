package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

type Globals struct {
	LogLevel  string `help:"Log level" default:"warn" enum:"debug,info,warn,error"`
	LogFormat string `help:"Log format" default:"text" enum:"text,json"`
	Color     bool   `help:"Colorize output" negatable:"" default:"true"`
}

// Root is the command line of the ternary tool.
type Root struct {
	Globals

	Demo    DemoCmd    `cmd:"" help:"Run the abc/def/abcdef walkthrough"`
	Lookup  LookupCmd  `cmd:"" help:"Look up the longest stored prefix of each query"`
	Scan    ScanCmd    `cmd:"" help:"Split a text into the longest stored keys"`
	Dump    DumpCmd    `cmd:"" help:"Print the shape of the tree built from the input files"`
	Entries EntriesCmd `cmd:"" help:"Write all entries in ascending key order"`
}

var CLI Root

// Context is passed to every command's Run method.
type Context struct {
	Log *zap.Logger
	Out io.Writer

	match *color.Color
	miss  *color.Color
	label *color.Color
}

func NewContext(g Globals, out io.Writer, logOut io.Writer) *Context {
	ctx := &Context{
		Log:   NewLogger(logOut, g.LogFormat, g.LogLevel),
		Out:   out,
		match: color.New(color.FgGreen),
		miss:  color.New(color.FgRed),
		label: color.New(color.FgBlue, color.Bold),
	}
	if !g.Color {
		ctx.match.DisableColor()
		ctx.miss.DisableColor()
		ctx.label.DisableColor()
	}
	return ctx
}

// Execute parses args and runs the selected command, writing results to out
// and log output to logOut.
func Execute(args []string, out io.Writer, logOut io.Writer) error {
	var root Root
	parser, err := kong.New(&root,
		kong.Name("ternary"),
		kong.Description("Ternary search tree toolbox"),
		kong.Writers(out, out),
		kong.UsageOnError())
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	ctx := NewContext(root.Globals, out, logOut)
	defer ctx.Log.Sync()
	return kctx.Run(ctx)
}
