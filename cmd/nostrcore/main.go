// Package main is nostrcore, a command line binding of the event core: key
// generation and conversion, building and signing events, computing ids and
// verifying batches of events.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/alexflint/go-arg"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/config"
	"realy.lol/nostrcore/log"
	"realy.lol/nostrcore/lol"
)

type GenerateCmd struct{}

type NpubCmd struct {
	Pubkey string `arg:"positional,required" help:"public key in hex"`
}

type HexCmd struct {
	Npub string `arg:"positional,required" help:"public key as npub"`
}

type BuildCmd struct {
	Kind      uint16   `arg:"-k,--kind" default:"1" help:"event kind"`
	Content   string   `arg:"-c,--content" help:"event content"`
	Tags      []string `arg:"-t,--tag,separate" help:"tag as comma separated fields name,value,... (repeatable)"`
	Pubkey    string   `arg:"-p,--pubkey,required" help:"author public key, hex or npub"`
	CreatedAt *uint64  `arg:"--created-at" help:"unix timestamp, default is now"`
}

type SignCmd struct {
	Secret string `arg:"-s,--secret,required" help:"secret key, hex or nsec"`
	File   string `arg:"positional" default:"-" help:"unsigned event JSON, - for stdin"`
}

type IDCmd struct {
	File string `arg:"positional" default:"-" help:"event JSON, - for stdin"`
}

type VerifyCmd struct {
	File string `arg:"positional" default:"-" help:"events, one JSON object per line, - for stdin"`
}

type NowCmd struct{}

type EnvCmd struct{}

type args struct {
	Generate *GenerateCmd `arg:"subcommand:generate" help:"generate a new key pair"`
	Npub     *NpubCmd     `arg:"subcommand:npub" help:"convert a hex public key to npub"`
	Hex      *HexCmd      `arg:"subcommand:hex" help:"convert an npub to a hex public key"`
	Build    *BuildCmd    `arg:"subcommand:build" help:"build an unsigned event and compute its id"`
	Sign     *SignCmd     `arg:"subcommand:sign" help:"sign an unsigned event"`
	ID       *IDCmd       `arg:"subcommand:id" help:"compute and check the id of an event"`
	Verify   *VerifyCmd   `arg:"subcommand:verify" help:"verify the id and signature of events"`
	Now      *NowCmd      `arg:"subcommand:now" help:"print the current unix timestamp"`
	Env      *EnvCmd      `arg:"subcommand:env" help:"print the configuration as a shell script"`
}

func (args) Description() string {
	return "nostrcore - NIP-01 event core\n"
}

func main() {
	defer reportPanic()
	var err error
	var cfg *config.C
	if cfg, err = config.New(); chk.E(err) {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		os.Exit(2)
	}
	lol.SetOutput(os.Stderr)
	cfg.Apply()
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		cfg.PrintHelp("nostrcore", os.Stderr)
		os.Exit(2)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	h := &host{cfg: cfg, in: os.Stdin, out: os.Stdout}
	var code int
	if code, err = h.run(ctx, &a); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		if code == 0 {
			code = 1
		}
	}
	cancel()
	os.Exit(code)
}

// reportPanic is the one panic hook of the process, it is deferred first thing
// in main so it covers everything main calls.
func reportPanic() {
	if r := recover(); r != nil {
		log.F.F("panic: %v\n%s", r, debug.Stack())
		os.Exit(3)
	}
}
