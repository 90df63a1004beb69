package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"realy.lol/nostrcore/bech32encoding"
	"realy.lol/nostrcore/builder"
	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/config"
	"realy.lol/nostrcore/errorf"
	"realy.lol/nostrcore/event"
	"realy.lol/nostrcore/hex"
	"realy.lol/nostrcore/keys"
	"realy.lol/nostrcore/kind"
	"realy.lol/nostrcore/log"
	"realy.lol/nostrcore/p256k/sign"
	"realy.lol/nostrcore/signer"
	"realy.lol/nostrcore/timestamp"
	"realy.lol/nostrcore/units"
	"realy.lol/nostrcore/verify"
)

// maxEventSize bounds a single event of input, a file for sign or id or a
// line for verify.
const maxEventSize = units.MiB

type host struct {
	cfg   *config.C
	in    io.Reader
	out   io.Writer
	clock timestamp.Clock
}

// run dispatches the selected subcommand. The exit code is nonzero when
// verification rejected something even though nothing failed.
func (h *host) run(ctx context.Context, a *args) (code int, err error) {
	switch {
	case a.Generate != nil:
		err = h.generate()
	case a.Npub != nil:
		err = h.toNpub(a.Npub.Pubkey)
	case a.Hex != nil:
		err = h.toHex(a.Hex.Npub)
	case a.Build != nil:
		err = h.build(a.Build)
	case a.Sign != nil:
		err = h.signEvent(a.Sign)
	case a.ID != nil:
		code, err = h.computeID(a.ID.File)
	case a.Verify != nil:
		var rejected int
		if rejected, err = h.verifyStream(ctx, a.Verify.File); err == nil && rejected > 0 {
			code = 1
		}
	case a.Now != nil:
		_, err = fmt.Fprintln(h.out, timestamp.Now().U64())
	case a.Env != nil:
		h.cfg.PrintEnv(h.out)
	}
	return
}

func (h *host) open(file string) (r io.ReadCloser, err error) {
	if file == "" || file == "-" {
		return io.NopCloser(h.in), nil
	}
	if r, err = os.Open(file); chk.E(err) {
		return
	}
	return
}

func (h *host) readAll(file string) (b []byte, err error) {
	var r io.ReadCloser
	if r, err = h.open(file); err != nil {
		return
	}
	defer r.Close()
	if b, err = io.ReadAll(io.LimitReader(r, maxEventSize+1)); chk.E(err) {
		return
	}
	if len(b) > maxEventSize {
		b, err = nil, errorf.D("input is larger than %d bytes", maxEventSize)
	}
	return
}

func (h *host) writeJSON(v any) (err error) {
	enc := json.NewEncoder(h.out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// generated is the output of generate.
type generated struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
	Npub      string `json:"npub"`
	Nsec      string `json:"nsec"`
}

func (h *host) generate() (err error) {
	var pk keys.PublicKey
	var sk keys.SecretKey
	if pk, sk, err = keys.Generate(); chk.E(err) {
		return
	}
	defer sk.Zero()
	g := generated{PublicKey: pk.Hex(), SecretKey: sk.Hex()}
	if g.Npub, err = pk.Bech32(); chk.E(err) {
		return
	}
	if g.Nsec, err = sk.Bech32(); chk.E(err) {
		return
	}
	return h.writeJSON(g)
}

func (h *host) toNpub(s string) (err error) {
	var pk keys.PublicKey
	if pk, err = keys.ParsePublicKey(s); err != nil {
		return errorf.D("invalid public key: %w", err)
	}
	var npub string
	if npub, err = pk.Bech32(); chk.E(err) {
		return
	}
	_, err = fmt.Fprintln(h.out, npub)
	return
}

func (h *host) toHex(s string) (err error) {
	var pk keys.PublicKey
	if pk, err = keys.FromBech32(s); err != nil {
		return errorf.D("invalid npub: %w", err)
	}
	_, err = fmt.Fprintln(h.out, pk.Hex())
	return
}

// splitTag turns name,value,... into the fields of a tag. An empty string is a
// tag with no fields.
func splitTag(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (h *host) build(c *BuildCmd) (err error) {
	var pk keys.PublicKey
	if pk, err = keys.ParsePublicKey(c.Pubkey); err != nil {
		return errorf.D("invalid public key: %w", err)
	}
	b := builder.New(kind.New(c.Kind), c.Content)
	switch {
	case c.CreatedAt != nil:
		b.WithClock(timestamp.Fixed(*c.CreatedAt))
	case h.clock != nil:
		b.WithClock(h.clock)
	}
	for _, t := range c.Tags {
		if h.cfg.StrictTags {
			if err = b.TryAddTag(splitTag(t)...); err != nil {
				return errorf.D("tag %q: %w", t, err)
			}
			continue
		}
		b.AddTagFields(splitTag(t)...)
	}
	u := b.Finalize(pk)
	// the id is filled in and the signature left empty, ready for a signer
	ev := &event.T{Unsigned: *u, ID: u.GetIDBytes()}
	_, err = fmt.Fprintf(h.out, "%s\n", ev.Serialize())
	return
}

func (h *host) signEvent(c *SignCmd) (err error) {
	var b []byte
	if b, err = h.readAll(c.File); err != nil {
		return
	}
	u := &event.Unsigned{}
	if err = u.Unmarshal(b); err != nil {
		return errorf.D("invalid event: %w", err)
	}
	var s signer.I
	if s, err = sign.FromSecret(c.Secret); err != nil {
		return errorf.D("invalid secret key: %w", err)
	}
	defer s.Zero()
	if !bytes.Equal(s.Pub(), u.Pubkey[:]) {
		// the signer is the author, whatever the input said
		log.W.F("event pubkey %s replaced by the signer's", u.Pubkey.Hex())
		if u.Pubkey, err = keys.FromBytes(s.Pub()); chk.E(err) {
			return
		}
	}
	var ev *event.T
	if ev, err = u.Sign(s); chk.E(err) {
		return
	}
	_, err = fmt.Fprintf(h.out, "%s\n", ev.Serialize())
	return
}

// idResult is the output of id.
type idResult struct {
	ID    string `json:"id"`
	Note  string `json:"note"`
	Match bool   `json:"match"`
}

func (h *host) computeID(file string) (code int, err error) {
	var b []byte
	if b, err = h.readAll(file); err != nil {
		return
	}
	ev := event.New()
	if err = ev.Unmarshal(b); err != nil {
		return 0, errorf.D("invalid event: %w", err)
	}
	id := ev.ComputeID()
	r := idResult{ID: hex.Enc(id[:]), Match: ev.VerifyID()}
	if r.Note, err = bech32encoding.EventIDToNote(id[:]); chk.E(err) {
		return
	}
	if !r.Match {
		code = 1
	}
	err = h.writeJSON(r)
	return
}

// result is one line of verify output.
type result struct {
	Line   int    `json:"line"`
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func checkLine(line []byte, rules *verify.Rules) (r result, ok bool) {
	ev := event.New()
	if err := ev.Unmarshal(line); err != nil {
		r.Status, r.Error = "rejected: malformed", err.Error()
		return
	}
	r.ID = ev.IDString()
	s, err := verify.Accept(ev, rules)
	r.Status = s.String()
	if err != nil {
		if s.Trusted() {
			r.Status = "rejected: kind rule"
		}
		r.Error = err.Error()
		return
	}
	return r, true
}

// verifyStream checks every line of the input in parallel, bounded by the configured
// number of workers, and prints a result per line in input order. Blank lines
// are skipped.
func (h *host) verifyStream(ctx context.Context, file string) (rejected int, err error) {
	var r io.ReadCloser
	if r, err = h.open(file); err != nil {
		return
	}
	defer r.Close()
	var lines [][]byte
	var numbers []int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*units.KiB), maxEventSize)
	for n := 1; scanner.Scan(); n++ {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}
		lines = append(lines, bytes.Clone(scanner.Bytes()))
		numbers = append(numbers, n)
	}
	if err = scanner.Err(); chk.E(err) {
		return
	}
	rules := verify.Standard()
	results := make([]result, len(lines))
	accepted := make([]bool, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(h.cfg.Workers, 1))
	for i := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], accepted[i] = checkLine(lines[i], rules)
			results[i].Line = numbers[i]
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	log.D.F("verified %d events with %d workers", len(lines), h.cfg.Workers)
	for i := range results {
		if !accepted[i] {
			rejected++
		}
		if err = h.writeJSON(results[i]); err != nil {
			return
		}
	}
	return
}
