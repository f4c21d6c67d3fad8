package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tamirms/handrank"
	"github.com/tamirms/handrank/card"
	"github.com/tamirms/handrank/deck"
)

// BuildCmd builds the tables and writes them to a file.
type BuildCmd struct {
	Out string `short:"o" help:"Table file to write (overrides config)"`
}

func (c *BuildCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	out := cfg.Artifact
	if c.Out != "" {
		out = c.Out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	ev, err := handrank.Build(ctx, cfg.BuildOptions(logger)...)
	if err != nil {
		return err
	}
	if err := ev.WriteFile(out); err != nil {
		return err
	}
	st, err := handrank.GetStats(out)
	if err != nil {
		return err
	}
	logger.Info("wrote table file", "path", out, "bytes", st.FileSize,
		"keys", st.TotalKeys, "bits/key", fmt.Sprintf("%.2f", st.BitsPerKey()), "took", time.Since(start))
	return nil
}

// VerifyCmd checks a table file.
type VerifyCmd struct {
	File string `arg:"" type:"existingfile" help:"Table file to check"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	ev, err := handrank.Open(c.File)
	if err != nil {
		fmt.Println(badStyle.Render("FAIL") + " " + err.Error())
		return err
	}
	defer ev.Close()

	if err := ev.Verify(); err != nil {
		fmt.Println(badStyle.Render("FAIL") + " " + err.Error())
		return err
	}
	fmt.Println(okStyle.Render("OK") + " " + c.File)
	printStats(ev.Stats())
	return nil
}

func printStats(st *handrank.Stats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("table")+"\tkeys\tbuckets\tslots\tbytes\tbits/key")
	for _, t := range st.Tables {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2f\n",
			t.ID, t.NumKeys, t.NumBuckets, t.NumSlots, t.SizeBytes, t.BitsPerKey())
	}
	fmt.Fprintf(w, "%s\t%d\t\t\t%d\t%.2f\n", headerStyle.Render("total"), st.TotalKeys, st.SizeBytes, st.BitsPerKey())
	w.Flush()
}

// TablesFlag selects where the tables come from.
type TablesFlag struct {
	Tables string `short:"t" help:"Table file to open; built in memory when unset or missing (defaults to config artifact)"`
}

// evaluator opens the table file if it exists and builds otherwise.
func (f *TablesFlag) evaluator(g *Globals) (*handrank.Evaluator, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel)
	path := cfg.Artifact
	if f.Tables != "" {
		path = f.Tables
	}
	ev, err := handrank.Open(path)
	if err == nil {
		logger.Debug("opened table file", "path", path)
		return ev, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	logger.Info("table file not found, building in memory", "path", path)
	return handrank.Build(context.Background(), cfg.BuildOptions(logger)...)
}

// EvalCmd ranks hands.
type EvalCmd struct {
	TablesFlag
	Variant string   `short:"V" default:"standard" help:"Ranking rules: standard, ace-five, deuce-seven, six-plus, badugi, baduci"`
	Hands   []string `arg:"" help:"Hands to rank, e.g. 'Ah Kh Qh Jh Th'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	v, err := handrank.ParseVariant(c.Variant)
	if err != nil {
		return err
	}
	hands := make([]card.Hand, len(c.Hands))
	for i, s := range c.Hands {
		if hands[i], err = card.ParseHand(s); err != nil {
			return err
		}
		if v == handrank.SixPlus && !hands[i].IsSixPlus() {
			return fmt.Errorf("%q holds cards below Six", s)
		}
	}

	ev, err := c.evaluator(g)
	if err != nil {
		return err
	}
	defer ev.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, h := range hands {
		r, cat := ev.Rank(v, h)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(prettyHand(h)), styleCategory(cat),
			handrank.Describe(v, r), dimStyle.Render(fmt.Sprintf("#%d", r)))
	}
	return w.Flush()
}

// OmahaCmd ranks an Omaha hand.
type OmahaCmd struct {
	TablesFlag
	Lo    bool   `help:"Rank the ace-to-five low, eight or better"`
	Hole  string `required:"" help:"Hole cards, 2 or more"`
	Board string `required:"" help:"Board cards, 3 to 5"`
}

func (c *OmahaCmd) Run(g *Globals) error {
	hole, err := card.ParseHand(c.Hole)
	if err != nil {
		return err
	}
	board, err := card.ParseHand(c.Board)
	if err != nil {
		return err
	}
	if !hole.IsDisjoint(board) {
		return fmt.Errorf("hole %s and board %s share cards", hole, board)
	}

	ev, err := c.evaluator(g)
	if err != nil {
		return err
	}
	defer ev.Close()

	prefix := handStyle.Render(prettyHand(hole)) + " | " + handStyle.Render(prettyHand(board)) + "  "
	if c.Lo {
		r := ev.OmahaLo(hole, board).LoEight()
		if r == 0 {
			fmt.Println(prefix + badStyle.Render("no low"))
			return nil
		}
		fmt.Println(prefix + r.String())
		return nil
	}
	r := ev.Omaha(hole, board)
	fmt.Println(prefix + styleCategory(r.Category()) + "  " + r.String())
	return nil
}

// DealCmd deals from a seeded deck.
type DealCmd struct {
	Seed   uint64 `help:"Deck seed"`
	Phrase string `help:"Derive the seed from a phrase instead"`
	Short  bool   `help:"Use the 36-card six-plus deck"`
	Count  int    `short:"n" default:"5" help:"Cards per hand"`
	Hands  int    `default:"1" help:"Number of hands"`
}

func (c *DealCmd) Run(g *Globals) error {
	seed := c.Seed
	if c.Phrase != "" {
		seed = deck.SeedFromPhrase(c.Phrase)
	}
	d := deck.NewFull(seed)
	if c.Short {
		d = deck.NewShort(seed)
	}
	for range c.Hands {
		h, err := d.DealHand(c.Count)
		if err != nil {
			return err
		}
		fmt.Println(h.String())
	}
	return nil
}

// BenchCmd measures lookups per second.
type BenchCmd struct {
	TablesFlag
	Hands int    `default:"1000000" help:"Random seven-card hands per variant"`
	Seed  uint64 `default:"1" help:"Deck seed for the hands"`
}

func (c *BenchCmd) Run(g *Globals) error {
	ev, err := c.evaluator(g)
	if err != nil {
		return err
	}
	defer ev.Close()

	full := dealHands(deck.NewFull(c.Seed), c.Hands)
	short := dealHands(deck.NewShort(c.Seed), c.Hands)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("variant")+"\tns/hand\thands/s")
	for _, v := range handrank.Variants {
		hands := full
		if v == handrank.SixPlus {
			hands = short
		}
		var sink uint16
		start := time.Now()
		for _, h := range hands {
			r, _ := ev.Rank(v, h)
			sink ^= r
		}
		elapsed := time.Since(start)
		log.Debug("bench", "variant", v, "sink", sink)
		perHand := float64(elapsed.Nanoseconds()) / float64(len(hands))
		fmt.Fprintf(w, "%s\t%.1f\t%.0f\n", v, perHand, float64(len(hands))/elapsed.Seconds())
	}
	return w.Flush()
}

func dealHands(d *deck.Deck, n int) []card.Hand {
	hands := make([]card.Hand, n)
	for i := range hands {
		if d.Len() < card.MaxHandSize {
			d.Reset()
		}
		hands[i], _ = d.DealHand(card.MaxHandSize)
	}
	return hands
}

func prettyHand(h card.Hand) string {
	var buf [card.MaxHandSize]card.Card
	cards := h.Cards(&buf)
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}
