package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"mudarabah-backend/internal/application/capacity"
	"mudarabah-backend/internal/application/projection"
	"mudarabah-backend/internal/infrastructure/seed"
	"mudarabah-backend/internal/pkg/currency"
	"mudarabah-backend/internal/pkg/validation"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// --- projectCmd ---

type projectCmd struct {
	out                     io.Writer
	amount, min, max, share string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "projects profit and payout for an amount at given rates" }
func (*projectCmd) Usage() string {
	return `project -amount <pkr> [-min 0.30] [-max 0.40] [-share 0.60]

Prints the investor's projected profit and payout at the minimum and maximum
profit rates.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount invested, in PKR.")
	f.StringVar(&c.min, "min", "0.30", "Minimum business profit rate.")
	f.StringVar(&c.max, "max", "0.40", "Maximum business profit rate.")
	f.StringVar(&c.share, "share", "0.60", "Investor's share of the profit.")
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, ok := validation.ParseAmount(c.amount)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -amount must be a non-negative number.")
		return subcommands.ExitUsageError
	}
	rates := make([]decimal.Decimal, 3)
	for i, s := range []string{c.min, c.max, c.share} {
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: invalid rate %q\n", s)
			return subcommands.ExitUsageError
		}
		rates[i] = d
	}

	r := projection.Project(amount, rates[0], rates[1], rates[2])
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Amount\t%s\n", currency.PKR(amount))
	fmt.Fprintf(w, "Profit\t%s - %s\n", currency.PKR(r.MinProfit), currency.PKR(r.MaxProfit))
	fmt.Fprintf(w, "Payout\t%s - %s\n", currency.PKR(r.MinPayout), currency.PKR(r.MaxPayout))
	w.Flush()
	return subcommands.ExitSuccess
}

// --- unitsCmd ---

type unitsCmd struct {
	out    io.Writer
	amount string
}

func (*unitsCmd) Name() string     { return "units" }
func (*unitsCmd) Synopsis() string { return "shows the LED pool unit economics for an amount" }
func (*unitsCmd) Usage() string {
	return `units -amount <pkr>

Prints the bulbs share, expected profit, monthly profit and total return for
an investment in the LED Bulb Manufacturing pool.
`
}

func (c *unitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount invested, in PKR.")
}

func (c *unitsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, ok := validation.ParseAmount(c.amount)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -amount must be a non-negative number.")
		return subcommands.ExitUsageError
	}
	pool := seed.LEDPool()
	u := projection.UnitEconomics(amount, &pool)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Share\t%d %s\n", u.Units, u.Label)
	fmt.Fprintf(w, "Profit per unit\t%s\n", currency.PKR(u.ProfitPerUnit))
	fmt.Fprintf(w, "Expected profit\t%s\n", currency.PKR(u.TotalProfit))
	fmt.Fprintf(w, "Monthly profit\t%s\n", currency.PKR(u.MonthlyProfit))
	fmt.Fprintf(w, "Total return\t%s\n", currency.PKR(u.TotalReturn))
	w.Flush()
	return subcommands.ExitSuccess
}

// --- poolsCmd ---

type poolsCmd struct {
	out    io.Writer
	amount string
}

func (*poolsCmd) Name() string     { return "pools" }
func (*poolsCmd) Synopsis() string { return "lists the seed pools with projections for an amount" }
func (*poolsCmd) Usage() string {
	return `pools [-amount 100000]

Lists every seed pool with its target, slots and the projection for amount.
`
}

func (c *poolsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "100000", "Amount to project, in PKR.")
}

func (c *poolsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, ok := validation.ParseAmount(c.amount)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: -amount must be a non-negative number.")
		return subcommands.ExitUsageError
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POOL\tTARGET\tSLOTS\tPROFIT\tPAYOUT")
	for _, p := range seed.Pools() {
		pp := projection.ForPool(amount, &p, capacity.SlotsConsumed(amount))
		fmt.Fprintf(w, "%s\t%s\t%d\t%s - %s\t%s - %s\n",
			p.Name, currency.PKR(p.Target), p.Slots,
			currency.PKR(pp.Projection.MinProfit), currency.PKR(pp.Projection.MaxProfit),
			currency.PKR(pp.Projection.MinPayout), currency.PKR(pp.Projection.MaxPayout))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
