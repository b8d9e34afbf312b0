// Package crypto contains the crypto command and its subcommands.
package crypto

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/humanize"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/apitour/apitour-cli/internal/tickers"
	"github.com/schollz/progressbar/v3"
)

func init() {
	cmd := root.Command("crypto", "Look up cryptocurrency prices")

	priceCmd := cmd.Command("price", "Show the price of a coin")
	coin := priceCmd.Arg("coin", "Coin name (e.g. bitcoin)").Required().String()
	priceCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Price(root.Context(), tour, log.Log, *coin)
		return nil
	})

	topCmd := cmd.Command("top", "Show the top coins by market cap")
	limit := topCmd.Flag("limit", "Number of coins to show").Default("5").Int()
	topCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Top(root.Context(), tour, log.Log, *limit)
		return nil
	})

	compareCmd := cmd.Command("compare", "Compare the prices of all the known coins")
	compareCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Compare(root.Context(), tour, log.Log, os.Stderr)
		return nil
	})
}

func newClient(tour apitour.TourCLI) *tickers.Client {
	return tickers.NewClient(tour.HTTPConfig(), tour.Config().Endpoints.Tickers)
}

// Price fetches and prints the ticker of the given coin.
func Price(ctx context.Context, tour apitour.TourCLI, logger log.Interface, coin string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "crypto price", coin)
	res := pipeline.Classify(newClient(tour).Ticker(ctx, tour.Tables().CoinID(coin)))
	if !inv.Check(res.Kind, res.Reason) {
		if res.Kind == pipeline.KindMiss {
			logger.Infof("available coins: %s", strings.Join(tour.Tables().CoinNames(), ", "))
		}
		return res.Kind
	}
	ticker := res.Value.Ticker
	usd := ticker.USD()

	output.Fields(logger, fmt.Sprintf("%s (%s)", ticker.Name, ticker.Symbol), []output.Pair{
		output.P("Price", humanize.Money(usd.Price)),
		output.P("Market Cap", humanize.Compact(usd.MarketCap)),
		output.P("24h Volume", humanize.Compact(usd.Volume24h)),
		{},
		output.P("1h Change", humanize.SignedPercent(usd.PercentChange1h)),
		output.P("24h Change", humanize.SignedPercent(usd.PercentChange24h)),
		output.P("7d Change", humanize.SignedPercent(usd.PercentChange7d)),
	})
	inv.Save("crypto", coin, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

var topColumns = []output.Column{
	{Title: "Rank", Width: 6},
	{Title: "Name", Width: 15},
	{Title: "Price", Width: 15, Right: true},
	{Title: "24h Change", Width: 10},
}

// Top fetches and prints the first limit coins by market cap.
func Top(ctx context.Context, tour apitour.TourCLI, logger log.Interface, limit int) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "crypto top", strconv.Itoa(limit))
	res := pipeline.Classify(newClient(tour).Top(ctx, limit))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}

	var rows [][]string
	for _, t := range res.Value.Tickers {
		usd := t.USD()
		rows = append(rows, []string{
			strconv.Itoa(t.Rank),
			t.Name,
			humanize.Money(usd.Price),
			humanize.SignedPercent(usd.PercentChange24h),
		})
	}
	title := fmt.Sprintf("Top %d Cryptocurrencies by Market Cap", len(rows))
	output.Grid(logger, title, topColumns, rows)
	inv.Save("crypto", "top", res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

var compareColumns = []output.Column{
	{Title: "Name", Width: 15},
	{Title: "Symbol", Width: 10},
	{Title: "Price", Width: 18, Right: true},
	{Title: "24h Change", Width: 10},
}

// Compare fetches every known coin in turn and prints a comparison
// table. Coins that cannot be fetched are shown as N/A. Progress is
// written to progress.
func Compare(ctx context.Context, tour apitour.TourCLI, logger log.Interface, progress io.Writer) pipeline.Kind {
	coins := tour.Tables().Coins()
	inv := apitour.Begin(tour, logger, "crypto compare", strconv.Itoa(len(coins)))
	client := newClient(tour)

	bar := progressbar.NewOptions64(
		int64(len(coins)),
		progressbar.OptionSetDescription("fetching tickers"),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(progress, "\n")
		}),
		progressbar.OptionSetWriter(progress),
	)

	var (
		rows      [][]string
		succeeded int
		last      pipeline.Result[*tickers.Single]
	)
	for idx := 0; idx < len(coins) && ctx.Err() == nil; idx++ {
		coin := coins[idx]
		res := pipeline.Classify(client.Ticker(ctx, coin.Slug))
		bar.Add(1)
		if !res.OK() {
			logger.Debugf("crypto compare: %s: %s", coin.Name, res.Reason)
			rows = append(rows, []string{humanize.Title(coin.Name), "N/A", "N/A", "N/A"})
			last = res
			continue
		}
		succeeded++
		usd := res.Value.Ticker.USD()
		rows = append(rows, []string{
			res.Value.Ticker.Name,
			res.Value.Ticker.Symbol,
			humanize.Money(usd.Price),
			humanize.SignedPercent(usd.PercentChange24h),
		})
	}

	if succeeded <= 0 {
		kind, reason := last.Kind, last.Reason
		if last.OK() {
			kind, reason = pipeline.KindTransportFailure, "no coins fetched"
			if err := ctx.Err(); err != nil {
				reason = err.Error()
			}
		}
		inv.Finish(kind, reason)
		return kind
	}
	output.Grid(logger, "Cryptocurrency Price Comparison (USD)", compareColumns, rows)
	inv.Done()
	return pipeline.KindSuccess
}
