package aggregator

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chainscope/internal/model"
)

func TestTokenPriceCachesWithinWindow(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/simple/price" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("ids") != "ethereum" || query.Get("vs_currencies") != "usd" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		if query.Get("include_24hr_change") != "true" || query.Get("include_market_cap") != "true" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"ethereum": {"usd": 3000.5, "usd_24h_change": -1.25, "usd_market_cap": 360000000000}}`)
	}))
	defer srv.Close()

	agg := testAggregator(Config{CoingeckoURL: srv.URL})

	first := agg.TokenPrice(context.Background(), "ethereum")
	agg.TokenPrice(context.Background(), "ethereum")

	if hits != 1 {
		t.Fatalf("expected one upstream call, got %d", hits)
	}

	price, ok := first.(model.TokenPrice)
	if !ok {
		t.Fatalf("expected token price, got %+v", first)
	}
	if price.Token != "ethereum" {
		t.Fatalf("token mismatch: %s", price.Token)
	}
	if price.PriceUSD == nil || *price.PriceUSD != 3000.5 {
		t.Fatalf("price mismatch: %+v", price.PriceUSD)
	}
	if price.Change24h == nil || *price.Change24h != -1.25 {
		t.Fatalf("change mismatch: %+v", price.Change24h)
	}
	if price.MarketCap == nil || *price.MarketCap != 360000000000 {
		t.Fatalf("market cap mismatch: %+v", price.MarketCap)
	}
}

func TestTokenPriceRefetchesAfterWindow(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		fmt.Fprint(w, `{"ethereum": {"usd": 1}}`)
	}))
	defer srv.Close()

	agg := testAggregator(Config{CoingeckoURL: srv.URL, PriceTTL: 20 * time.Millisecond})

	agg.TokenPrice(context.Background(), "ethereum")
	time.Sleep(40 * time.Millisecond)
	agg.TokenPrice(context.Background(), "ethereum")

	if hits != 2 {
		t.Fatalf("expected refetch after staleness window, got %d calls", hits)
	}
}

func TestTokenPriceUnknownToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	agg := testAggregator(Config{CoingeckoURL: srv.URL})

	result := agg.TokenPrice(context.Background(), "nosuchtoken")

	price, ok := result.(model.TokenPrice)
	if !ok {
		t.Fatalf("unknown tokens must not error, got %+v", result)
	}
	if price.PriceUSD != nil || price.Change24h != nil || price.MarketCap != nil {
		t.Fatalf("expected null fields, got %+v", price)
	}
}

func TestTokenPriceAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	agg := testAggregator(Config{CoingeckoURL: srv.URL})

	result := agg.TokenPrice(context.Background(), "ethereum")

	errResult, ok := result.(model.ErrorResult)
	if !ok {
		t.Fatalf("expected error result, got %T", result)
	}
	if errResult.Error != "CoinGecko API error: 429" {
		t.Fatalf("unexpected error: %s", errResult.Error)
	}
}
