package httpclientx

import "testing"

func TestEndpoint(t *testing.T) {
	t.Run("without query", func(t *testing.T) {
		epnt := NewEndpoint("https://api.example.com/v1/tickers")
		if got := epnt.String(); got != "https://api.example.com/v1/tickers" {
			t.Fatal("unexpected URL", got)
		}
	})

	t.Run("WithParam formats values", func(t *testing.T) {
		epnt := NewEndpoint("https://api.example.com/v1/forecast").
			WithParam("latitude", 28.6139).
			WithParam("longitude", 77.209).
			WithParam("count", 1).
			WithParam("current_weather", true).
			WithParam("name", "New York")
		expect := "https://api.example.com/v1/forecast?count=1&current_weather=true" +
			"&latitude=28.6139&longitude=77.209&name=New+York"
		if got := epnt.String(); got != expect {
			t.Fatal("unexpected URL", got)
		}
	})

	t.Run("WithParam does not modify the original", func(t *testing.T) {
		base := NewEndpoint("https://api.example.com/")
		_ = base.WithParam("limit", 5)
		if len(base.Query) != 0 {
			t.Fatal("the original endpoint was modified")
		}
	})

	t.Run("WithPath escapes segments", func(t *testing.T) {
		epnt := NewEndpoint("https://api.example.com/v1/tickers").WithPath("btc bitcoin")
		if got := epnt.String(); got != "https://api.example.com/v1/tickers/btc%20bitcoin" {
			t.Fatal("unexpected URL", got)
		}
	})
}
