package catalog

import (
	"math/rand"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Cassava peel price bounds in NGN per tonne.
const (
	peelPriceLower = 15000
	peelPriceUpper = 25000
)

// FeedstockPrice simulates cassava peel price movements: one spot
// observation per run with a randomized price, no timestamp jitter.
func FeedstockPrice() Definition {
	return Definition{
		Category: signal.CategoryFeedstockPrice,
		Capacity: 50,
		Keywords: []string{"cassava", "peel", "price", "tonne", "feedstock"},
		MinCount: 1,
		MaxCount: 1,
		Randomize: func(r *rand.Rand, payload map[string]any) map[string]any {
			payload["price_per_tonne"] = peelPriceLower + r.Intn(peelPriceUpper-peelPriceLower+1)
			return payload
		},
		Entries: []Entry{
			{
				Source: "Feedstock Watchdog",
				Title:  "Cassava Peel Spot Price",
				Payload: map[string]any{
					"commodity": "cassava_peel",
					"currency":  "NGN",
				},
			},
		},
	}
}
