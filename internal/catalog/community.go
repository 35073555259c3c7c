package catalog

import (
	"math"
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Sentiment levels ordered worst to best; the numeric score maps each level
// onto a 0-100 scale.
var sentimentLevels = []string{"Negative", "Concerned", "Neutral", "Positive", "Very Positive"}

func sentimentScore(level string) float64 {
	for i, l := range sentimentLevels {
		if l == level {
			return float64(i) * 25
		}
	}
	return 50
}

// Community tracks farmer, aggregator and stakeholder sentiment around SAF
// feedstock value chains. The persisted envelope carries a derived sentiment
// summary next to the signal sequence.
func Community() Definition {
	return Definition{
		Category: signal.CategoryCommunity,
		Capacity: 30,
		Keywords: []string{
			"cassava", "biofuel", "ethanol", "farmers", "feedstock",
			"agriculture", "crop", "harvest", "price", "cooperative",
			"processing", "waste", "biomass",
		},
		LookBack:  14 * 24 * time.Hour,
		MinCount:  3,
		MaxCount:  5,
		Summarize: sentimentSummary,
		Live: []LiveSource{
			{Name: "AllAfrica Nigeria Agriculture", Kind: SourceRSS, URL: "https://allafrica.com/tools/headlines/rdf/nigeria/agriculture/headlines.rdf"},
			{Name: "Guardian Nigeria Agro-Care", Kind: SourcePage, URL: "https://guardian.ng/business-services/agro-care/"},
		},
		Entries: []Entry{
			{
				Source: "Cassava Farmers Association of Nigeria",
				Title:  "80% of Cassava Farmers Open to Biomass Aggregation Schemes",
				Payload: map[string]any{
					"signal_type":      "Survey Result",
					"sentiment":        "Very Positive",
					"region":           "South-South Nigeria",
					"stakeholder_type": "Farmers",
					"key_insight":      "Price guarantees and consistent offtake are primary motivators",
				},
			},
			{
				Source: "Nigerian Tribune",
				Title:  "Oyo State Explores Cassava Waste-to-Fuel Initiative",
				Payload: map[string]any{
					"signal_type":      "News Coverage",
					"sentiment":        "Positive",
					"region":           "South-West Nigeria",
					"stakeholder_type": "Government",
					"key_insight":      "State government showing interest in circular economy models",
				},
			},
			{
				Source: "IITA Ibadan",
				Title:  "Study: Cassava Processing Residue Volumes Exceed Previous Estimates",
				Payload: map[string]any{
					"signal_type":      "Research Publication",
					"sentiment":        "Positive",
					"region":           "Nigeria National",
					"stakeholder_type": "Research",
					"key_insight":      "Available feedstock may be 40% higher than current estimates",
				},
			},
			{
				Source: "Aggregator Network WhatsApp Group",
				Title:  "Logistics Costs Remain Primary Barrier for Rural Biomass Collection",
				Payload: map[string]any{
					"signal_type":      "Informal Signal",
					"sentiment":        "Concerned",
					"region":           "North-Central Nigeria",
					"stakeholder_type": "Aggregators",
					"key_insight":      "Transportation infrastructure gaps limiting collection efficiency",
				},
			},
			{
				Source: "Premium Times",
				Title:  "Aviation Stakeholders Call for SAF Policy Framework in Nigeria",
				Payload: map[string]any{
					"signal_type":      "News Coverage",
					"sentiment":        "Positive",
					"region":           "Nigeria National",
					"stakeholder_type": "Industry",
					"key_insight":      "Growing awareness of SAF opportunity among aviation sector",
				},
			},
			{
				Source: "Rural Women Farmers Network",
				Title:  "Women-Led Cooperatives Seek Training on Biomass Quality Standards",
				Payload: map[string]any{
					"signal_type":      "Community Feedback",
					"sentiment":        "Positive",
					"region":           "South-East Nigeria",
					"stakeholder_type": "Farmers",
					"key_insight":      "Strong interest but capacity building needed",
				},
			},
		},
	}
}

// sentimentSummary aggregates the sentiment scores of one run's signals into
// an overall reading.
func sentimentSummary(signals []signal.Signal) map[string]any {
	if len(signals) == 0 {
		return map[string]any{"overall": "Neutral", "score": 50, "signal_count": 0}
	}

	var total float64
	for _, s := range signals {
		level, _ := s.Payload["sentiment"].(string)
		total += sentimentScore(level)
	}
	avg := total / float64(len(signals))

	overall := "Concerned"
	switch {
	case avg >= 75:
		overall = "Very Positive"
	case avg >= 50:
		overall = "Positive"
	case avg >= 25:
		overall = "Neutral"
	}

	return map[string]any{
		"overall":      overall,
		"score":        math.Round(avg),
		"signal_count": len(signals),
	}
}
