package catalog

import (
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Regulatory monitors aviation regulatory feeds (ICAO, EASA, IATA, NCAA) for
// SAF and CORSIA developments.
func Regulatory() Definition {
	return Definition{
		Category: signal.CategoryRegulatory,
		Capacity: 50,
		Keywords: []string{
			"SAF",
			"sustainable aviation fuel",
			"CORSIA",
			"LCAF",
			"carbon offset",
			"aviation emissions",
			"alternative fuel",
			"ReFuelEU",
			"biofuel",
			"net zero",
		},
		LookBack: 7 * 24 * time.Hour,
		MinCount: 2,
		MaxCount: 3,
		Live: []LiveSource{
			{Name: "EASA", Kind: SourceRSS, URL: "https://www.easa.europa.eu/en/rss"},
			{Name: "IATA", Kind: SourceRSS, URL: "https://www.iata.org/en/publications/newsletters/sustainability-economics-insights/feed/"},
		},
		Entries: []Entry{
			{
				Source: "ICAO",
				Title:  "CORSIA Implementation Update: New SAF Sustainability Criteria",
				Payload: map[string]any{
					"url":              "https://www.icao.int/environmental-protection/corsia/saf-criteria-2025",
					"keywords_matched": []string{"CORSIA", "SAF", "sustainable aviation fuel"},
				},
			},
			{
				Source: "EASA",
				Title:  "ReFuelEU Aviation: Updated Guidance on SAF Blending Mandates",
				Payload: map[string]any{
					"url":              "https://www.easa.europa.eu/refueleu-aviation-saf-guidance",
					"keywords_matched": []string{"SAF", "sustainable aviation fuel", "alternative fuel"},
				},
			},
			{
				Source: "NCAA",
				Title:  "NCAA Publishes Draft SAF Certification Framework for Nigerian Operators",
				Payload: map[string]any{
					"url":              "https://www.ncaa.gov.ng/saf-certification-draft-2025",
					"keywords_matched": []string{"SAF", "sustainable aviation fuel"},
				},
			},
			{
				Source: "ICAO",
				Title:  "LCAF Forum Announces New Aviation Emissions Monitoring Protocols",
				Payload: map[string]any{
					"url":              "https://www.icao.int/environmental-protection/lcaf-emissions-protocols",
					"keywords_matched": []string{"LCAF", "aviation emissions", "carbon offset"},
				},
			},
			{
				Source: "EASA",
				Title:  "European SAF Registry Launch: Tracking Alternative Fuel Production",
				Payload: map[string]any{
					"url":              "https://www.easa.europa.eu/saf-registry-launch",
					"keywords_matched": []string{"SAF", "alternative fuel"},
				},
			},
		},
	}
}
