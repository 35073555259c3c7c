package catalog

import (
	"time"

	"github.com/saf-hub/sentinel/internal/signal"
)

// Technology tracks SAF production pathway economics, certifications and
// technical milestones (HEFA, ETJ, AtJ, FT and friends). Impact scores are
// fixed per update, not randomized.
func Technology() Definition {
	return Definition{
		Category: signal.CategoryTechnology,
		Capacity: 40,
		Keywords: []string{
			"SAF", "HEFA", "ethanol-to-jet", "alcohol-to-jet", "Fischer-Tropsch",
			"ASTM", "certification", "pathway", "blend", "feedstock",
		},
		LookBack: 21 * 24 * time.Hour,
		MinCount: 2,
		MaxCount: 4,
		Live: []LiveSource{
			{Name: "CAAFI", Kind: SourcePage, URL: "https://www.caafi.org/"},
			{Name: "NREL ATB", Kind: SourcePage, URL: "https://atb.nrel.gov"},
		},
		Entries: []Entry{
			{
				Source: "ASTM International",
				Title:  "ASTM D7566 Annex 7 Updated: Increased ETJ Blend Limit to 50%",
				Score:  signal.Score(95),
				Payload: map[string]any{
					"pathway":      "ETJ",
					"update_type":  "Certification",
					"url":          "https://www.astm.org/d7566-annex7-update",
					"significance": "Major regulatory milestone enabling higher ETJ blending",
				},
			},
			{
				Source: "Neste",
				Title:  "Neste Singapore Expansion: 1.3M Tonnes SAF Capacity by 2026",
				Score:  signal.Score(88),
				Payload: map[string]any{
					"pathway":      "HEFA",
					"update_type":  "Capacity Expansion",
					"url":          "https://www.neste.com/singapore-expansion",
					"significance": "Largest SAF production facility globally",
				},
			},
			{
				Source: "LanzaJet",
				Title:  "LanzaJet Georgia Plant Achieves First Commercial ATJ Production",
				Score:  signal.Score(92),
				Payload: map[string]any{
					"pathway":      "AtJ",
					"update_type":  "Commercial Milestone",
					"url":          "https://www.lanzajet.com/georgia-commercial",
					"significance": "First commercial-scale ATJ facility in the Americas",
				},
			},
			{
				Source: "ICAO CORSIA",
				Title:  "CORSIA Eligible Fuels: New Cassava Ethanol Pathway Approved",
				Score:  signal.Score(97),
				Payload: map[string]any{
					"pathway":      "ETJ",
					"update_type":  "Certification",
					"url":          "https://www.icao.int/corsia/eligible-fuels-cassava",
					"significance": "Opens pathway for African cassava-based SAF",
				},
			},
			{
				Source: "Argonne National Lab",
				Title:  "GREET Model Update: Revised LCA for Tropical Feedstocks",
				Score:  signal.Score(75),
				Payload: map[string]any{
					"pathway":      "ETJ",
					"update_type":  "Research",
					"url":          "https://greet.es.anl.gov/tropical-feedstocks",
					"significance": "Improved carbon intensity calculations for cassava and sugarcane",
				},
			},
			{
				Source: "World Energy",
				Title:  "World Energy Achieves 100% SAF Production at Paramount Facility",
				Score:  signal.Score(90),
				Payload: map[string]any{
					"pathway":      "HEFA",
					"update_type":  "Commercial Milestone",
					"url":          "https://www.worldenergy.net/paramount-100-saf",
					"significance": "First facility producing neat SAF at commercial scale",
				},
			},
			{
				Source: "RSB",
				Title:  "RSB Issues First Smallholder-Inclusive SAF Certification in Africa",
				Score:  signal.Score(82),
				Payload: map[string]any{
					"pathway":      "ETJ",
					"update_type":  "Certification",
					"url":          "https://rsb.org/smallholder-saf-africa",
					"significance": "Certification template for smallholder feedstock models",
				},
			},
			{
				Source: "Gevo",
				Title:  "Gevo Net-Zero 1 Project Secures Final Investment Decision",
				Score:  signal.Score(85),
				Payload: map[string]any{
					"pathway":      "AtJ",
					"update_type":  "Investment",
					"url":          "https://gevo.com/net-zero-1-fid",
					"significance": "Major AtJ project advancement in the US",
				},
			},
		},
	}
}
