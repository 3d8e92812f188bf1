package adapter

import (
	"math/rand"
	"strconv"

	"github.com/edumorph/mcp-service/internal/culture"
)

// Candidate pools for sampled variables.
var (
	personNames = []string{"Raj", "Priya", "Amit", "Sunita", "Vikram", "Meera"}

	mathIngredients = []string{"rice", "flour", "sugar", "milk"}

	scienceSeasons  = []string{"summer", "monsoon", "winter", "spring"}
	scienceCrops    = []string{"rice", "wheat", "cotton", "sugarcane", "tea"}
	scienceFactors  = []string{"rain", "wind", "river flow", "human activity"}
	scienceCrafts   = []string{"pottery", "weaving", "metalwork", "carpentry"}
	scienceConcepts = []string{"friction", "heat transfer", "chemical reactions", "simple machines"}
	sciencePlants   = []string{"neem", "tulsi", "banyan", "peepal"}
	scienceTools    = []string{"plough", "water wheel", "grinding stone", "loom"}
	scienceUses     = []string{"farming", "cooking", "building", "crafting"}

	historyEvents      = []string{"Independence Movement", "Mughal Empire", "British Colonization", "Ancient Trade Routes"}
	historyFigures     = []string{"Mahatma Gandhi", "Rani Lakshmibai", "Emperor Ashoka", "Akbar"}
	historyAchievement = []string{"non-violent resistance", "military leadership", "unification", "cultural reforms"}
	historyPeriods     = []string{"Medieval Period", "Colonial Era", "Ancient Civilization", "Post-Independence"}
	historyTraditions  = []string{"folk dance", "storytelling", "handicrafts", "religious practices"}

	languageTraditions = []string{"storytelling", "poetry recitation", "folk songs"}
)

// sampleVariables draws the cultural variables for a region and subject
// category from the given random source. The common set is always present;
// subject-specific fillers are added on top.
func sampleVariables(rng *rand.Rand, region, subject string) map[string]string {
	profile, known := culture.Lookup(region)

	currency := "dollars"
	if known {
		currency = "rupees"
	}

	vars := map[string]string{
		"region":     region,
		"language":   profile.Language,
		"person":     pick(rng, personNames),
		"landmark":   pick(rng, profile.Landmarks),
		"festival":   pick(rng, profile.Festivals),
		"local_item": pick(rng, profile.Examples),
		"local_dish": pick(rng, profile.Food),
		"currency":   currency,
	}

	switch subject {
	case "math", "general":
		city2 := "Delhi"
		if region == "Delhi" {
			city2 = "Mumbai"
		}
		vars["price"] = itoa(randRange(rng, 10, 100))
		vars["quantity"] = itoa(randRange(rng, 2, 20))
		vars["amount"] = itoa(randRange(rng, 1, 10))
		vars["distance"] = itoa(randRange(rng, 50, 500))
		vars["speed"] = itoa(randRange(rng, 30, 100))
		vars["city1"] = region + " City"
		vars["city2"] = city2
		vars["local_sweet"] = pick(rng, profile.Food)
		vars["ingredient"] = pick(rng, mathIngredients)
	case "science":
		vars["season"] = pick(rng, scienceSeasons)
		vars["local_crop"] = pick(rng, scienceCrops)
		vars["natural_factor"] = pick(rng, scienceFactors)
		vars["craft"] = pick(rng, scienceCrafts)
		vars["scientific_concept"] = pick(rng, scienceConcepts)
		vars["local_plant"] = pick(rng, sciencePlants)
		vars["local_tool"] = pick(rng, scienceTools)
		vars["activity"] = pick(rng, scienceUses)
	case "history":
		vars["historical_event"] = pick(rng, historyEvents)
		vars["historical_figure"] = pick(rng, historyFigures)
		vars["achievement"] = pick(rng, historyAchievement)
		vars["historical_period"] = pick(rng, historyPeriods)
		vars["local_tradition"] = pick(rng, historyTraditions)
	case "language":
		phrase, greeting, word := "Greetings", "Local Greeting", "friend in local language"
		if profile.Language == "Hindi" {
			phrase, greeting, word = "Namaste", "Namaste", "dost"
		}
		vars["local_language"] = profile.Language
		vars["local_phrase"] = phrase
		vars["translation"] = "Hello and respect to you"
		vars["local_literature"] = "Tales of " + region
		vars["local_author"] = "Famous Author from " + region
		vars["local_tradition"] = pick(rng, languageTraditions)
		vars["common_word"] = "friend"
		vars["local_word"] = word
		vars["local_character"] = "Folk Hero of " + region
		vars["local_greeting"] = greeting
	}

	return vars
}

func pick(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// randRange returns an integer in [lo, hi] inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
