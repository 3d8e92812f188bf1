package adapter

// Template banks for the non-generative adaptation path, keyed by subject
// category and adaptation level. Placeholders are filled from the variables
// sampled in variables.go.

var mathTemplates = map[string][]string{
	"high": {
		"In {region}, {person} is selling {local_item} at the market. If each {local_item} costs {price} {currency}, how much will {quantity} {local_item}s cost?",
		"During {festival} festival in {region}, {person} wants to distribute {local_sweet} to {quantity} friends. If each person gets {amount} {local_sweet}s, how many will {person} need in total?",
		"A train travels from {city1} to {city2}, covering a distance of {distance} kilometers. If it travels at {speed} km/h, how long will the journey take?",
	},
	"medium": {
		"If you have {quantity} {local_item}s and give away {amount}, how many do you have left?",
		"A recipe for {local_dish} requires {amount} cups of {ingredient}. If you want to make {quantity} servings, how much {ingredient} will you need?",
		"{person} is {distance} kilometers away from {landmark}. If they walk at {speed} km/h, how long will it take to reach there?",
	},
	"low": {
		"If you have {quantity} items and give away {amount}, how many do you have left?",
		"A recipe requires {amount} cups of an ingredient. If you want to make {quantity} servings, how much will you need?",
		"Someone is {distance} kilometers away from a destination. If they walk at {speed} km/h, how long will it take to reach there?",
	},
}

var scienceTemplates = map[string][]string{
	"high": {
		"During the {season} in {region}, farmers grow {local_crop}. Explain the process of photosynthesis using {local_crop} as an example.",
		"The {landmark} in {region} experiences erosion due to {natural_factor}. Describe the geological processes involved in this erosion.",
		"In {region}, traditional {craft} uses principles of {scientific_concept}. Explain how this scientific concept applies to the creation of {craft}.",
	},
	"medium": {
		"Plants like {local_plant} found in {region} use photosynthesis to produce food. Explain this process.",
		"The weather in {region} changes during {season}. Describe the water cycle and how it affects local weather patterns.",
		"In {region}, people use {local_tool} for {activity}. Explain the simple machines or scientific principles involved.",
	},
	"low": {
		"Plants use photosynthesis to produce food. Explain this process.",
		"The water cycle affects weather patterns. Describe how this works.",
		"Simple machines make work easier. Explain how levers, pulleys, or inclined planes work.",
	},
}

var historyTemplates = map[string][]string{
	"high": {
		"The {historical_event} had a significant impact on {region}. Discuss how this event shaped the local culture and traditions like {local_tradition}.",
		"The {historical_figure} from {region} is known for {achievement}. Compare their contributions to those of other historical figures from the same period.",
		"The architecture of {landmark} in {region} reflects influences from the {historical_period}. Analyze the cultural and historical elements visible in this structure.",
	},
	"medium": {
		"The history of {region} includes important events like {historical_event}. Describe what happened and why it was significant.",
		"{historical_figure} from {region} is known for {achievement}. Explain their contribution to history.",
		"The {landmark} in {region} was built during {historical_period}. Describe its historical importance.",
	},
	"low": {
		"An important historical event took place in this region. Describe what happened and why it was significant.",
		"A historical figure made important contributions. Explain what they did and why it matters.",
		"A famous landmark has historical importance. Describe when it was built and why it matters.",
	},
}

var languageTemplates = map[string][]string{
	"high": {
		"In {local_language}, the phrase '{local_phrase}' means '{translation}'. Write a short story using this phrase that relates to {local_tradition} in {region}.",
		"The literature of {region} includes works like '{local_literature}' by {local_author}. Analyze the themes in this work and how they reflect the culture of {region}.",
		"The {festival} festival in {region} involves a tradition called '{local_tradition}'. Write a dialogue between two people discussing their plans for celebrating this festival.",
	},
	"medium": {
		"In {region}, people speak {local_language}. The word for '{common_word}' is '{local_word}'. Use this word in a sentence.",
		"A popular story in {region} is about {local_character}. Summarize this story and identify its main message.",
		"During {festival} in {region}, people often say '{local_greeting}'. Write a short conversation using this greeting.",
	},
	"low": {
		"Different languages have different words for common things. Learn how to say a common word in another language and use it in a sentence.",
		"Stories often contain messages or morals. Summarize a story and identify its main message.",
		"People use special greetings during holidays. Write a short conversation using a holiday greeting.",
	},
}

// subjectTemplates maps subject categories to banks. Unknown subjects resolve
// to "general", which shares the math bank. That default is surprising but
// deliberate: it preserves the historical behavior of the service.
var subjectTemplates = map[string]map[string][]string{
	"math":     mathTemplates,
	"science":  scienceTemplates,
	"history":  historyTemplates,
	"language": languageTemplates,
	"general":  mathTemplates,
}
