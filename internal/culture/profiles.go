// Package culture holds the static cultural knowledge base: region-keyed
// profiles of language, festivals, food, clothing and landmarks used by both
// the prompt-based and template-based adaptation paths. The data is loaded
// once into package-level read-only maps and never mutated.
package culture

import "encoding/json"

// Profile is the set of cultural facts known about a region. Instances
// returned by Lookup are shared and must be treated as immutable.
type Profile struct {
	Language  string   `json:"language"`
	Examples  []string `json:"examples"`
	Festivals []string `json:"festivals"`
	Food      []string `json:"food"`
	Clothing  []string `json:"clothing"`
	Landmarks []string `json:"landmarks"`
}

// DefaultProfile is returned for regions absent from the knowledge base.
var DefaultProfile = Profile{
	Language:  "English",
	Examples:  []string{"general", "universal", "common"},
	Festivals: []string{"common holidays", "international celebrations"},
	Food:      []string{"common dishes", "international cuisine"},
	Clothing:  []string{"casual wear", "formal attire"},
	Landmarks: []string{"well-known places", "famous sites"},
}

var profiles = map[string]Profile{
	"Punjab": {
		Language:  "Punjabi",
		Examples:  []string{"farming", "bhangra", "lassi", "wheat fields", "folk tales"},
		Festivals: []string{"Baisakhi", "Lohri", "Hola Mohalla"},
		Food:      []string{"makki di roti", "sarson da saag", "chole", "lassi"},
		Clothing:  []string{"phulkari", "turban", "salwar kameez"},
		Landmarks: []string{"Golden Temple", "Jallianwala Bagh", "Wagah Border"},
	},
	"Tamil Nadu": {
		Language:  "Tamil",
		Examples:  []string{"classical dance", "temples", "rice fields", "coastal life"},
		Festivals: []string{"Pongal", "Thai Pusam", "Aadi Perukku"},
		Food:      []string{"idli", "dosa", "sambar", "rasam", "filter coffee"},
		Clothing:  []string{"silk saree", "veshti", "pattu pavadai"},
		Landmarks: []string{"Meenakshi Temple", "Marina Beach", "Thanjavur Temple"},
	},
	"Maharashtra": {
		Language:  "Marathi",
		Examples:  []string{"trading", "bollywood", "urban life", "coastal activities"},
		Festivals: []string{"Ganesh Chaturthi", "Gudi Padwa", "Diwali"},
		Food:      []string{"vada pav", "puran poli", "misal pav", "modak"},
		Clothing:  []string{"nauvari saree", "dhoti", "pheta"},
		Landmarks: []string{"Gateway of India", "Ajanta Caves", "Ellora Caves"},
	},
	"West Bengal": {
		Language:  "Bengali",
		Examples:  []string{"literature", "art", "river life", "fish farming"},
		Festivals: []string{"Durga Puja", "Saraswati Puja", "Poila Boishakh"},
		Food:      []string{"rasgulla", "sandesh", "mishti doi", "fish curry"},
		Clothing:  []string{"tant saree", "dhoti", "kurta"},
		Landmarks: []string{"Victoria Memorial", "Howrah Bridge", "Sundarbans"},
	},
	"Gujarat": {
		Language:  "Gujarati",
		Examples:  []string{"business", "textiles", "coastal trade", "diamond industry"},
		Festivals: []string{"Navratri", "Uttarayan", "Janmashtami"},
		Food:      []string{"dhokla", "thepla", "fafda", "khandvi"},
		Clothing:  []string{"chaniya choli", "kediyun", "bandhani"},
		Landmarks: []string{"Sabarmati Ashram", "Rann of Kutch", "Somnath Temple"},
	},
	"Karnataka": {
		Language:  "Kannada",
		Examples:  []string{"technology", "coffee plantations", "silk production"},
		Festivals: []string{"Mysore Dasara", "Ugadi", "Makara Sankranti"},
		Food:      []string{"bisi bele bath", "mysore pak", "ragi mudde", "akki roti"},
		Clothing:  []string{"ilkal saree", "panche", "mysore peta"},
		Landmarks: []string{"Mysore Palace", "Hampi", "Jog Falls"},
	},
	"Rajasthan": {
		Language:  "Rajasthani",
		Examples:  []string{"desert life", "royalty", "forts", "handicrafts"},
		Festivals: []string{"Pushkar Fair", "Desert Festival", "Teej"},
		Food:      []string{"dal baati churma", "gatte ki sabzi", "ker sangri"},
		Clothing:  []string{"ghagra choli", "bandhej", "pagdi"},
		Landmarks: []string{"Hawa Mahal", "Amber Fort", "Jaisalmer Fort"},
	},
	"Kerala": {
		Language:  "Malayalam",
		Examples:  []string{"backwaters", "spice trade", "coconut farming", "ayurveda"},
		Festivals: []string{"Onam", "Vishu", "Thrissur Pooram"},
		Food:      []string{"appam", "puttu", "kerala fish curry", "avial"},
		Clothing:  []string{"kasavu saree", "mundu", "set mundu"},
		Landmarks: []string{"Backwaters", "Kovalam Beach", "Padmanabhaswamy Temple"},
	},
	"Uttar Pradesh": {
		Language:  "Hindi",
		Examples:  []string{"historical monuments", "religious sites", "agriculture"},
		Festivals: []string{"Kumbh Mela", "Holi", "Ram Navami"},
		Food:      []string{"kebabs", "chaat", "paan", "thandai"},
		Clothing:  []string{"chikan kurta", "angarkha", "dhoti kurta"},
		Landmarks: []string{"Taj Mahal", "Varanasi Ghats", "Fatehpur Sikri"},
	},
	"Andhra Pradesh": {
		Language:  "Telugu",
		Examples:  []string{"spicy food", "film industry", "coastal activities"},
		Festivals: []string{"Ugadi", "Sankranti", "Bathukamma"},
		Food:      []string{"biryani", "gongura pickle", "pesarattu", "pulihora"},
		Clothing:  []string{"langa voni", "pancha", "kanduva"},
		Landmarks: []string{"Tirupati Temple", "Charminar", "Araku Valley"},
	},
}

// Lookup returns the profile for a region. The second return value reports
// whether the region is present in the knowledge base; absent regions map to
// DefaultProfile.
func Lookup(region string) (Profile, bool) {
	if p, ok := profiles[region]; ok {
		return p, true
	}
	return DefaultProfile, false
}

// Known reports whether the knowledge base has an entry for region.
func Known(region string) bool {
	_, ok := profiles[region]
	return ok
}

// Regions returns the number of regions in the knowledge base.
func Regions() int {
	return len(profiles)
}

// Snapshot serializes a profile for storage in ContentContext.CulturalContext.
func (p Profile) Snapshot() string {
	b, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseSnapshot decodes a snapshot previously produced by Snapshot.
func ParseSnapshot(s string) (Profile, error) {
	var p Profile
	err := json.Unmarshal([]byte(s), &p)
	return p, err
}
