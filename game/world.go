package game

import "strconv"

// Static world data: 42 territories in 6 continents with hand-specified
// adjacency. Territory IDs are the continent code plus a 1-based index, so
// "NA1" is the first North American entry below.

type continentDef struct {
	code  string
	name  string
	bonus int
}

// continentOrder fixes iteration order for deterministic pool building.
var continentOrder = []continentDef{
	{"NA", "North America", 5},
	{"EU", "Europe", 5},
	{"AS", "Asia", 7},
	{"SA", "South America", 2},
	{"AF", "Africa", 3},
	{"AU", "Australia", 2},
}

var territoryNames = map[string][]string{
	"NA": {
		"Alaska",
		"Alberta (Western Canada)",
		"Central America",
		"Eastern United States",
		"Greenland",
		"Northwest Territory",
		"Ontario (Central Canada)",
		"Quebec (Eastern Canada)",
		"Western United States",
	},
	"EU": {
		"Great Britain (Great Britain & Ireland)",
		"Iceland",
		"Northern Europe",
		"Scandinavia",
		"Southern Europe",
		"Ukraine (Eastern Europe, Russia)",
		"Western Europe",
	},
	"AS": {
		"Afghanistan",
		"China",
		"India (Hindustan)",
		"Irkutsk",
		"Japan",
		"Kamchatka",
		"Middle East",
		"Mongolia",
		"Siam (Southeast Asia)",
		"Siberia",
		"Ural",
		"Yakutsk",
	},
	"SA": {
		"Argentina",
		"Brazil",
		"Peru",
		"Venezuela",
	},
	"AF": {
		"Congo (Central Africa)",
		"East Africa",
		"Egypt",
		"Madagascar",
		"North Africa",
		"South Africa",
	},
	"AU": {
		"Eastern Australia",
		"Indonesia",
		"New Guinea",
		"Western Australia",
	},
}

// adjacencyData maps each territory ID to its neighbors. The relation is
// symmetric; both directions are listed.
var adjacencyData = map[string][]string{
	"NA1": {"NA2", "NA6", "AS6"},
	"NA2": {"NA1", "NA6", "NA7", "NA9"},
	"NA3": {"NA4", "NA9", "SA4"},
	"NA4": {"NA3", "NA7", "NA8", "NA9"},
	"NA5": {"NA6", "NA7", "NA8", "EU2"},
	"NA6": {"NA1", "NA2", "NA5", "NA7"},
	"NA7": {"NA2", "NA4", "NA5", "NA6", "NA8", "NA9"},
	"NA8": {"NA4", "NA5", "NA7"},
	"NA9": {"NA2", "NA3", "NA4", "NA7"},

	"EU1": {"EU2", "EU3", "EU4", "EU7"},
	"EU2": {"EU1", "EU4", "NA5"},
	"EU3": {"EU1", "EU4", "EU5", "EU6", "EU7"},
	"EU4": {"EU1", "EU2", "EU3", "EU6"},
	"EU5": {"EU3", "EU6", "EU7", "AF3", "AF5", "AS7"},
	"EU6": {"EU3", "EU4", "EU5", "AS1", "AS7", "AS11"},
	"EU7": {"EU1", "EU3", "EU5", "AF5"},

	"AS1":  {"AS2", "AS3", "AS7", "AS11", "EU6"},
	"AS2":  {"AS1", "AS3", "AS8", "AS9", "AS10", "AS11"},
	"AS3":  {"AS1", "AS2", "AS7", "AS9"},
	"AS4":  {"AS6", "AS8", "AS10", "AS12"},
	"AS5":  {"AS6", "AS8"},
	"AS6":  {"AS4", "AS5", "AS8", "AS12", "NA1"},
	"AS7":  {"AS1", "AS3", "EU5", "EU6", "AF2", "AF3"},
	"AS8":  {"AS2", "AS4", "AS5", "AS6", "AS10"},
	"AS9":  {"AS2", "AS3", "AU2"},
	"AS10": {"AS2", "AS4", "AS8", "AS11", "AS12"},
	"AS11": {"AS1", "AS2", "AS10", "EU6"},
	"AS12": {"AS4", "AS6", "AS10"},

	"SA1": {"SA2", "SA3"},
	"SA2": {"SA1", "SA3", "SA4", "AF5"},
	"SA3": {"SA1", "SA2", "SA4"},
	"SA4": {"SA2", "SA3", "NA3"},

	"AF1": {"AF2", "AF5", "AF6"},
	"AF2": {"AF1", "AF3", "AF4", "AF5", "AF6", "AS7"},
	"AF3": {"AF2", "AF5", "EU5", "AS7"},
	"AF4": {"AF2", "AF6"},
	"AF5": {"AF1", "AF2", "AF3", "EU5", "EU7", "SA2"},
	"AF6": {"AF1", "AF2", "AF4"},

	"AU1": {"AU3", "AU4"},
	"AU2": {"AU3", "AU4", "AS9"},
	"AU3": {"AU1", "AU2", "AU4"},
	"AU4": {"AU1", "AU2", "AU3"},
}

// buildWorld constructs the fixed continent registry with fresh territory
// state. Every new game gets its own copy.
func buildWorld() map[string]*Continent {
	continents := make(map[string]*Continent, len(continentOrder))
	for _, def := range continentOrder {
		names := territoryNames[def.code]
		cont := &Continent{
			name:        def.name,
			code:        def.code,
			bonus:       def.bonus,
			territories: make([]*Territory, 0, len(names)),
		}
		for i, name := range names {
			id := def.code + strconv.Itoa(i+1)
			cont.territories = append(cont.territories, newTerritory(name, id, adjacencyData[id]))
		}
		continents[def.code] = cont
	}
	return continents
}
