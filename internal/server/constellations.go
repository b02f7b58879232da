package server

// Constellation is one selectable entry in the UI, with a short markdown
// description rendered on the results page.
type Constellation struct {
	ID       string // 3-letter IAU abbreviation used by the astronomy API
	Name     string
	Markdown string
}

const defaultConstellationID = "ori"

// ConstellationCatalog lists the constellations offered by the selector,
// in display order.
var ConstellationCatalog = []Constellation{
	{"and", "Andromeda", "**Andromeda**, the chained princess of Greek myth. Home to the *Andromeda Galaxy* (M31), the nearest major galaxy to the Milky Way."},
	{"aqr", "Aquarius", "**Aquarius**, the water bearer. A zodiac constellation crossed by the Sun in late February and March."},
	{"ari", "Aries", "**Aries**, the ram. Small and faint, but historically important as the old location of the vernal equinox."},
	{"cnc", "Cancer", "**Cancer**, the crab. Faintest of the zodiac constellations; contains the *Beehive Cluster* (M44)."},
	{"cap", "Capricornus", "**Capricornus**, the sea goat. One of the oldest recognized constellations."},
	{"gem", "Gemini", "**Gemini**, the twins, marked by the bright stars *Castor* and *Pollux*."},
	{"leo", "Leo", "**Leo**, the lion, with the bright star *Regulus* at the base of its sickle."},
	{"lib", "Libra", "**Libra**, the scales. The only zodiac constellation named after an object."},
	{"ori", "Orion", "**Orion**, the hunter, the most recognizable constellation in the night sky. Contains *Betelgeuse*, *Rigel*, and the *Orion Nebula* (M42)."},
	{"psc", "Pisces", "**Pisces**, the fishes. A large but faint zodiac constellation."},
	{"sgr", "Sagittarius", "**Sagittarius**, the archer, pointing toward the center of the Milky Way."},
	{"sco", "Scorpius", "**Scorpius**, the scorpion, dominated by the red supergiant *Antares*."},
	{"tau", "Taurus", "**Taurus**, the bull. Home to the *Pleiades* and *Hyades* clusters and the bright star *Aldebaran*."},
	{"vir", "Virgo", "**Virgo**, the maiden, the second-largest constellation, anchored by the bright star *Spica*."},
}

// constellationByID returns the catalog entry for an id, or nil when unknown
func constellationByID(id string) *Constellation {
	for i := range ConstellationCatalog {
		if ConstellationCatalog[i].ID == id {
			return &ConstellationCatalog[i]
		}
	}
	return nil
}
