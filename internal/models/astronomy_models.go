package models

// StudioResponse represents an AstronomyAPI studio endpoint response
// (star chart and moon phase share the shape)
type StudioResponse struct {
	Data *StudioData `json:"data"`
}

// StudioData holds the generated image reference
type StudioData struct {
	ImageURL string `json:"imageUrl"`
}

// PositionsResponse represents the AstronomyAPI bodies/positions response.
// Numeric values arrive as strings and are converted during parsing.
type PositionsResponse struct {
	Data *PositionsData `json:"data"`
}

// PositionsData wraps the positions table
type PositionsData struct {
	Table *PositionsTable `json:"table"`
}

// PositionsTable holds one row per celestial body
type PositionsTable struct {
	Rows []PositionsRow `json:"rows"`
}

// PositionsRow is one body's row; cells hold one entry per requested date
type PositionsRow struct {
	Entry *BodyEntry     `json:"entry"`
	Cells []PositionCell `json:"cells"`
}

// BodyEntry identifies a celestial body
type BodyEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PositionCell is one body's position at one instant
type PositionCell struct {
	Date     string        `json:"date"`
	Distance *BodyDistance `json:"distance"`
	Position *BodyPosition `json:"position"`
}

// BodyDistance holds distance measurements
type BodyDistance struct {
	FromEarth *DistanceFromEarth `json:"fromEarth"`
}

// DistanceFromEarth holds distance values as decimal strings
type DistanceFromEarth struct {
	AU string `json:"au"`
	KM string `json:"km"`
}

// BodyPosition holds coordinate frames for a body
type BodyPosition struct {
	Equatorial    *EquatorialCoords  `json:"equatorial"`
	Constellation *ConstellationInfo `json:"constellation"`
}

// EquatorialCoords holds right ascension and declination
type EquatorialCoords struct {
	RightAscension *CoordValue `json:"rightAscension"`
	Declination    *CoordValue `json:"declination"`
}

// CoordValue is a single coordinate component; the API reports both a
// decimal string and a formatted string
type CoordValue struct {
	Hours   string `json:"hours,omitempty"`
	Degrees string `json:"degrees,omitempty"`
	String  string `json:"string,omitempty"`
}

// ConstellationInfo identifies the constellation a body currently sits in
type ConstellationInfo struct {
	ID    string `json:"id"`
	Short string `json:"short"`
	Name  string `json:"name"`
}
