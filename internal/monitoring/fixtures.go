package monitoring

// Satellite imagery years with fixture images available.
var SatelliteYears = []int{2013, 2014, 2016, 2020}

// ViewerConfig carries the image viewer constants so the client does
// not hard-code them.
type ViewerConfig struct {
	MinZoom  float64 `json:"minZoom"`
	MaxZoom  float64 `json:"maxZoom"`
	ZoomStep float64 `json:"zoomStep"`
}

var DefaultViewer = ViewerConfig{MinZoom: 0.5, MaxZoom: 5, ZoomStep: 1.5}

func validYear(year int) bool {
	for _, y := range SatelliteYears {
		if y == year {
			return true
		}
	}
	return false
}

// MapMarker is a fixed point of interest on the world map with its
// flood-risk popup data.
type MapMarker struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"`
	Population  string     `json:"population"`
	FloodRisk   string     `json:"floodRisk"`
	LastFlood   string     `json:"lastFlood"`
	Description string     `json:"description"`
	Projects    string     `json:"projects"`
	Climate     string     `json:"climate"`
}

// MapMarkers are the monitored cities. The data is static fixture
// content for the dashboard map.
var MapMarkers = []MapMarker{
	{
		ID:          "metekel",
		Name:        "Metekel (Ethiopia)",
		Coordinates: [2]float64{10.7803, 35.5658},
		Population:  "approx. 250,000",
		FloodRisk:   "High",
		LastFlood:   "August 2023",
		Description: "Northwestern Ethiopia, in the Benishangul-Gumuz region. High seasonal flood risk along the Blue Nile basin.",
		Projects:    "Flood early-warning system, drainage infrastructure improvement",
		Climate:     "Tropical savanna climate, rainy season June to September",
	},
	{
		ID:          "dhaka",
		Name:        "Dhaka (Bangladesh)",
		Coordinates: [2]float64{23.81, 90.415},
		Population:  "approx. 9.5 million",
		FloodRisk:   "Very High",
		LastFlood:   "July 2024",
		Description: "Capital of Bangladesh, on the delta where the Buriganga, Turag and Balu rivers meet. Frequent flood damage from monsoons and urbanization.",
		Projects:    "Smart drainage system, urban flood management program",
		Climate:     "Tropical monsoon climate, rainy season June to October",
	},
	{
		ID:          "jakarta",
		Name:        "Jakarta (Indonesia)",
		Coordinates: [2]float64{-6.9, 107.6},
		Population:  "approx. 10.5 million",
		FloodRisk:   "Very High",
		LastFlood:   "February 2024",
		Description: "Capital of Indonesia, on low-lying land adjacent to the Java Sea. Flood risk is rising with land subsidence and sea-level rise.",
		Projects:    "Giant sea wall construction, new capital relocation plan",
		Climate:     "Tropical monsoon climate, rainy season October to April",
	},
}
