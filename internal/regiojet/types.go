package regiojet

// Route is one scheduled vehicle run as returned by the arrivals and
// departures endpoints. A missing delay means the run is on time.
type Route struct {
	Number             string              `json:"number"`
	Label              string              `json:"label"`
	Delay              int                 `json:"delay"`
	FreeSeatsCount     int                 `json:"freeSeatsCount"`
	VehicleStandard    string              `json:"vehicleStandard"`
	ConnectionStations []ConnectionStation `json:"connectionStations"`
}

// ConnectionStation is one stop within a route's stop sequence. Arrival,
// departure and platform may all be absent (terminal stops have no arrival,
// some stations report no platform).
type ConnectionStation struct {
	StationID int64   `json:"stationId"`
	Arrival   *string `json:"arrival"`
	Departure *string `json:"departure"`
	Platform  *string `json:"platform"`
}

// Country is the top level of the location directory.
type Country struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Cities []City `json:"cities"`
}

// City groups the stations of one city.
type City struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Aliases  []string  `json:"aliases"`
	Stations []Station `json:"stations"`
}

// Station is a single boarding point within a city.
type Station struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Fullname  string  `json:"fullname"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// StationMatch is a flattened station search result.
type StationMatch struct {
	City      string `json:"city"`
	CityID    int64  `json:"cityId"`
	Station   string `json:"station"`
	StationID int64  `json:"stationId"`
	Fullname  string `json:"fullname"`
	Address   string `json:"address"`
}

// RouteSummary is a flattened view of a route between two requested
// stations, with the origin's departure and the destination's arrival
// pulled out of the stop sequence.
type RouteSummary struct {
	Number            string              `json:"number"`
	Label             string              `json:"label"`
	Delay             int                 `json:"delay"`
	FreeSeats         int                 `json:"freeSeats"`
	DepartureTime     *string             `json:"departureTime"`
	ArrivalTime       *string             `json:"arrivalTime"`
	DeparturePlatform *string             `json:"departurePlatform"`
	ArrivalPlatform   *string             `json:"arrivalPlatform"`
	VehicleStandard   string              `json:"vehicleStandard"`
	AllStations       []ConnectionStation `json:"allStations"`
}
