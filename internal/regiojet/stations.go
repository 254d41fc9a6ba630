package regiojet

// Stations maps human-readable names of common stops to their station IDs.
// The upstream directory is the authoritative source; this table only covers
// the stops the CLI and the demo query refer to by name.
var Stations = map[string]int64{
	"KARLOVY_VARY_TERMINAL": 17902024,
	"KARLOVY_VARY_TRZNICE":  17902023,
	"SOKOLOV_TERMINAL":      721181001,
	"SOKOLOV_TESOVICE":      721181000,
	"PRAHA_FLORENC":         10204003,
	"CHEB":                  721181002,
}
