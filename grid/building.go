// Package grid provides the tile grid the simulation reads, plus the
// topology queries and version-keyed caches built on top of it.
package grid

// BuildingType enumerates everything a tile can hold, terrain included.
type BuildingType uint8

const (
	Grass BuildingType = iota
	Water
	Trees
	Road
	Rail
	Residential
	Commercial
	Industrial
	PowerPlant
	FireStation
	PoliceStation
	Hospital
	Park
	TrainStation
	Airport
	Stadium
)

// String returns the lowercase name used in logs and the HUD.
func (t BuildingType) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Trees:
		return "trees"
	case Road:
		return "road"
	case Rail:
		return "rail"
	case Residential:
		return "residential"
	case Commercial:
		return "commercial"
	case Industrial:
		return "industrial"
	case PowerPlant:
		return "power_plant"
	case FireStation:
		return "fire_station"
	case PoliceStation:
		return "police_station"
	case Hospital:
		return "hospital"
	case Park:
		return "park"
	case TrainStation:
		return "train_station"
	case Airport:
		return "airport"
	case Stadium:
		return "stadium"
	}
	return "unknown"
}

// IsRoad reports whether agents on the road network may occupy the tile.
func (t BuildingType) IsRoad() bool { return t == Road }

// IsRail reports whether rail agents may occupy the tile.
func (t BuildingType) IsRail() bool { return t == Rail }

// IsTerrain reports whether the tile holds no structure at all.
func (t BuildingType) IsTerrain() bool {
	return t == Grass || t == Water || t == Trees
}

// IsLow reports whether the tile is flat enough that it never occludes a
// ground agent on a neighboring tile.
func (t BuildingType) IsLow() bool {
	return t.IsTerrain() || t == Road || t == Rail || t == Park
}

// IsAmenity reports whether pedestrians pick the tile as a trip destination.
func (t BuildingType) IsAmenity() bool {
	return t == Commercial || t == Park || t == Stadium || t == Hospital
}

// Building is the per-tile descriptor the simulation consumes. The zoning
// and power simulations own these values; within a frame they are read-only.
type Building struct {
	Type       BuildingType
	Powered    bool
	Population int
}
