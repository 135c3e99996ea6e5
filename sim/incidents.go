package sim

import (
	"minipolis/grid"
)

// EmergencyKind selects which service responds to an incident.
type EmergencyKind int

const (
	Fire EmergencyKind = iota
	Police
	Ambulance
)

func (k EmergencyKind) String() string {
	switch k {
	case Fire:
		return "fire"
	case Police:
		return "police"
	case Ambulance:
		return "ambulance"
	default:
		return "unknown"
	}
}

// StationType is the building that dispatches vehicles for this kind.
func (k EmergencyKind) StationType() grid.BuildingType {
	switch k {
	case Fire:
		return grid.FireStation
	case Police:
		return grid.PoliceStation
	default:
		return grid.Hospital
	}
}

// Incident is a single open call for service at a tile.
type Incident struct {
	ID      uint64
	Kind    EmergencyKind
	Tile    grid.Point
	claimed bool
}

// Incidents is the shared registry of active calls. Collaborators add to it;
// the emergency manager drains it. Claims keep two vehicles off one call.
type Incidents struct {
	nextID uint64
	open   []Incident
}

// NewIncidents creates an empty registry.
func NewIncidents() *Incidents {
	return &Incidents{}
}

// Add registers a new incident and returns its id.
func (r *Incidents) Add(kind EmergencyKind, tile grid.Point) uint64 {
	r.nextID++
	r.open = append(r.open, Incident{ID: r.nextID, Kind: kind, Tile: tile})
	return r.nextID
}

// Count returns the number of open incidents, claimed or not.
func (r *Incidents) Count() int { return len(r.open) }

// NextUnclaimed returns the oldest incident no vehicle has claimed yet.
func (r *Incidents) NextUnclaimed() (Incident, bool) {
	for i := range r.open {
		if !r.open[i].claimed {
			return r.open[i], true
		}
	}
	return Incident{}, false
}

// Claim marks an incident as having a vehicle en route.
func (r *Incidents) Claim(id uint64) {
	for i := range r.open {
		if r.open[i].ID == id {
			r.open[i].claimed = true
			return
		}
	}
}

// Release returns a claimed incident to the unclaimed pool, for a vehicle
// that failed en route.
func (r *Incidents) Release(id uint64) {
	for i := range r.open {
		if r.open[i].ID == id {
			r.open[i].claimed = false
			return
		}
	}
}

// Resolve removes an incident from the registry.
func (r *Incidents) Resolve(id uint64) {
	for i := range r.open {
		if r.open[i].ID == id {
			r.open[i] = r.open[len(r.open)-1]
			r.open = r.open[:len(r.open)-1]
			return
		}
	}
}
