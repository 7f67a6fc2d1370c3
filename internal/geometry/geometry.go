// Package geometry classifies Summoner's Rift coordinates into named map
// zones via point-in-polygon tests against an authored region catalog.
package geometry

import "strings"

// Point is a 2D position in game units. The telemetry feed calls the second
// axis "z"; it is stored here as Y.
type Point struct {
	X, Y float64
}

// Zone is one named polygonal map region.
type Zone struct {
	Name    string
	Polygon []Point
}

// MapCenterX splits the map into blue (west) and red (east) halves for the
// coarse fallback classification.
const MapCenterX = 7400

// Classifier resolves coordinates against the zone catalog. Lane zones and a
// handful of decision-relevant regions (bases, objective pits) are checked
// before the dense jungle catalog so overlaps resolve in their favor.
type Classifier struct {
	priority  []Zone
	remainder []Zone
	laneZones map[string]bool
}

// NewClassifier builds a classifier over the default catalog.
func NewClassifier() *Classifier {
	return newClassifier(riftZones)
}

func newClassifier(zones []Zone) *Classifier {
	c := &Classifier{laneZones: make(map[string]bool)}
	priorityNames := make(map[string]bool)
	for _, z := range zones {
		if isLaneZone(z.Name) {
			c.laneZones[z.Name] = true
			priorityNames[z.Name] = true
		}
	}
	for _, name := range []string{"Blue Side Base", "Red Side Base", "Dragon Pit", "Baron Pit"} {
		priorityNames[name] = true
	}
	for _, z := range zones {
		if priorityNames[z.Name] {
			c.priority = append(c.priority, z)
		} else {
			c.remainder = append(c.remainder, z)
		}
	}
	return c
}

func isLaneZone(name string) bool {
	if !strings.Contains(name, "Lane") {
		return false
	}
	for _, sub := range []string{"Area", "Outside", "Inhib", "Brush"} {
		if strings.Contains(name, sub) {
			return false
		}
	}
	return true
}

// IsLaneZone reports whether name is one of the lane-center zones used for
// gank dwell tracking.
func (c *Classifier) IsLaneZone(name string) bool {
	if c == nil {
		return false
	}
	return c.laneZones[name]
}

// Classify maps a coordinate to a zone name. Priority zones are scanned
// first, then the rest of the catalog in authored order; a point on a
// polygon boundary counts as outside. Points in no polygon fall back to a
// side-of-map split on x.
func (c *Classifier) Classify(x, z float64) string {
	if c == nil {
		return sideFallback(x, "zone data unavailable")
	}
	p := Point{x, z}
	for _, zone := range c.priority {
		if containsPoint(zone.Polygon, p) {
			return zone.Name
		}
	}
	for _, zone := range c.remainder {
		if containsPoint(zone.Polygon, p) {
			return zone.Name
		}
	}
	switch {
	case x < MapCenterX:
		return "Blue Side Unknown"
	case x > MapCenterX:
		return "Red Side Unknown"
	default:
		return "Mid Unknown"
	}
}

func sideFallback(x float64, reason string) string {
	switch {
	case x < MapCenterX:
		return "Blue Side (" + reason + ")"
	case x > MapCenterX:
		return "Red Side (" + reason + ")"
	default:
		return "Mid Area (" + reason + ")"
	}
}

// containsPoint is a ray-casting strict-interior test. Boundary points are
// treated as outside, matching the catalog's non-overlapping intent.
func containsPoint(poly []Point, p Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
