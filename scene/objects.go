package scene

// ObjectSet is a bitfield of scene object groups, combinable via OR.
type ObjectSet uint8

// The coordinator hides groups during the cockpit and hyperspace
// phases and restores them when the snapshot is replayed.
const (
	ObjectNone    ObjectSet = 0
	ObjectStars   ObjectSet = 1 << 0 // Background starfield
	ObjectPlanets ObjectSet = 1 << 1 // Orbit rings and destination bodies
	ObjectShip    ObjectSet = 1 << 2 // Player vessel marker
	ObjectHUD     ObjectSet = 1 << 3 // Orbit labels and hints
	ObjectAll     ObjectSet = 0xFF
)

// Has reports whether every object in probe is present in the set.
func (s ObjectSet) Has(probe ObjectSet) bool {
	return s&probe == probe
}
