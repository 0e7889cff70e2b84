package game

// Kind identifies a powerup and, for the timed kinds, the effect it grants.
type Kind int

const (
	KindHealth Kind = iota
	KindRapidFire
	KindShield
	KindDoubleShot
	KindScoreBoost
)

// AllKinds lists every powerup kind in spawn-table order.
var AllKinds = []Kind{KindHealth, KindRapidFire, KindShield, KindDoubleShot, KindScoreBoost}

// dropKinds are the only kinds an enemy can leave behind.
var dropKinds = []Kind{KindHealth, KindRapidFire}

var kindInfo = map[Kind]struct {
	name  string
	label string
	glyph rune
	color string
}{
	KindHealth:     {"health", "HEALTH", '+', "#00ff00"},
	KindRapidFire:  {"rapidFire", "RAPID FIRE", 'R', "#ffaa00"},
	KindShield:     {"shield", "SHIELD", 'S', "#0088ff"},
	KindDoubleShot: {"doubleShot", "DOUBLE SHOT", 'X', "#ff00ff"},
	KindScoreBoost: {"scoreBoost", "SCORE BOOST", '*', "#ffff00"},
}

// String returns the identifier used in logs and config.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "unknown"
}

// Label is the HUD name of the kind.
func (k Kind) Label() string {
	return kindInfo[k].label
}

// Glyph is the single character drawn on the pickup.
func (k Kind) Glyph() rune {
	if info, ok := kindInfo[k]; ok {
		return info.glyph
	}
	return '?'
}

// Color is the pickup and HUD color as a #rrggbb string.
func (k Kind) Color() string {
	return kindInfo[k].color
}

// Timed reports whether collecting the kind registers an ActiveEffect.
func (k Kind) Timed() bool {
	return k != KindHealth
}
