package battle

import "fmt"

// Status is one bit of a 32-bit status/immunity mask.
type Status int

var statusNames = [...]string{
	"Death", "NearDeath", "Sleep", "Poison", "Sadness", "Fury", "Confusion", "Silence",
	"Haste", "Slow", "Stop", "Frog", "Small", "SlowNumb", "Petrify", "Regen",
	"Barrier", "MBarrier", "Reflect", "Dual", "Shield", "DeathSentence", "Manipulate", "Berserk",
	"Peerless", "Paralysis", "Darkness", "DualDrain", "DeathForce", "Resist", "LuckyGirl",
}

// StatusCount is the number of named status bits; bit 31 carries no status.
const StatusCount = len(statusNames)

func (s Status) String() string {
	if s < 0 || int(s) >= StatusCount {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// StatusesFromMask lists the statuses whose bits are set, lowest bit first.
// The all-ones sentinel yields none.
func StatusesFromMask(mask uint32) []Status {
	if mask == absent32 {
		return nil
	}
	var out []Status
	for bit := 0; bit < StatusCount; bit++ {
		if mask&(1<<bit) != 0 {
			out = append(out, Status(bit))
		}
	}
	return out
}

// Element is one of the 16 attack/resistance elements.
type Element int

var elementNames = [...]string{
	"Fire", "Ice", "Bolt", "Earth", "Poison", "Gravity", "Water", "Wind",
	"Holy", "Restorative", "Cut", "Hit", "Punch", "Shoot", "Shout", "Hidden",
}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// ElementsFromMask lists the elements of a 16-bit attack mask.
func ElementsFromMask(mask uint16) []Element {
	if mask == absent16 {
		return nil
	}
	var out []Element
	for bit := range elementNames {
		if mask&(1<<bit) != 0 {
			out = append(out, Element(bit))
		}
	}
	return out
}

// Rate is how an enemy reacts to an element.
type Rate uint8

const (
	RateDeath    Rate = 0
	RateDouble   Rate = 2
	RateHalf     Rate = 4
	RateNullify  Rate = 5
	RateAbsorb   Rate = 6
	RateFullCure Rate = 7
)

func (r Rate) String() string {
	switch r {
	case RateDeath:
		return "Death"
	case RateDouble:
		return "Double"
	case RateHalf:
		return "Half"
	case RateNullify:
		return "Nullify"
	case RateAbsorb:
		return "Absorb"
	case RateFullCure:
		return "FullCure"
	}
	return fmt.Sprintf("Rate(%d)", uint8(r))
}

// Layout is the battle arrangement of a formation.
type Layout int

const (
	LayoutNormal Layout = iota
	LayoutPreemptive
	LayoutBackAttack
	LayoutSideAttack
	LayoutPincerAttack
	LayoutSideAttack2
	LayoutSideAttack3
	LayoutSideAttack4
	LayoutLocked
)

var layoutNames = [...]string{
	"NORMAL", "PREEMPTIVE", "BACK_ATTACK", "SIDE_ATTACK", "PINCER_ATTACK",
	"SIDE_ATTACK_2", "SIDE_ATTACK_3", "SIDE_ATTACK_4", "LOCKED",
}

// LayoutFromByte maps the raw layout byte; undefined values are NORMAL.
func LayoutFromByte(b uint8) Layout {
	if int(b) >= len(layoutNames) {
		return LayoutNormal
	}
	return Layout(b)
}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return layoutNames[LayoutNormal]
	}
	return layoutNames[l]
}

// Target flag bits; set means on.
var targetFlagNames = [8]string{
	"EnableSelection", "StartOnEnemies", "MultipleDefault", "ToggleSingleMulti",
	"OneSideOnly", "ShortRange", "AllRows", "RandomTarget",
}

// TargetsFromMask lists the set target flags.
func TargetsFromMask(mask uint8) []string {
	var out []string
	for bit, name := range targetFlagNames {
		if mask&(1<<bit) != 0 {
			out = append(out, name)
		}
	}
	return out
}

// Special attack flags are active low: a cleared bit turns the flag on.
var specialFlagNames = map[int]string{
	0:  "DamageMP",
	2:  "AffectedByDarkness",
	4:  "DrainPartial",
	5:  "DrainHPMP",
	7:  "IgnoreStatusDefense",
	8:  "MissIfNotDead",
	9:  "Reflectable",
	10: "Piercing",
	11: "NoRetarget",
	13: "AlwaysCritical",
}

// SpecialFromMask lists the active special flags in bit order.
func SpecialFromMask(mask uint16) []string {
	var out []string
	for bit := 0; bit < 16; bit++ {
		name, ok := specialFlagNames[bit]
		if ok && mask&(1<<bit) == 0 {
			out = append(out, name)
		}
	}
	return out
}

// RestoreType is the condition sub-menu an attack restores.
type RestoreType uint8

const (
	RestorePartyHP RestoreType = iota
	RestorePartyMP
	RestorePartyStatus
)

func (r RestoreType) String() string {
	switch r {
	case RestorePartyHP:
		return "PartyHP"
	case RestorePartyMP:
		return "PartyMP"
	case RestorePartyStatus:
		return "PartyStatus"
	}
	return fmt.Sprintf("Restore(%d)", uint8(r))
}

// StatusMode says what an attack does with its status mask.
type StatusMode int

const (
	StatusInflict StatusMode = iota
	StatusCure
	StatusToggle
)

func (m StatusMode) String() string {
	switch m {
	case StatusCure:
		return "Cure"
	case StatusToggle:
		return "Toggle"
	}
	return "Inflict"
}

var locationNames = [...]string{
	"Blank", "Bizarro Battle - Center", "Grassland", "Mt Nibel", "Forest", "Beach", "Desert", "Snow",
	"Swamp", "Sector 1 Train Station", "Reactor 1", "Reactor 1 Core", "Reactor 1 Entrance",
	"Sector 4 Subway", "Nibel Caves", "Shinra HQ", "Midgar Raid Subway", "Hojo's Lab",
	"Shinra Elevators", "Shinra Roof", "Midgar Highway", "Wutai Pagoda", "Church", "Coral Valley",
	"Midgar Slums", "Sector 4 Corridors", "Sector 4 Gantries", "Sector 7 Support Pillar (Stairway)",
	"Sector 7 Support Pillar (Top)", "Sector 8", "Sewers", "Mythril Mines",
	"Northern Crater - Floating Platforms", "Corel Mountain Path", "Junon Beach", "Junon Cargo Ship",
	"Corel Prison", "Battle Square", "Da Chao - Rapps Battle", "Cid's Backyard",
	"Final Descent to Sephiroth", "Reactor 5 Entrance", "Temple of the Ancients - Escher Room",
	"Shinra Mansion", "Junon Airship Dock", "Whirlwind Maze", "Junon Underwater Reactor",
	"Gongaga Reactor", "Gelnika", "Train Graveyard", "Great Glacier Ice Caves", "Sister Ray",
	"Sister Ray Base", "Forgotten City Altar", "Northern Crater - Initial Descent",
	"Northern Crater - Hatchery", "Northern Crater - Water Area", "Safer Battle",
	"Kalm Flashback - Dragon Battle", "Junon Underwater Pipe", "Blank", "Corel Railway - Canyon",
	"Whirlwind Maze - Crater", "Corel Railway - Rollercoaster", "Wooden Bridge", "Da Chao",
	"Fort Condor", "Dirt Wasteland", "Bizarro Battle - Right Side", "Bizarro Battle - Left Side",
	"Jenova SYNTHESIS Battle", "Corel Train Battle", "Cosmo Canyon", "Caverns of the Gi",
	"Nibelheim Mansion Basement", "Temple of the Ancients - Demons Gate",
	"Temple of the Ancients - Mural Room", "Temple of the Ancients - Clock Passage",
	"Final Battle - Sephiroth", "Jungle", "Ultimate Weapon - Battle on Highwind", "Corel Reactor",
	"Unused", "Don Corneo's Mansion", "Emerald Weapon Battle", "Reactor 5", "Shinra HQ - Escape",
	"Ultimate Weapon - Gongaga Reactor", "Corel Prison - Dyne Battle", "Ultimate Weapon - Forest",
}

// LocationName returns the battle arena name for a location id.
func LocationName(id uint16) string {
	if int(id) < len(locationNames) {
		return locationNames[id]
	}
	return fmt.Sprintf("Unknown (0x%04X)", id)
}
