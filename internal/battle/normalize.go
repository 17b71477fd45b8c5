package battle

import (
	"strings"

	"ff7-asset-extract/internal/psx"
)

// Setup flag bits. The flags are active low except where noted.
const (
	flagEscapable          = 0x0004 // set = can escape
	flagNoVictoryPose      = 0x0008
	flagNoSpoils           = 0x0010
	flagPreemptiveDisabled = 0x0080
)

// Formation slot condition bits.
const (
	slotVisible    = 0x0001
	slotDirection  = 0x0002
	slotTargetable = 0x0008
)

const coverBits = 5

// Batch is everything one scene contributes before deduplication.
type Batch struct {
	Enemies    []Enemy
	Attacks    []Attack
	Formations []Formation
}

// Normalize turns a raw scene into normalized records. sceneIndex numbers
// the formations: setup i of scene n gets id n*4+i.
func (s *Scene) Normalize(sceneIndex int) Batch {
	var b Batch
	for i, id := range s.EnemyIDs {
		if id == absent16 {
			continue
		}
		b.Enemies = append(b.Enemies, normalizeEnemy(id, &s.Enemies[i]))
	}
	for i, id := range s.AttackIDs {
		if id == absent16 {
			continue
		}
		b.Attacks = append(b.Attacks, normalizeAttack(id, s.AttackNames[i], &s.Attacks[i]))
	}
	for i := range s.Setups {
		b.Formations = append(b.Formations, s.formation(sceneIndex*SetupsPerScene+i, i))
	}
	return b
}

func opt8(v uint8) *uint8 {
	if v == absent8 {
		return nil
	}
	return &v
}

func opt16(v uint16) *uint16 {
	if v == absent16 {
		return nil
	}
	return &v
}

func normalizeEnemy(id uint16, e *EnemyStats) Enemy {
	out := Enemy{
		ID:         id,
		Name:       e.Name,
		Level:      e.Level,
		Speed:      e.Speed,
		Luck:       e.Luck,
		Evade:      e.Evade,
		Strength:   e.Strength,
		Defense:    e.Defense,
		Magic:      e.Magic,
		MagicDef:   e.MagicDef,
		HP:         e.HP,
		EXP:        e.EXP,
		Gil:        e.Gil,
		MP:         e.MP,
		AP:         e.AP,
		Morph:      opt16(e.MorphID),
		BackDamage: float32(e.BackDamage) / 8,
		Immunities: StatusesFromMask(e.Immunities),
	}

	for i, el := range e.Elements {
		if el == absent8 || e.ElementRates[i] == absent8 {
			continue
		}
		out.Elements = append(out.Elements, ElementRate{Element: Element(el), Rate: Rate(e.ElementRates[i])})
	}
	for i, a := range e.AttackIDs {
		if a == absent16 {
			continue
		}
		out.Attacks = append(out.Attacks, EnemyAttack{
			ID:        a,
			Animation: e.Animations[i],
			Camera:    opt16(e.AttackCameras[i]),
		})
	}
	for i, it := range e.ItemIDs {
		rate := e.ItemRates[i]
		if it == absent16 || rate == absent8 {
			continue
		}
		out.Items = append(out.Items, Item{ID: it, Rate: rate & 0x3F, Steal: rate&0x80 != 0})
	}
	for _, m := range e.ManipulateIDs {
		if m != absent16 {
			out.ManipulateAttacks = append(out.ManipulateAttacks, m)
		}
	}
	return out
}

func normalizeAttack(id uint16, name string, a *AttackData) Attack {
	out := Attack{
		ID:             id,
		Name:           name,
		Accuracy:       a.Accuracy,
		ImpactEffect:   opt8(a.ImpactEffect),
		HurtAnimation:  a.HurtAnimation,
		MPCost:         a.MPCost,
		ImpactSound:    opt16(a.ImpactSound),
		CameraSingle:   opt16(a.CameraSingle),
		CameraMultiple: opt16(a.CameraMultiple),
		Targets:        TargetsFromMask(a.Target),
		AttackEffect:   opt8(a.AttackEffect),
		Damage:         DamageFormula{Type: a.Damage >> 4, Formula: a.Damage & 0x0F},
		Power:          a.Power,
		Elements:       ElementsFromMask(a.Elements),
		Special:        SpecialFromMask(a.Special),
	}
	if a.Restore != absent8 {
		rt := RestoreType(a.Restore)
		out.Restore = &rt
	}
	if a.StatusChange != absent8 {
		sc := StatusChange{Chance: a.StatusChange & 0x3F, Mode: StatusInflict}
		switch {
		case a.StatusChange&0x80 != 0:
			sc.Mode = StatusToggle
		case a.StatusChange&0x40 != 0:
			sc.Mode = StatusCure
		}
		out.StatusChange = &sc
		out.Statuses = StatusesFromMask(a.Statuses)
	}
	return out
}

func (s *Scene) formation(id, i int) Formation {
	st := &s.Setups[i]
	f := Formation{
		ID:                 id,
		Location:           st.Location,
		LocationName:       LocationName(st.Location),
		EscapeCounter:      st.EscapeCounter,
		Escapable:          st.Flags&flagEscapable != 0,
		SkipVictoryPose:    st.Flags&flagNoVictoryPose == 0,
		SkipSpoils:         st.Flags&flagNoSpoils == 0,
		PreemptiveDisabled: st.Flags&flagPreemptiveDisabled == 0,
		Layout:             LayoutFromByte(st.Layout),
		InitialCamera:      st.Camera,
		Cameras:            s.Cameras[i],
	}
	if st.NextFormation != noBattle && st.NextFormation != absent16 {
		next := st.NextFormation
		f.NextFormation = &next
	}
	for _, a := range st.ArenaCandidates {
		if a != noBattle && a != absent16 {
			f.ArenaCandidates = append(f.ArenaCandidates, a)
		}
	}

	for _, sl := range s.Slots[i] {
		if sl.EnemyID == absent16 {
			continue
		}
		f.Enemies = append(f.Enemies, FormationEnemy{
			EnemyID:    sl.EnemyID,
			Position:   [3]float32{psx.Fixed255(sl.X), psx.Fixed255(sl.Z), psx.Fixed255(sl.Y)},
			Row:        sl.Row,
			Cover:      coverString(sl.Cover),
			Direction:  sl.Flags&slotDirection != 0,
			Visible:    sl.Flags&slotVisible != 0,
			Targetable: sl.Flags&slotTargetable != 0,
		})
	}
	return f
}

func coverString(v uint16) string {
	var sb strings.Builder
	for bit := 0; bit < coverBits; bit++ {
		if v&(1<<bit) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
