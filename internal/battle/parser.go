package battle

import (
	"fmt"

	"ff7-asset-extract/internal/binreader"
	"ff7-asset-extract/internal/fftext"
	"ff7-asset-extract/internal/psx"
)

const cameraPadding = 12

// Parse decodes one decompressed scene record. The AI sections after the
// attack names are not decoded, but the record must be complete.
func Parse(data []byte) (*Scene, error) {
	if len(data) < SceneSize {
		return nil, fmt.Errorf("battle: scene record is %d bytes, want %#x: %w",
			len(data), SceneSize, binreader.ErrOutOfBounds)
	}

	r := binreader.NewSticky(data)
	s := &Scene{}

	for i := range s.EnemyIDs {
		s.EnemyIDs[i] = r.U16()
	}
	r.Skip(2)

	for i := range s.Setups {
		st := &s.Setups[i]
		st.Location = r.U16()
		st.NextFormation = r.U16()
		st.EscapeCounter = r.U16()
		r.Skip(2)
		for k := range st.ArenaCandidates {
			st.ArenaCandidates[k] = r.U16()
		}
		st.Flags = r.U16()
		st.Layout = r.U8()
		st.Camera = r.U8()
	}

	for i := range s.Cameras {
		for k := range s.Cameras[i] {
			c := &s.Cameras[i][k]
			for a := 0; a < 3; a++ {
				c.Position[a] = psx.Fixed255(r.U16())
			}
			for a := 0; a < 3; a++ {
				c.Direction[a] = psx.Fixed255(r.U16())
			}
		}
		r.Skip(cameraPadding)
	}

	for i := range s.Slots {
		for k := range s.Slots[i] {
			sl := &s.Slots[i][k]
			sl.EnemyID = r.U16()
			sl.X = r.U16()
			sl.Y = r.U16()
			sl.Z = r.U16()
			sl.Row = r.U16()
			sl.Cover = r.U16()
			sl.Flags = r.U32()
		}
	}

	for i := range s.Enemies {
		readEnemy(r, &s.Enemies[i])
	}
	for i := range s.Attacks {
		readAttack(r, &s.Attacks[i])
	}
	for i := range s.AttackIDs {
		s.AttackIDs[i] = r.U16()
	}
	for i := range s.AttackNames {
		s.AttackNames[i] = fftext.Decode(r.Bytes(nameSize))
	}

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("battle: parse scene: %w", err)
	}
	return s, nil
}

func readEnemy(r *binreader.Sticky, e *EnemyStats) {
	e.Name = fftext.Decode(r.Bytes(nameSize))
	e.Level = r.U8()
	e.Speed = r.U8()
	e.Luck = r.U8()
	e.Evade = r.U8()
	e.Strength = r.U8()
	e.Defense = r.U8()
	e.Magic = r.U8()
	e.MagicDef = r.U8()
	for i := range e.Elements {
		e.Elements[i] = r.U8()
	}
	for i := range e.ElementRates {
		e.ElementRates[i] = r.U8()
	}
	for i := range e.Animations {
		e.Animations[i] = r.U8()
	}
	for i := range e.AttackIDs {
		e.AttackIDs[i] = r.U16()
	}
	for i := range e.AttackCameras {
		e.AttackCameras[i] = r.U16()
	}
	for i := range e.ItemRates {
		e.ItemRates[i] = r.U8()
	}
	for i := range e.ItemIDs {
		e.ItemIDs[i] = r.U16()
	}
	for i := range e.ManipulateIDs {
		e.ManipulateIDs[i] = r.U16()
	}
	r.Skip(2)
	e.MP = r.U16()
	e.AP = r.U16()
	e.MorphID = r.U16()
	e.BackDamage = r.U8()
	r.Skip(1)
	e.HP = r.U32()
	e.EXP = r.U32()
	e.Gil = r.U32()
	e.Immunities = r.U32()
	r.Skip(4)
}

func readAttack(r *binreader.Sticky, a *AttackData) {
	a.Accuracy = r.U8()
	a.ImpactEffect = r.U8()
	a.HurtAnimation = r.U8()
	r.Skip(1)
	a.MPCost = r.U16()
	a.ImpactSound = r.U16()
	a.CameraSingle = r.U16()
	a.CameraMultiple = r.U16()
	a.Target = r.U8()
	a.AttackEffect = r.U8()
	a.Damage = r.U8()
	a.Power = r.U8()
	a.Restore = r.U8()
	a.StatusChange = r.U8()
	a.Additional = r.U8()
	a.AdditionalMod = r.U8()
	a.Statuses = r.U32()
	a.Elements = r.U16()
	a.Special = r.U16()
}
