package export

import (
	"encoding/xml"
	"fmt"
	"io"

	"ff7-asset-extract/internal/battle"
)

type xmlBattleData struct {
	XMLName    xml.Name       `xml:"BattleData"`
	Enemies    []xmlEnemy     `xml:"Enemies>Enemy"`
	Attacks    []xmlAttack    `xml:"Attacks>Attack"`
	Formations []xmlFormation `xml:"Formations>Formation"`
}

type xmlEnemy struct {
	ID         uint16        `xml:"id,attr"`
	Name       string        `xml:"name,attr"`
	Level      uint8         `xml:"level,attr"`
	HP         uint32        `xml:"hp,attr"`
	MP         uint16        `xml:"mp,attr"`
	EXP        uint32        `xml:"exp,attr"`
	AP         uint16        `xml:"ap,attr"`
	Gil        uint32        `xml:"gil,attr"`
	Morph      *uint16       `xml:"morph,attr,omitempty"`
	BackDamage float32       `xml:"backDamage,attr"`
	Stats      xmlStats      `xml:"Stats"`
	Elements   []xmlElement  `xml:"Elements>Element"`
	Attacks    []xmlEnemyAtk `xml:"Attacks>Attack"`
	Items      []xmlItem     `xml:"Items>Item"`
	Manipulate []uint16      `xml:"Manipulate>Attack"`
	Immunities []string      `xml:"Immunities>Status"`
}

type xmlStats struct {
	Speed    uint8 `xml:"speed,attr"`
	Luck     uint8 `xml:"luck,attr"`
	Evade    uint8 `xml:"evade,attr"`
	Strength uint8 `xml:"strength,attr"`
	Defense  uint8 `xml:"defense,attr"`
	Magic    uint8 `xml:"magic,attr"`
	MagicDef uint8 `xml:"magicDefense,attr"`
}

type xmlElement struct {
	Name string `xml:"name,attr"`
	Rate string `xml:"rate,attr"`
}

type xmlEnemyAtk struct {
	ID        uint16  `xml:"id,attr"`
	Animation uint8   `xml:"animation,attr"`
	Camera    *uint16 `xml:"camera,attr,omitempty"`
}

type xmlItem struct {
	ID    uint16 `xml:"id,attr"`
	Rate  uint8  `xml:"rate,attr"`
	Steal bool   `xml:"steal,attr"`
}

type xmlAttack struct {
	ID             uint16           `xml:"id,attr"`
	Name           string           `xml:"name,attr"`
	Accuracy       uint8            `xml:"accuracy,attr"`
	MPCost         uint16           `xml:"mpCost,attr"`
	Power          uint8            `xml:"power,attr"`
	DamageType     uint8            `xml:"damageType,attr"`
	DamageFormula  uint8            `xml:"damageFormula,attr"`
	HurtAnimation  uint8            `xml:"hurtAnimation,attr"`
	ImpactEffect   *uint8           `xml:"impactEffect,attr,omitempty"`
	AttackEffect   *uint8           `xml:"attackEffect,attr,omitempty"`
	ImpactSound    *uint16          `xml:"impactSound,attr,omitempty"`
	CameraSingle   *uint16          `xml:"cameraSingle,attr,omitempty"`
	CameraMultiple *uint16          `xml:"cameraMultiple,attr,omitempty"`
	Restore        string           `xml:"restore,attr,omitempty"`
	Targets        []string         `xml:"Targets>Flag"`
	Elements       []string         `xml:"Elements>Element"`
	Special        []string         `xml:"Special>Flag"`
	StatusChange   *xmlStatusChange `xml:"StatusChange"`
}

type xmlStatusChange struct {
	Mode     string   `xml:"mode,attr"`
	Chance   uint8    `xml:"chance,attr"`
	Statuses []string `xml:"Status"`
}

type xmlFormation struct {
	ID                 int            `xml:"id,attr"`
	Location           uint16         `xml:"location,attr"`
	LocationName       string         `xml:"locationName,attr"`
	Layout             string         `xml:"layout,attr"`
	NextFormation      *uint16        `xml:"next,attr,omitempty"`
	EscapeCounter      uint16         `xml:"escapeCounter,attr"`
	Escapable          bool           `xml:"escapable,attr"`
	SkipVictoryPose    bool           `xml:"skipVictoryPose,attr"`
	SkipSpoils         bool           `xml:"skipSpoils,attr"`
	PreemptiveDisabled bool           `xml:"preemptiveDisabled,attr"`
	InitialCamera      uint8          `xml:"initialCamera,attr"`
	Arena              []uint16       `xml:"Arena>Candidate"`
	Cameras            []xmlCamera    `xml:"Cameras>Camera"`
	Enemies            []xmlPlacement `xml:"Enemies>Enemy"`
}

type xmlCamera struct {
	Position  xmlVec `xml:"Position"`
	Direction xmlVec `xml:"Direction"`
}

type xmlVec struct {
	X float32 `xml:"x,attr"`
	Y float32 `xml:"y,attr"`
	Z float32 `xml:"z,attr"`
}

type xmlPlacement struct {
	ID         uint16 `xml:"id,attr"`
	Row        uint16 `xml:"row,attr"`
	Cover      string `xml:"cover,attr"`
	Direction  bool   `xml:"direction,attr"`
	Visible    bool   `xml:"visible,attr"`
	Targetable bool   `xml:"targetable,attr"`
	Position   xmlVec `xml:"Position"`
}

func vec(v [3]float32) xmlVec { return xmlVec{X: v[0], Y: v[1], Z: v[2]} }

func names[T fmt.Stringer](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// WriteBattleXML writes everything collected in acc as one XML document.
func WriteBattleXML(w io.Writer, acc *battle.Accumulator) error {
	var doc xmlBattleData

	for _, e := range acc.Enemies() {
		xe := xmlEnemy{
			ID: e.ID, Name: e.Name, Level: e.Level,
			HP: e.HP, MP: e.MP, EXP: e.EXP, AP: e.AP, Gil: e.Gil,
			Morph: e.Morph, BackDamage: e.BackDamage,
			Stats: xmlStats{
				Speed: e.Speed, Luck: e.Luck, Evade: e.Evade,
				Strength: e.Strength, Defense: e.Defense,
				Magic: e.Magic, MagicDef: e.MagicDef,
			},
			Manipulate: e.ManipulateAttacks,
			Immunities: names(e.Immunities),
		}
		for _, el := range e.Elements {
			xe.Elements = append(xe.Elements, xmlElement{Name: el.Element.String(), Rate: el.Rate.String()})
		}
		for _, a := range e.Attacks {
			xe.Attacks = append(xe.Attacks, xmlEnemyAtk{ID: a.ID, Animation: a.Animation, Camera: a.Camera})
		}
		for _, it := range e.Items {
			xe.Items = append(xe.Items, xmlItem{ID: it.ID, Rate: it.Rate, Steal: it.Steal})
		}
		doc.Enemies = append(doc.Enemies, xe)
	}

	for _, a := range acc.Attacks() {
		xa := xmlAttack{
			ID: a.ID, Name: a.Name, Accuracy: a.Accuracy, MPCost: a.MPCost, Power: a.Power,
			DamageType: a.Damage.Type, DamageFormula: a.Damage.Formula,
			HurtAnimation: a.HurtAnimation, ImpactEffect: a.ImpactEffect, AttackEffect: a.AttackEffect,
			ImpactSound: a.ImpactSound, CameraSingle: a.CameraSingle, CameraMultiple: a.CameraMultiple,
			Targets: a.Targets, Elements: names(a.Elements), Special: a.Special,
		}
		if a.Restore != nil {
			xa.Restore = a.Restore.String()
		}
		if a.StatusChange != nil {
			xa.StatusChange = &xmlStatusChange{
				Mode:     a.StatusChange.Mode.String(),
				Chance:   a.StatusChange.Chance,
				Statuses: names(a.Statuses),
			}
		}
		doc.Attacks = append(doc.Attacks, xa)
	}

	for _, f := range acc.Formations() {
		xf := xmlFormation{
			ID: f.ID, Location: f.Location, LocationName: f.LocationName,
			Layout: f.Layout.String(), NextFormation: f.NextFormation, EscapeCounter: f.EscapeCounter,
			Escapable: f.Escapable, SkipVictoryPose: f.SkipVictoryPose, SkipSpoils: f.SkipSpoils,
			PreemptiveDisabled: f.PreemptiveDisabled, InitialCamera: f.InitialCamera,
			Arena: f.ArenaCandidates,
		}
		for _, c := range f.Cameras {
			xf.Cameras = append(xf.Cameras, xmlCamera{Position: vec(c.Position), Direction: vec(c.Direction)})
		}
		for _, fe := range f.Enemies {
			xf.Enemies = append(xf.Enemies, xmlPlacement{
				ID: fe.EnemyID, Row: fe.Row, Cover: fe.Cover,
				Direction: fe.Direction, Visible: fe.Visible, Targetable: fe.Targetable,
				Position: vec(fe.Position),
			})
		}
		doc.Formations = append(doc.Formations, xf)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: write battle xml: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode battle xml: %w", err)
	}
	return enc.Flush()
}
