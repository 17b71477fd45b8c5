package battle

const (
	// SceneSize is the size of one decompressed scene record.
	SceneSize = 0x1E80

	EnemiesPerScene  = 3
	SetupsPerScene   = 4
	SlotsPerSetup    = 6
	CamerasPerSetup  = 3
	AttacksPerScene  = 32
	EnemyAttackSlots = 16
	nameSize         = 32

	absent8  = 0xFF
	absent16 = 0xFFFF
	absent32 = 0xFFFFFFFF

	// noBattle marks an unused chained-battle or arena candidate id.
	noBattle = 999
)

// Setup is a raw battle setup record.
type Setup struct {
	Location        uint16
	NextFormation   uint16
	EscapeCounter   uint16
	ArenaCandidates [4]uint16
	Flags           uint16
	Layout          uint8
	Camera          uint8
}

// CameraPosition is one decoded pre-battle camera: where it sits and what it looks at.
type CameraPosition struct {
	Position  [3]float32
	Direction [3]float32
}

// Slot is a raw formation slot.
type Slot struct {
	EnemyID uint16
	X, Y, Z uint16 // fixed point, storage order
	Row     uint16
	Cover   uint16
	Flags   uint32
}

// EnemyStats is a raw enemy record.
type EnemyStats struct {
	Name                               string
	Level, Speed, Luck, Evade          uint8
	Strength, Defense, Magic, MagicDef uint8
	Elements                           [8]uint8
	ElementRates                       [8]uint8
	Animations                         [EnemyAttackSlots]uint8
	AttackIDs                          [EnemyAttackSlots]uint16
	AttackCameras                      [EnemyAttackSlots]uint16
	ItemRates                          [4]uint8
	ItemIDs                            [4]uint16
	ManipulateIDs                      [3]uint16
	MP, AP                             uint16
	MorphID                            uint16
	BackDamage                         uint8
	HP, EXP, Gil                       uint32
	Immunities                         uint32
}

// AttackData is a raw attack record.
type AttackData struct {
	Accuracy       uint8
	ImpactEffect   uint8
	HurtAnimation  uint8
	MPCost         uint16
	ImpactSound    uint16
	CameraSingle   uint16
	CameraMultiple uint16
	Target         uint8
	AttackEffect   uint8
	Damage         uint8
	Power          uint8
	Restore        uint8
	StatusChange   uint8
	Additional     uint8
	AdditionalMod  uint8
	Statuses       uint32
	Elements       uint16
	Special        uint16
}

// Scene is one raw scene record in storage order.
type Scene struct {
	EnemyIDs    [EnemiesPerScene]uint16
	Setups      [SetupsPerScene]Setup
	Cameras     [SetupsPerScene][CamerasPerSetup]CameraPosition
	Slots       [SetupsPerScene][SlotsPerSetup]Slot
	Enemies     [EnemiesPerScene]EnemyStats
	Attacks     [AttacksPerScene]AttackData
	AttackIDs   [AttacksPerScene]uint16
	AttackNames [AttacksPerScene]string
}

// ElementRate pairs an element with the enemy's reaction to it.
type ElementRate struct {
	Element Element
	Rate    Rate
}

// EnemyAttack is one entry of an enemy's attack list.
type EnemyAttack struct {
	ID        uint16
	Animation uint8
	Camera    *uint16
}

// Item is a drop or steal.
type Item struct {
	ID    uint16
	Rate  uint8 // chance in 64ths
	Steal bool
}

// Enemy is a normalized enemy.
type Enemy struct {
	ID                                 uint16
	Name                               string
	Level, Speed, Luck, Evade          uint8
	Strength, Defense, Magic, MagicDef uint8
	Elements                           []ElementRate
	Attacks                            []EnemyAttack
	Items                              []Item
	ManipulateAttacks                  []uint16
	HP, EXP, Gil                       uint32
	MP, AP                             uint16
	Morph                              *uint16
	BackDamage                         float32
	Immunities                         []Status
}

// DamageFormula splits the damage byte into its nibbles.
type DamageFormula struct {
	Type    uint8
	Formula uint8
}

// StatusChange is an attack's chance to alter statuses.
type StatusChange struct {
	Chance uint8 // in 64ths
	Mode   StatusMode
}

// Attack is a normalized attack.
type Attack struct {
	ID             uint16
	Name           string
	Accuracy       uint8
	ImpactEffect   *uint8
	HurtAnimation  uint8
	MPCost         uint16
	ImpactSound    *uint16
	CameraSingle   *uint16
	CameraMultiple *uint16
	Targets        []string
	AttackEffect   *uint8
	Damage         DamageFormula
	Power          uint8
	Restore        *RestoreType
	StatusChange   *StatusChange
	Statuses       []Status
	Elements       []Element
	Special        []string
}

// FormationEnemy is one placed enemy of a formation.
type FormationEnemy struct {
	EnemyID    uint16
	Position   [3]float32 // X, Y (height), Z
	Row        uint16
	Cover      string // one '0'/'1' per cover bit, bit 0 first
	Direction  bool
	Visible    bool
	Targetable bool
}

// Formation is a normalized battle setup with its enemies and cameras.
type Formation struct {
	ID                 int
	Location           uint16
	LocationName       string
	NextFormation      *uint16
	EscapeCounter      uint16
	ArenaCandidates    []uint16
	Escapable          bool
	SkipVictoryPose    bool
	SkipSpoils         bool
	PreemptiveDisabled bool
	Layout             Layout
	InitialCamera      uint8
	Cameras            [CamerasPerSetup]CameraPosition
	Enemies            []FormationEnemy
}
