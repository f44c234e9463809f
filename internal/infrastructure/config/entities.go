package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player   EntityConfig            `json:"player"`
	Monsters map[string]EntityConfig `json:"monsters"`
	Effects  map[string]EffectConfig `json:"effects"`
}

// Behaviours a monster config can select.
const (
	BehaviorPatrol      = "patrol"
	BehaviorExecutioner = "executioner"
)

type EntityConfig struct {
	ID         string                     `json:"id"`
	Behavior   string                     `json:"behavior,omitempty"`
	Size       SizeConfig                 `json:"size"`
	Movement   MovementConfig             `json:"movement"`
	Life       int                        `json:"life"`
	Animations map[string]AnimationConfig `json:"animations,omitempty"`
	Attack     AttackConfig               `json:"attack,omitempty"`
	Patrol     *PatrolConfig              `json:"patrol,omitempty"`
}

type SizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MovementConfig values are in pixels per tick.
type MovementConfig struct {
	WalkSpeed       float64 `json:"walkSpeed"`
	WalkVelocity    float64 `json:"walkVelocity"`
	WalkSensibility float64 `json:"walkSensibility"`
	CrouchSpeed     float64 `json:"crouchSpeed,omitempty"`
	JumpForce       float64 `json:"jumpForce,omitempty"`
	JumpDecay       float64 `json:"jumpDecay,omitempty"`
	JumpSpeed       float64 `json:"jumpSpeed,omitempty"`
	AttackJumpBoost float64 `json:"attackJumpBoost,omitempty"`
	LianaSpeed      float64 `json:"lianaSpeed,omitempty"`
	SlideSpeed      float64 `json:"slideSpeed,omitempty"`
	SlideVelocity   float64 `json:"slideVelocity,omitempty"`
	HurtForce       float64 `json:"hurtForce,omitempty"`
}

type AnimationConfig struct {
	First   int     `json:"first"`
	Last    int     `json:"last"`
	Speed   float64 `json:"speed"`
	Reverse bool    `json:"reverse,omitempty"`
	Repeat  bool    `json:"repeat,omitempty"`
}

// AttackConfig times the executioner attack sequence, in milliseconds.
type AttackConfig struct {
	PrepareDelay int     `json:"prepareDelay,omitempty"`
	DefenseDelay int     `json:"defenseDelay,omitempty"`
	Speed        float64 `json:"speed,omitempty"`
}

type EffectConfig struct {
	ID        string          `json:"id"`
	Animation AnimationConfig `json:"animation"`
}
