// Package state is the entity behaviour state machine: states own their
// enter/update/exit behaviour and a priority ordered list of guarded
// transitions evaluated once per tick by a Handler.
package state

// ID identifies a state of an entity state machine.
type ID int

const (
	// Previous is a meta target resolving to the state active before the
	// current one.
	Previous ID = iota - 1
	Idle
	Walk
	Turn
	Crouch
	Border
	Jump
	Fall
	PrepareAttack
	PreparedAttack
	AttackHorizontal
	AttackUp
	AttackCrouch
	AttackJump
	AttackFall
	LianaIdle
	LianaWalk
	LianaSoar
	LianaSlide
	Slide
	Hurt
	Dead
	Win
	Patrol
	Prepare
	Attack1
	Attack2
	Defense
	Explode
)

var idNames = map[ID]string{
	Previous:         "Previous",
	Idle:             "Idle",
	Walk:             "Walk",
	Turn:             "Turn",
	Crouch:           "Crouch",
	Border:           "Border",
	Jump:             "Jump",
	Fall:             "Fall",
	PrepareAttack:    "PrepareAttack",
	PreparedAttack:   "PreparedAttack",
	AttackHorizontal: "AttackHorizontal",
	AttackUp:         "AttackUp",
	AttackCrouch:     "AttackCrouch",
	AttackJump:       "AttackJump",
	AttackFall:       "AttackFall",
	LianaIdle:        "LianaIdle",
	LianaWalk:        "LianaWalk",
	LianaSoar:        "LianaSoar",
	LianaSlide:       "LianaSlide",
	Slide:            "Slide",
	Hurt:             "Hurt",
	Dead:             "Dead",
	Win:              "Win",
	Patrol:           "Patrol",
	Prepare:          "Prepare",
	Attack1:          "Attack1",
	Attack2:          "Attack2",
	Defense:          "Defense",
	Explode:          "Explode",
}

// String returns the string representation of the state id
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "Unknown"
}

// Guard gates a transition. It reads the entity model flags refreshed by
// the collision and animation passes of the current tick.
type Guard func() bool

// Transition is a guarded edge to another state.
type Transition struct {
	Target ID
	Guard  Guard
}

// State is one node of an entity state machine.
type State interface {
	ID() ID
	Enter()
	Update(extrp float64)
	Exit()
	// Transitions returns the guarded edges in priority order.
	Transitions() []Transition
}
