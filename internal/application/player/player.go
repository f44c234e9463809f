// Package player holds the state machine of the player character.
//
// Every state registers its transitions in the same priority order: the
// stage end first, damage next, then losing support, then attacks, then
// plain movement. The order matters: several guards can hold on the same
// tick and only the first one fires.
package player

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/force"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// Kind is the feature tag of the player.
const Kind = "player"

// Sound events played by player states.
const (
	SfxJump  = "jump"
	SfxSword = "sword"
	SfxHurt  = "hurt"
	SfxDie   = "die"
)

// Explosion is the feature spawned when an attack breaks a liana.
const Explosion = config.ExplosionEffect

var defaultAnimations = map[state.ID]entity.Animation{
	state.Idle:             {Name: "idle", First: 0, Last: 3, Speed: 0.1, Repeat: true},
	state.Walk:             {Name: "walk", First: 4, Last: 11, Speed: 0.2, Repeat: true},
	state.Turn:             {Name: "turn", First: 12, Last: 13, Speed: 0.25},
	state.Crouch:           {Name: "crouch", First: 14, Last: 14, Speed: 0.25, Repeat: true},
	state.Border:           {Name: "border", First: 15, Last: 16, Speed: 0.1, Repeat: true},
	state.Jump:             {Name: "jump", First: 17, Last: 17, Speed: 0.25, Repeat: true},
	state.Fall:             {Name: "fall", First: 18, Last: 19, Speed: 0.15, Repeat: true},
	state.PrepareAttack:    {Name: "attack_prepare", First: 20, Last: 22, Speed: 0.3},
	state.PreparedAttack:   {Name: "attack_prepared", First: 22, Last: 22, Speed: 0.25, Repeat: true},
	state.AttackHorizontal: {Name: "attack_horizontal", First: 23, Last: 27, Speed: 0.35},
	state.AttackUp:         {Name: "attack_up", First: 28, Last: 31, Speed: 0.35},
	state.AttackCrouch:     {Name: "attack_crouch", First: 32, Last: 35, Speed: 0.35},
	state.AttackJump:       {Name: "attack_jump", First: 36, Last: 39, Speed: 0.3},
	state.AttackFall:       {Name: "attack_fall", First: 40, Last: 41, Speed: 0.2, Repeat: true},
	state.LianaIdle:        {Name: "liana_idle", First: 42, Last: 42, Speed: 0.25, Repeat: true},
	state.LianaWalk:        {Name: "liana_walk", First: 43, Last: 48, Speed: 0.2, Repeat: true},
	state.LianaSoar:        {Name: "liana_soar", First: 49, Last: 54, Speed: 0.2, Repeat: true},
	state.LianaSlide:       {Name: "liana_slide", First: 55, Last: 55, Speed: 0.25, Repeat: true},
	state.Slide:            {Name: "slide", First: 56, Last: 57, Speed: 0.2, Repeat: true},
	state.Hurt:             {Name: "hurt", First: 58, Last: 59, Speed: 0.1},
	state.Dead:             {Name: "dead", First: 60, Last: 64, Speed: 0.1},
	state.Win:              {Name: "win", First: 65, Last: 67, Speed: 0.1, Repeat: true},
}

// animation returns the configured animation of a state, or the built-in
// one when the entity config does not override it.
func animation(m *entity.Model, id state.ID) entity.Animation {
	def := defaultAnimations[id]
	if a, ok := m.Animation(def.Name); ok {
		return a
	}
	return def
}

// Categories returns the collision probes of a player of the given size,
// in evaluation order.
func Categories(width, height float64) []tile.Category {
	knee := height / 3
	return []tile.Category{
		{Name: "leg", Kind: tile.KindLeg, Axis: tile.AxisY, Glue: true, Groups: legGroups},
		{Name: "hand", Kind: tile.KindHand, Axis: tile.AxisY, OffsetY: height, Glue: true, Groups: handGroups},
		{Name: "knee_front", Kind: tile.KindKnee, Axis: tile.AxisX, OffsetX: width / 2, OffsetY: knee, Groups: kneeGroups},
		{Name: "knee_back", Kind: tile.KindKnee, Axis: tile.AxisX, OffsetX: -width / 2, OffsetY: knee, Groups: kneeGroups},
		{Name: "head", Kind: tile.KindHead, Axis: tile.AxisY, OffsetY: height, Groups: []tile.Group{tile.GroupBlock}},
		{Name: "body", Kind: tile.KindBody, Axis: tile.AxisY, OffsetY: height / 2, Groups: []tile.Group{tile.GroupSpike, tile.GroupTrigger}},
	}
}

var legGroups = []tile.Group{
	tile.GroupGround, tile.GroupGroundTop, tile.GroupBlock, tile.GroupSpike,
	tile.GroupSlopeRight1, tile.GroupSlopeRight2, tile.GroupSlopeRight3,
	tile.GroupSlopeLeft1, tile.GroupSlopeLeft2, tile.GroupSlopeLeft3,
	tile.GroupSteepRight1, tile.GroupSteepRight2, tile.GroupSteepLeft1, tile.GroupSteepLeft2,
	tile.GroupSlideRight, tile.GroupSlideLeft,
	tile.GroupLianaFull,
}

var handGroups = []tile.Group{
	tile.GroupLianaTop, tile.GroupLianaFull, tile.GroupLianaLeft, tile.GroupLianaRight,
}

var kneeGroups = []tile.Group{
	tile.GroupBlock, tile.GroupPillar,
	tile.GroupSteepRight1, tile.GroupSteepRight2, tile.GroupSteepLeft1, tile.GroupSteepLeft2,
}

// playerState is embedded by every player state.
type playerState struct {
	state.Base
	m *entity.Model
}

func newState(id state.ID, m *entity.Model) playerState {
	return playerState{Base: state.NewBase(id, m, animation(m, id)), m: m}
}

// OnCollideBody ends the stage on a trigger tile.
func (s *playerState) OnCollideBody(r tile.Result) {
	s.Base.OnCollideBody(r)
	if r.Tile.Group == tile.GroupTrigger {
		s.m.SetWin()
	}
}

// brake lets the horizontal movement decay to a stop.
func (s *playerState) brake() {
	s.m.Movement.SetDestinationHorizontal(0)
}

// steer moves toward the input direction at speed and faces it.
func (s *playerState) steer(speed float64) {
	dir := s.m.Input.HorizontalDirection()
	s.m.Movement.SetDestinationHorizontal(dir * speed)
	s.m.Face(dir)
}

// guards are the transition predicates shared by player states.
type guards struct {
	m *entity.Model
}

func (g guards) win() bool      { return g.m.HasWin() }
func (g guards) hurt() bool     { return g.m.IsHurt() }
func (g guards) dead() bool     { return g.m.IsDead() }
func (g guards) airborne() bool { return !g.m.Flags.Grounded() }
func (g guards) sliding() bool  { return g.m.Flags.Slide || g.m.Flags.Steep }
func (g guards) border() bool   { return g.m.Flags.Border }
func (g guards) noBorder() bool { return !g.m.Flags.Border }
func (g guards) falling() bool  { return g.m.Transform.IsFalling() || g.m.Flags.Ceiling }
func (g guards) hanging() bool  { return g.m.Flags.Liana && !g.m.Flags.Grip }
func (g guards) grip() bool     { return g.m.Flags.Grip }

// landed reports a flat support: sliding surfaces are handled apart.
func (g guards) landed() bool {
	return g.m.Flags.CollideY && !g.m.Flags.Slide && !g.m.Flags.Steep
}

func (g guards) jump() bool       { return g.m.IsGoUpOnce() }
func (g guards) fire() bool       { return g.m.IsFire() }
func (g guards) release() bool    { return !g.m.IsFire() }
func (g guards) fireOnce() bool   { return g.m.IsFireOnce() }
func (g guards) crouch() bool     { return g.m.IsGoDown() }
func (g guards) stand() bool      { return !g.m.IsGoDown() }
func (g guards) walk() bool       { return g.m.IsGoHorizontal() }
func (g guards) idle() bool       { return g.m.IsGoNone() }
func (g guards) upOnce() bool     { return g.m.IsGoUpOnce() }
func (g guards) downOnce() bool   { return g.m.IsGoDownOnce() }
func (g guards) finished() bool   { return g.m.IsAnimFinished() }
func (g guards) attackFall() bool { return g.m.IsGoDown() && g.m.IsFireOnce() }

func (g guards) sideOnce() bool {
	return g.m.IsGoLeftOnce() || g.m.IsGoRightOnce()
}

// turning reports input opposite to the current horizontal motion.
func (g guards) turning() bool {
	dir := force.Compare(g.m.Movement.DirectionHorizontal(), 0)
	return g.m.IsGoLeft() && dir > 0 || g.m.IsGoRight() && dir < 0
}

// letGo reports the liana released on purpose or lost.
func (g guards) letGo() bool {
	return g.m.IsGoDownOnce() || !g.m.Flags.Liana && !g.m.Flags.Grip
}

func (g guards) and(a, b state.Guard) state.Guard {
	return func() bool { return a() && b() }
}

// Build creates every player state, registers their transitions and starts
// the machine in Idle.
func Build(m *entity.Model, logger *log.Logger) (*state.Handler, error) {
	g := guards{m: m}

	idle := &Idle{newState(state.Idle, m)}
	walk := &Walk{newState(state.Walk, m)}
	turn := &Turn{newState(state.Turn, m)}
	crouch := &Crouch{newState(state.Crouch, m)}
	border := &Border{newState(state.Border, m)}
	slide := &Slide{playerState: newState(state.Slide, m)}
	jump := &Jump{airborne: newAirborne(state.Jump, m)}
	fall := &Fall{airborne: newAirborne(state.Fall, m)}
	prepare := &PrepareAttack{newState(state.PrepareAttack, m)}
	prepared := &PreparedAttack{newState(state.PreparedAttack, m)}
	attackH := &AttackHorizontal{attacking{newState(state.AttackHorizontal, m)}}
	attackUp := &AttackUp{attacking{newState(state.AttackUp, m)}}
	attackCrouch := &AttackCrouch{attacking{newState(state.AttackCrouch, m)}}
	attackJump := &AttackJump{airborne: newAirborne(state.AttackJump, m)}
	attackFall := &AttackFall{newState(state.AttackFall, m)}
	lianaIdle := &LianaIdle{hanging{newState(state.LianaIdle, m)}}
	lianaWalk := &LianaWalk{hanging{newState(state.LianaWalk, m)}}
	lianaSoar := &LianaSoar{hanging{newState(state.LianaSoar, m)}}
	lianaSlide := &LianaSlide{hanging: hanging{newState(state.LianaSlide, m)}}
	hurt := &Hurt{newState(state.Hurt, m)}
	dead := &Dead{newState(state.Dead, m)}
	win := &Win{newState(state.Win, m)}

	idle.AddTransition(state.Win, g.win)
	idle.AddTransition(state.Hurt, g.hurt)
	idle.AddTransition(state.Fall, g.airborne)
	idle.AddTransition(state.Slide, g.sliding)
	idle.AddTransition(state.PrepareAttack, g.fire)
	idle.AddTransition(state.Jump, g.jump)
	idle.AddTransition(state.Crouch, g.crouch)
	idle.AddTransition(state.Turn, g.turning)
	idle.AddTransition(state.Walk, g.walk)
	idle.AddTransition(state.Border, g.border)

	walk.AddTransition(state.Win, g.win)
	walk.AddTransition(state.Hurt, g.hurt)
	walk.AddTransition(state.Fall, g.airborne)
	walk.AddTransition(state.Slide, g.sliding)
	walk.AddTransition(state.PrepareAttack, g.fire)
	walk.AddTransition(state.Jump, g.jump)
	walk.AddTransition(state.Crouch, g.crouch)
	walk.AddTransition(state.Turn, g.turning)
	walk.AddTransition(state.Idle, g.idle)

	turn.AddTransition(state.Win, g.win)
	turn.AddTransition(state.Hurt, g.hurt)
	turn.AddTransition(state.Fall, g.airborne)
	turn.AddTransition(state.Jump, g.jump)
	turn.AddTransition(state.Walk, g.and(g.finished, g.walk))
	turn.AddTransition(state.Idle, g.finished)

	crouch.AddTransition(state.Win, g.win)
	crouch.AddTransition(state.Hurt, g.hurt)
	crouch.AddTransition(state.Fall, g.airborne)
	crouch.AddTransition(state.AttackCrouch, g.fireOnce)
	crouch.AddTransition(state.Idle, g.stand)

	border.AddTransition(state.Win, g.win)
	border.AddTransition(state.Hurt, g.hurt)
	border.AddTransition(state.Fall, g.airborne)
	border.AddTransition(state.PrepareAttack, g.fire)
	border.AddTransition(state.Jump, g.jump)
	border.AddTransition(state.Crouch, g.crouch)
	border.AddTransition(state.Walk, g.walk)
	border.AddTransition(state.Idle, g.noBorder)

	slide.AddTransition(state.Win, g.win)
	slide.AddTransition(state.Hurt, g.hurt)
	slide.AddTransition(state.Fall, g.airborne)
	slide.AddTransition(state.Jump, g.jump)
	slide.AddTransition(state.Idle, g.landed)

	jump.AddTransition(state.Win, g.win)
	jump.AddTransition(state.Hurt, g.hurt)
	jump.AddTransition(state.LianaIdle, g.hanging)
	jump.AddTransition(state.LianaSlide, g.grip)
	jump.AddTransition(state.AttackJump, g.fireOnce)
	jump.AddTransition(state.Fall, g.falling)

	fall.AddTransition(state.Win, g.win)
	fall.AddTransition(state.Hurt, g.hurt)
	fall.AddTransition(state.LianaIdle, g.hanging)
	fall.AddTransition(state.LianaSlide, g.grip)
	fall.AddTransition(state.AttackFall, g.attackFall)
	fall.AddTransition(state.AttackJump, g.fireOnce)
	fall.AddTransition(state.Slide, g.sliding)
	fall.AddTransition(state.Idle, g.landed)

	prepare.AddTransition(state.Win, g.win)
	prepare.AddTransition(state.Hurt, g.hurt)
	prepare.AddTransition(state.Fall, g.airborne)
	prepare.AddTransition(state.AttackHorizontal, g.release)
	prepare.AddTransition(state.PreparedAttack, g.finished)

	prepared.AddTransition(state.Win, g.win)
	prepared.AddTransition(state.Hurt, g.hurt)
	prepared.AddTransition(state.Fall, g.airborne)
	prepared.AddTransition(state.AttackUp, g.upOnce)
	prepared.AddTransition(state.AttackCrouch, g.downOnce)
	prepared.AddTransition(state.AttackHorizontal, g.sideOnce)
	prepared.AddTransition(state.Idle, g.release)

	for _, a := range []*attacking{&attackH.attacking, &attackUp.attacking} {
		a.AddTransition(state.Win, g.win)
		a.AddTransition(state.Hurt, g.hurt)
		a.AddTransition(state.Fall, g.airborne)
		a.AddTransition(state.PreparedAttack, g.and(g.finished, g.fire))
		a.AddTransition(state.Idle, g.finished)
	}

	attackCrouch.AddTransition(state.Win, g.win)
	attackCrouch.AddTransition(state.Hurt, g.hurt)
	attackCrouch.AddTransition(state.Fall, g.airborne)
	attackCrouch.AddTransition(state.Crouch, g.and(g.finished, g.crouch))
	attackCrouch.AddTransition(state.Idle, g.finished)

	attackJump.AddTransition(state.Win, g.win)
	attackJump.AddTransition(state.Hurt, g.hurt)
	attackJump.AddTransition(state.Fall, g.and(g.finished, g.falling))
	attackJump.AddTransition(state.Crouch, g.and(g.landed, g.crouch))
	attackJump.AddTransition(state.LianaSlide, g.grip)
	attackJump.AddTransition(state.LianaIdle, g.hanging)
	attackJump.AddTransition(state.Idle, g.landed)

	attackFall.AddTransition(state.Win, g.win)
	attackFall.AddTransition(state.Hurt, g.hurt)
	attackFall.AddTransition(state.Slide, g.sliding)
	attackFall.AddTransition(state.Idle, g.landed)

	lianaIdle.AddTransition(state.Win, g.win)
	lianaIdle.AddTransition(state.Hurt, g.hurt)
	lianaIdle.AddTransition(state.Fall, g.letGo)
	lianaIdle.AddTransition(state.LianaSoar, g.and(g.grip, g.walk))
	lianaIdle.AddTransition(state.LianaSlide, g.grip)
	lianaIdle.AddTransition(state.LianaWalk, g.walk)

	lianaWalk.AddTransition(state.Win, g.win)
	lianaWalk.AddTransition(state.Hurt, g.hurt)
	lianaWalk.AddTransition(state.Fall, g.letGo)
	lianaWalk.AddTransition(state.LianaSoar, g.grip)
	lianaWalk.AddTransition(state.LianaIdle, g.idle)

	lianaSoar.AddTransition(state.Win, g.win)
	lianaSoar.AddTransition(state.Hurt, g.hurt)
	lianaSoar.AddTransition(state.Fall, g.letGo)
	lianaSoar.AddTransition(state.LianaWalk, g.hanging)
	lianaSoar.AddTransition(state.LianaSlide, g.idle)

	lianaSlide.AddTransition(state.Win, g.win)
	lianaSlide.AddTransition(state.Hurt, g.hurt)
	lianaSlide.AddTransition(state.Fall, g.letGo)
	lianaSlide.AddTransition(state.LianaSoar, g.walk)
	lianaSlide.AddTransition(state.LianaIdle, g.hanging)

	hurt.AddTransition(state.Dead, g.dead)
	hurt.AddTransition(state.Slide, g.and(g.finished, g.sliding))
	hurt.AddTransition(state.Idle, g.and(g.finished, g.landed))
	hurt.AddTransition(state.Fall, g.finished)

	h, err := state.NewHandler(Kind, logger,
		idle, walk, turn, crouch, border, slide, jump, fall,
		prepare, prepared, attackH, attackUp, attackCrouch, attackJump, attackFall,
		lianaIdle, lianaWalk, lianaSoar, lianaSlide,
		hurt, dead, win,
	)
	if err != nil {
		return nil, err
	}
	if err := h.Start(state.Idle); err != nil {
		return nil, err
	}
	return h, nil
}
