package tile

import "fmt"

// Group is the collision classification of a tile. It decides which
// geometry CollisionY and CollisionX compute.
type Group int

const (
	GroupNone Group = iota
	GroupGround
	GroupGroundTop
	GroupBlock
	GroupSpike
	GroupPillar
	GroupTrigger
	GroupSlopeRight1
	GroupSlopeRight2
	GroupSlopeRight3
	GroupSlopeLeft1
	GroupSlopeLeft2
	GroupSlopeLeft3
	GroupSteepRight1
	GroupSteepRight2
	GroupSteepLeft1
	GroupSteepLeft2
	GroupLianaTop
	GroupLianaFull
	GroupLianaLeft
	GroupLianaRight
	GroupSlideRight
	GroupSlideLeft
)

var groupNames = map[Group]string{
	GroupNone:        "none",
	GroupGround:      "ground",
	GroupGroundTop:   "ground_top",
	GroupBlock:       "block",
	GroupSpike:       "spike",
	GroupPillar:      "pillar",
	GroupTrigger:     "trigger",
	GroupSlopeRight1: "slope_right_1",
	GroupSlopeRight2: "slope_right_2",
	GroupSlopeRight3: "slope_right_3",
	GroupSlopeLeft1:  "slope_left_1",
	GroupSlopeLeft2:  "slope_left_2",
	GroupSlopeLeft3:  "slope_left_3",
	GroupSteepRight1: "steep_right_1",
	GroupSteepRight2: "steep_right_2",
	GroupSteepLeft1:  "steep_left_1",
	GroupSteepLeft2:  "steep_left_2",
	GroupLianaTop:    "liana_top",
	GroupLianaFull:   "liana_full",
	GroupLianaLeft:   "liana_left",
	GroupLianaRight:  "liana_right",
	GroupSlideRight:  "slide_right",
	GroupSlideLeft:   "slide_left",
}

var groupsByName = func() map[string]Group {
	m := make(map[string]Group, len(groupNames))
	for g, name := range groupNames {
		m[name] = g
	}
	return m
}()

// String returns the persisted name of the group.
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}

// UnknownGroupError reports a collision group name no tile geometry exists for.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown collision group %q", e.Name)
}

// ParseGroup resolves a persisted group name. The empty name is GroupNone.
func ParseGroup(name string) (Group, error) {
	if name == "" {
		return GroupNone, nil
	}
	g, ok := groupsByName[name]
	if !ok {
		return GroupNone, &UnknownGroupError{Name: name}
	}
	return g, nil
}

// IsSlope reports the three-segment gentle slope groups.
func (g Group) IsSlope() bool {
	return g >= GroupSlopeRight1 && g <= GroupSlopeLeft3
}

// IsSteep reports the two-segment steep groups.
func (g Group) IsSteep() bool {
	return g >= GroupSteepRight1 && g <= GroupSteepLeft2
}

// IsLiana reports every liana group.
func (g Group) IsLiana() bool {
	return g >= GroupLianaTop && g <= GroupLianaRight
}

// IsLianaSteep reports the diagonal liana groups.
func (g Group) IsLianaSteep() bool {
	return g == GroupLianaLeft || g == GroupLianaRight
}

// IsSlide reports the slide ramps.
func (g Group) IsSlide() bool {
	return g == GroupSlideRight || g == GroupSlideLeft
}

// IsGround reports the groups an entity can stand on.
func (g Group) IsGround() bool {
	switch g {
	case GroupGround, GroupGroundTop, GroupBlock, GroupSpike:
		return true
	}
	return g.IsSlope() || g.IsSteep() || g.IsSlide()
}

// rightward reports whether the surface rises to the right.
func (g Group) rightward() bool {
	switch g {
	case GroupSlopeRight1, GroupSlopeRight2, GroupSlopeRight3,
		GroupSteepRight1, GroupSteepRight2,
		GroupLianaRight, GroupSlideRight:
		return true
	}
	return false
}

// segment returns the 0-based sub-segment index of slope and steep groups.
func (g Group) segment() int {
	switch g {
	case GroupSlopeRight2, GroupSlopeLeft2, GroupSteepRight2, GroupSteepLeft2:
		return 1
	case GroupSlopeRight3, GroupSlopeLeft3:
		return 2
	}
	return 0
}

// Downhill returns the horizontal direction a ramp descends toward: -1 for
// surfaces rising to the right, 1 for surfaces rising to the left, 0 for
// flat groups.
func (g Group) Downhill() float64 {
	if _, ok := gradients[g]; !ok {
		return 0
	}
	if g.rightward() {
		return -1
	}
	return 1
}
