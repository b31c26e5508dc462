package voting

import (
	"encoding/json"
	"fmt"
	"strings"
)

type (
	// Direction is the signed weight of a vote. None means the user holds no vote.
	Direction int

	// Kind names the write a transition performs on the vote record.
	Kind int

	Vote struct {
		Id        int64     `json:"id"`
		UserId    int64     `json:"user"`
		PostId    int64     `json:"post"`
		Direction Direction `json:"vote"`
	}

	// Outcome of applying a requested direction to the current one.
	Outcome struct {
		Next  Direction
		Delta int
		Kind  Kind
	}
)

const (
	Down Direction = -1
	None Direction = 0
	Up   Direction = 1
)

const (
	Created Kind = iota
	Switched
	ToggledOff
)

// Transition is the per-(user, post) vote state machine:
//
//	none -> X      create X,      counter += X
//	X    -> X      delete,        counter -= X   (toggle-off)
//	X    -> -X     update to -X,  counter += 2*(-X)
//
// requested must be Up or Down.
func Transition(current, requested Direction) Outcome {
	switch {
	case current == requested:
		return Outcome{Next: None, Delta: -int(requested), Kind: ToggledOff}
	case current == None:
		return Outcome{Next: requested, Delta: int(requested), Kind: Created}
	default:
		return Outcome{Next: requested, Delta: 2 * int(requested), Kind: Switched}
	}
}

func (d Direction) Valid() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return ""
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "UP":
		return Up, nil
	case "DOWN":
		return Down, nil
	default:
		return None, fmt.Errorf("voting: unknown direction %q", s)
	}
}

// Scan reads the textual column value stored in post_votes.direction.
func (d *Direction) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*d = None
		return nil
	default:
		return fmt.Errorf("voting: can't scan %T into Direction", src)
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders "UP", "DOWN" or null.
func (d Direction) MarshalJSON() ([]byte, error) {
	if d == None {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (k Kind) String() string {
	switch k {
	case Created:
		return "create"
	case Switched:
		return "switch"
	case ToggledOff:
		return "toggle_off"
	default:
		return "unknown"
	}
}
