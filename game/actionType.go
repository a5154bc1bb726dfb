package game

import "fmt"

// ActionType tags a captain with the action it is committed to.
type ActionType int

const (
	SailAction ActionType = iota
	BuildAction
	StealAction
	SinkAction
	ChartAction
)

// ActionTypes lists every captain action in placement order.
var ActionTypes = []ActionType{SailAction, BuildAction, StealAction, SinkAction, ChartAction}

var actionNames = map[ActionType]string{
	SailAction:  "sail",
	BuildAction: "build",
	StealAction: "steal",
	SinkAction:  "sink",
	ChartAction: "chart",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", int(a))
}

func (a ActionType) MarshalText() ([]byte, error) {
	name, ok := actionNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown action type %d", int(a))
	}
	return []byte(name), nil
}

func (a *ActionType) UnmarshalText(text []byte) error {
	for kind, name := range actionNames {
		if name == string(text) {
			*a = kind
			return nil
		}
	}
	return fmt.Errorf("unknown action type %q", text)
}
