package entity

import "strings"

// ActionClass declares an invocable operation exposed by a widget class,
// such as a context menu command. Groups carry nested actions.
type ActionClass struct {
	// Path is the full slash separated path, e.g. "edit/remove-row".
	Path      string
	Label     string
	Important bool
	Actions   []*ActionClass
}

// ID returns the last path element.
func (ac *ActionClass) ID() string {
	if i := strings.LastIndexByte(ac.Path, '/'); i >= 0 {
		return ac.Path[i+1:]
	}
	return ac.Path
}

// Action is the per-widget state of an ActionClass.
type Action struct {
	Class     *ActionClass
	Sensitive bool
	Actions   []*Action
}

// NewActions instantiates a tree of actions from their classes.
func NewActions(classes []*ActionClass) []*Action {
	if len(classes) == 0 {
		return nil
	}
	actions := make([]*Action, 0, len(classes))
	for _, ac := range classes {
		actions = append(actions, &Action{
			Class:     ac,
			Sensitive: true,
			Actions:   NewActions(ac.Actions),
		})
	}
	return actions
}

// LookupAction finds the action at path in the tree rooted at actions.
// Groups are only descended into when path extends the group path.
func LookupAction(actions []*Action, path string) *Action {
	for _, a := range actions {
		if a.Class.Path == path {
			return a
		}
		if len(a.Actions) > 0 && strings.HasPrefix(path, a.Class.Path) {
			if found := LookupAction(a.Actions, path); found != nil {
				return found
			}
		}
	}
	return nil
}

// RemoveAction removes the action at path and returns the updated slice and
// whether it was found.
func RemoveAction(actions []*Action, path string) ([]*Action, bool) {
	for i, a := range actions {
		if a.Class.Path == path {
			return append(actions[:i:i], actions[i+1:]...), true
		}
		if len(a.Actions) > 0 && strings.HasPrefix(path, a.Class.Path) {
			var removed bool
			if a.Actions, removed = RemoveAction(a.Actions, path); removed {
				return actions, true
			}
		}
	}
	return actions, false
}
