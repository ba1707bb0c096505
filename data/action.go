package data

import "fmt"

// Action enumerates the REST operations a record or link can advertise.
// The set is closed; ParseAction rejects anything else.
type Action int

const (
	ActionRead Action = iota
	ActionUpdate
	ActionDelete
	ActionCreate
	ActionList
	ActionSearch
	ActionIndex
	ActionBatchIndex
	ActionValidate
	ActionUpload
	ActionReadIncomingLinks
)

var actionNames = [...]string{
	ActionRead:              "read",
	ActionUpdate:            "update",
	ActionDelete:            "delete",
	ActionCreate:            "create",
	ActionList:              "list",
	ActionSearch:            "search",
	ActionIndex:             "index",
	ActionBatchIndex:        "batch_index",
	ActionValidate:          "validate",
	ActionUpload:            "upload",
	ActionReadIncomingLinks: "read_incoming_links",
}

// String returns the action's wire name, which doubles as the link's rel
// value and its key in an actionLinks object.
func (a Action) String() string {
	if int(a) < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a wire name back to its Action.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// ActionLink describes one REST call a client may make: where, how, and with
// which media types. Body, when present, is a synthesized tree (a work order)
// to send as the request payload.
type ActionLink struct {
	Action        Action
	URL           string
	RequestMethod string
	Accept        string
	ContentType   string
	Body          *Group
}
