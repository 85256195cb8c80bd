package access

import (
	"database/sql/driver"
	"encoding/json"
)

// Capability modules and actions consulted by this engine. Custom
// roles may grant other modules; only staff.attendance matters here.
const (
	ModuleStaffAttendance = "staff.attendance"

	ActionManage         = "manage"
	ActionManageSelected = "manage_selected"
	ActionManageOwn      = "manage_own"
	ActionView           = "view"
)

// GrantEntry is one {module, actions} pair of a capability grant.
type GrantEntry struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// CapabilityGrant is the typed form of the permissions blob stored on
// a custom role. It is parsed defensively: anything malformed yields
// an empty grant, which downstream resolves to scope NONE.
type CapabilityGrant struct {
	Entries []GrantEntry
}

// ParseCapabilityGrant decodes a raw JSON grant. Invalid input maps to
// an empty grant rather than an error.
func ParseCapabilityGrant(raw []byte) CapabilityGrant {
	if len(raw) == 0 {
		return CapabilityGrant{}
	}
	var entries []GrantEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return CapabilityGrant{}
	}
	return CapabilityGrant{Entries: entries}
}

// Actions returns the action set granted for a module, or nil when the
// module is absent.
func (g CapabilityGrant) Actions(module string) []string {
	for _, e := range g.Entries {
		if e.Module == module {
			return e.Actions
		}
	}
	return nil
}

// Has reports whether the grant contains an action for a module.
func (g CapabilityGrant) Has(module, action string) bool {
	for _, a := range g.Actions(module) {
		if a == action {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for database storage.
func (g CapabilityGrant) Value() (driver.Value, error) {
	if len(g.Entries) == 0 {
		return nil, nil
	}
	return json.Marshal(g.Entries)
}

// Scan implements sql.Scanner for database retrieval. Malformed rows
// scan to an empty grant.
func (g *CapabilityGrant) Scan(value interface{}) error {
	if value == nil {
		*g = CapabilityGrant{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*g = ParseCapabilityGrant(v)
	case string:
		*g = ParseCapabilityGrant([]byte(v))
	default:
		*g = CapabilityGrant{}
	}
	return nil
}
