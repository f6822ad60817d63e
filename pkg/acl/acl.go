package acl

// Static role/resource/action table. A role's permissions are identical
// across every resource, so the table is generated from three fixed
// permission sets rather than maintained per resource.

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Role string

const (
	RoleAdmin  Role = "admin"  // full CRUD
	RoleStaf   Role = "staf"   // create + read
	RoleViewer Role = "viewer" // read-only
)

var Resources = []string{
	"kendaraan",
	"alatberat",
	"alatkerja",
	"ac",
	"tanah",
	"tanaman",
	"tanamanmasuk",
	"tanamankeluar",
	"servis",
	"servisberkalakendaraan",
	"servisberkalaalatberat",
	"servisberkalaalatkerja",
	"servisberkalaac",
}

var (
	fullAccess    = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	limitedAccess = []Action{ActionCreate, ActionRead}
	readOnly      = []Action{ActionRead}
)

var table = map[Role]map[string][]Action{
	RoleAdmin:  accessMap(fullAccess),
	RoleStaf:   accessMap(limitedAccess),
	RoleViewer: accessMap(readOnly),
}

func accessMap(actions []Action) map[string][]Action {
	m := make(map[string][]Action, len(Resources))
	for _, res := range Resources {
		m[res] = actions
	}
	return m
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaf, RoleViewer:
		return true
	default:
		return false
	}
}

// Allowed reports whether role may perform action on resource. Unknown
// roles and resources are denied.
func Allowed(role Role, resource string, action Action) bool {
	actions, ok := table[role][resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
