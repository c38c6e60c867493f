package rbac

// Default policy. Diagram and subject reads are public and not listed.
var RolePermissions = map[string][]string{
	"student": {
		"exam:take",
		"exam:submit",
		"result:view-own",
	},
	"admin": {
		"*", // everything: diagram:update, result:view-all, bank:reload, artifact:view
	},
}
