package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleCaregiver = "caregiver"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyCaregiversCanAccess = "❌ Hanya caregiver yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCaregiver(feature string) string {
	return fmt.Sprintf(ErrOnlyCaregiversCanAccess, feature)
}
