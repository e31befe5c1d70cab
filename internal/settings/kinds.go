// Package settings synchronizes server-wide settings blobs with local files.
package settings

// Kind identifies one server-wide settings document.
type Kind struct {
	Name     string
	Path     string
	FileName string
}

var (
	GlobalSettings = Kind{
		Name:     "global",
		Path:     "/service/local/global_settings/current",
		FileName: "global_settings.json",
	}
	LDAPConnection = Kind{
		Name:     "ldap-connection",
		Path:     "/service/local/ldap/conn_info",
		FileName: "oss_ldap_conn_settings.json",
	}
	LDAPUserGroup = Kind{
		Name:     "ldap-user-group",
		Path:     "/service/local/ldap/user_group_conf",
		FileName: "oss_ldap_user_group_settings.json",
	}
)

// Kinds lists every settings kind.
var Kinds = []Kind{GlobalSettings, LDAPConnection, LDAPUserGroup}
