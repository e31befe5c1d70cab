package client

import (
	"net/http"
	"net/url"
	"strings"
)

// ResourceKind names a category of server-side object.
type ResourceKind string

const (
	ResourceCapability      ResourceKind = "capability"
	ResourceRepository      ResourceKind = "repository"
	ResourceGroupRepository ResourceKind = "group-repository"
	ResourceUser            ResourceKind = "user"
	ResourceUserPassword    ResourceKind = "user-password"
	ResourceLogger          ResourceKind = "logger"
	ResourceStatus          ResourceKind = "status"
	ResourceLicense         ResourceKind = "license"
	ResourceLicenseUpload   ResourceKind = "license-upload"
	ResourceTrustedKey      ResourceKind = "trusted-key"
	ResourceSmartProxy      ResourceKind = "smart-proxy"
	ResourcePubSub          ResourceKind = "pub-sub"
)

// Descriptor is the static description of one resource kind. When IDRequired
// is false the kind is a singleton: every action targets BasePath and a read
// is a single-record read.
type Descriptor struct {
	Kind       ResourceKind
	BasePath   string
	IDRequired bool
	// Tables overrides the status table per action. Only the status codes
	// vary; the outcome shape never does.
	Tables map[Action]Table
}

// Table returns the status table for action, honouring overrides.
func (d Descriptor) Table(action Action) Table {
	if t, ok := d.Tables[action]; ok {
		return t
	}
	return DefaultTable(action)
}

// Path returns the request path for id; an empty id addresses BasePath.
func (d Descriptor) Path(id string) string {
	if id == "" {
		return d.BasePath
	}
	return strings.TrimSuffix(d.BasePath, "/") + "/" + url.PathEscape(id)
}

var createdTable = DefaultTable(ActionCreate).WithSuccess(http.StatusCreated)

// DefaultDescriptors is the descriptor table for every kind the client manages.
var DefaultDescriptors = map[ResourceKind]Descriptor{
	ResourceCapability: {
		Kind:       ResourceCapability,
		BasePath:   "/service/siesta/capabilities",
		IDRequired: true,
	},
	ResourceRepository: {
		Kind:       ResourceRepository,
		BasePath:   "/service/local/repositories",
		IDRequired: true,
		Tables:     map[Action]Table{ActionCreate: createdTable},
	},
	ResourceGroupRepository: {
		Kind:       ResourceGroupRepository,
		BasePath:   "/service/local/repo_groups",
		IDRequired: true,
		Tables:     map[Action]Table{ActionCreate: createdTable},
	},
	ResourceUser: {
		Kind:       ResourceUser,
		BasePath:   "/service/local/users",
		IDRequired: true,
		Tables:     map[Action]Table{ActionCreate: createdTable},
	},
	ResourceUserPassword: {
		Kind:     ResourceUserPassword,
		BasePath: "/service/local/users_changepw",
		Tables: map[Action]Table{
			ActionCreate: DefaultTable(ActionCreate).
				WithSuccess(http.StatusAccepted).
				WithError(http.StatusBadRequest, KindInvalidCredentials),
		},
	},
	ResourceLogger: {
		Kind:     ResourceLogger,
		BasePath: "/service/local/log/config",
	},
	ResourceStatus: {
		Kind:     ResourceStatus,
		BasePath: "/service/local/status",
	},
	ResourceLicense: {
		Kind:     ResourceLicense,
		BasePath: "/service/local/licensing",
	},
	ResourceLicenseUpload: {
		Kind:     ResourceLicenseUpload,
		BasePath: "/service/local/licensing/upload",
		Tables: map[Action]Table{
			ActionCreate: createdTable.WithError(http.StatusForbidden, KindCreationRejected),
		},
	},
	ResourceTrustedKey: {
		Kind:       ResourceTrustedKey,
		BasePath:   "/service/local/smartproxy/trusted-keys",
		IDRequired: true,
		Tables:     map[Action]Table{ActionCreate: createdTable},
	},
	ResourceSmartProxy: {
		Kind:     ResourceSmartProxy,
		BasePath: "/service/local/smartproxy/settings",
	},
	ResourcePubSub: {
		Kind:       ResourcePubSub,
		BasePath:   "/service/local/smartproxy/pub-sub",
		IDRequired: true,
	},
}
