package client

// Property is one capability setting. Order is significant on the wire.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CapabilityInput is what callers supply to create or update a capability.
// A nil Enabled means enabled.
type CapabilityInput struct {
	TypeID     string `validate:"required"`
	Enabled    *bool
	Properties []Property `validate:"dive"`
}

// capabilityBody is the create/update wire payload.
type capabilityBody struct {
	TypeID     string     `json:"typeId"`
	Enabled    bool       `json:"enabled"`
	Properties []Property `json:"properties"`
}

// Capability is a Nexus capability record.
type Capability struct {
	ID         string     `json:"id"`
	TypeID     string     `json:"typeId"`
	Enabled    bool       `json:"enabled"`
	Notes      string     `json:"notes,omitempty"`
	Properties []Property `json:"properties,omitempty"`
}

// CapabilityStatus is a capability plus its runtime state, as returned by reads.
type CapabilityStatus struct {
	Capability  Capability `json:"capability"`
	TypeName    string     `json:"typeName,omitempty"`
	Active      bool       `json:"active"`
	Error       bool       `json:"error"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
}

// RepositoryInput describes a hosted or proxy repository to create.
type RepositoryInput struct {
	Name string `validate:"required"`
	// ID defaults to Name, lowercased with spaces replaced by underscores.
	ID     string
	Proxy  bool
	URL    string `validate:"required_if=Proxy true"`
	Policy string `validate:"omitempty,oneof=RELEASE SNAPSHOT"`
	// Provider defaults to maven2.
	Provider string
}

// RemoteStorage holds the proxied location of a proxy repository.
type RemoteStorage struct {
	RemoteStorageURL string `json:"remoteStorageUrl"`
}

// Repository is a Nexus 2 repository.
type Repository struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	RepoType              string         `json:"repoType"`
	RepoPolicy            string         `json:"repoPolicy,omitempty"`
	Provider              string         `json:"provider"`
	ProviderRole          string         `json:"providerRole"`
	Format                string         `json:"format,omitempty"`
	Exposed               bool           `json:"exposed"`
	Browseable            bool           `json:"browseable"`
	Indexable             bool           `json:"indexable"`
	WritePolicy           string         `json:"writePolicy,omitempty"`
	ChecksumPolicy        string         `json:"checksumPolicy,omitempty"`
	DownloadRemoteIndexes bool           `json:"downloadRemoteIndexes"`
	NotFoundCacheTTL      int            `json:"notFoundCacheTTL,omitempty"`
	RemoteStorage         *RemoteStorage `json:"remoteStorage,omitempty"`
	ContentResourceURI    string         `json:"contentResourceURI,omitempty"`
}

// GroupMember is a repository inside a group.
type GroupMember struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	ResourceURI string `json:"resourceURI,omitempty"`
}

// GroupRepository is a repository group.
type GroupRepository struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Provider     string        `json:"provider"`
	Format       string        `json:"format,omitempty"`
	RepoType     string        `json:"repoType,omitempty"`
	Exposed      bool          `json:"exposed"`
	Repositories []GroupMember `json:"repositories"`
}

// User is a Nexus user. Password is only sent on create.
type User struct {
	UserID    string   `json:"userId" validate:"required"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Status    string   `json:"status" validate:"oneof=active disabled"`
	Password  string   `json:"password,omitempty"`
	Roles     []string `json:"roles"`
}

// PasswordChange is the users_changepw payload.
type PasswordChange struct {
	UserID      string `json:"userId" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// LoggerConfig is the server's log4j configuration.
type LoggerConfig struct {
	RootLoggerLevel      string `json:"rootLoggerLevel"`
	RootLoggerAppenders  string `json:"rootLoggerAppenders,omitempty"`
	FileAppenderPattern  string `json:"fileAppenderPattern,omitempty"`
	FileAppenderLocation string `json:"fileAppenderLocation,omitempty"`
}

// Status describes the running server.
type Status struct {
	AppName      string `json:"appName"`
	Version      string `json:"version"`
	EditionLong  string `json:"editionLong"`
	EditionShort string `json:"editionShort"`
	State        string `json:"state"`
	StartedAt    string `json:"startedAt"`
	BaseURL      string `json:"baseUrl"`
}

// SmartProxySettings is the Pro smart proxy configuration.
type SmartProxySettings struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host,omitempty"`
	Port    int    `json:"port,omitempty"`
}

// TrustedKey is a Pro smart proxy trusted certificate.
type TrustedKey struct {
	ID          string         `json:"id,omitempty"`
	Description string         `json:"description"`
	Certificate map[string]any `json:"certificate,omitempty"`
}

// PubSub is the Pro publish/subscribe state of one repository.
type PubSub struct {
	RepositoryID    string `json:"repositoryId"`
	Publish         bool   `json:"publish"`
	Subscribe       bool   `json:"subscribe"`
	PreemptiveFetch bool   `json:"preemptiveFetch"`
}
