package domain

// ComposeFile is the document written to docker-compose.yml.
// Field order is the document order; map keys are emitted sorted.
type ComposeFile struct {
	Version  string                    `yaml:"version"`
	Services map[string]ComposeService `yaml:"services"`
	Networks map[string]ComposeNetwork `yaml:"networks"`
	Volumes  map[string]ComposeVolume  `yaml:"volumes"`
}

// ComposeService is a single service entry.
type ComposeService struct {
	Image       string            `yaml:"image"`
	Ports       []string          `yaml:"ports,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Networks    []string          `yaml:"networks,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
}

// ComposeNetwork is a top-level network entry.
type ComposeNetwork struct {
	Driver string `yaml:"driver,omitempty"`
}

// ComposeVolume is a top-level named volume entry. The zero value encodes as
// an empty mapping.
type ComposeVolume struct {
	Driver string `yaml:"driver,omitempty"`
}

// NewComposeFile builds the compose document for the given settings.
// It has no side effects; equal settings yield equal documents.
func NewComposeFile(s Settings) ComposeFile {
	return ComposeFile{
		Version: s.Compose.Version,
		Services: map[string]ComposeService{
			s.Web.Service: {
				Image:    s.Web.Image,
				Ports:    []string{s.Web.Ports},
				Networks: []string{s.Network.Name},
			},
			s.DB.Service: {
				Image: s.DB.Image,
				Environment: map[string]string{
					"MYSQL_ROOT_PASSWORD": s.DB.RootPassword,
					"MYSQL_DATABASE":      s.DB.Database,
					"MYSQL_USER":          s.DB.User,
					"MYSQL_PASSWORD":      s.DB.Password,
				},
				Networks: []string{s.Network.Name},
				Volumes:  []string{s.DB.Volume + ":" + s.DB.DataDir},
			},
		},
		Networks: map[string]ComposeNetwork{
			s.Network.Name: {Driver: s.Network.Driver},
		},
		Volumes: map[string]ComposeVolume{
			s.DB.Volume: {},
		},
	}
}

// EmitResult describes a written compose file.
type EmitResult struct {
	Path    string
	Content []byte
	// Digest is the xxhash64 of Content in hex.
	Digest string
	// Changed is false when the previous file held identical content.
	// The file is rewritten either way.
	Changed bool
}
