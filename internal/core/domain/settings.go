package domain

// Settings holds every literal used to emit the compose file and to deploy the
// application container. DefaultSettings reproduces the stock TodoApp stack.
type Settings struct {
	Engine  string          `mapstructure:"engine"`
	Compose ComposeSettings `mapstructure:"compose"`
	Web     WebSettings     `mapstructure:"web"`
	DB      DBSettings      `mapstructure:"db"`
	Network NetworkSettings `mapstructure:"network"`
	Deploy  DeploySettings  `mapstructure:"deploy"`
}

// ComposeSettings controls where and how the compose file is written.
type ComposeSettings struct {
	Path    string `mapstructure:"path"`
	Version string `mapstructure:"version"`
	Project string `mapstructure:"project"`
}

// WebSettings describes the application service in the compose file.
type WebSettings struct {
	Service string `mapstructure:"service"`
	Image   string `mapstructure:"image"`
	Ports   string `mapstructure:"ports"`
}

// DBSettings describes the database service in the compose file.
type DBSettings struct {
	Service      string `mapstructure:"service"`
	Image        string `mapstructure:"image"`
	RootPassword string `mapstructure:"root_password"`
	Database     string `mapstructure:"database"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Volume       string `mapstructure:"volume"`
	DataDir      string `mapstructure:"data_dir"`
}

// NetworkSettings describes the network shared by the compose services and
// the deployed container.
type NetworkSettings struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
}

// DeploySettings describes the image build and container run.
type DeploySettings struct {
	Image         string `mapstructure:"image"`
	Container     string `mapstructure:"container"`
	Ports         string `mapstructure:"ports"`
	Context       string `mapstructure:"context"`
	DBHost        string `mapstructure:"db_host"`
	EnsureNetwork bool   `mapstructure:"ensure_network"`
}

// DefaultSettings returns the stock TodoApp settings.
func DefaultSettings() Settings {
	return Settings{
		Engine: "docker",
		Compose: ComposeSettings{
			Path:    "docker-compose.yml",
			Version: "3",
			Project: "todoapp",
		},
		Web: WebSettings{
			Service: "web",
			Image:   "my_todoapp",
			Ports:   "8081:8081",
		},
		DB: DBSettings{
			Service:      "db",
			Image:        "mysql:8.0",
			RootPassword: "rootpassword",
			Database:     "todoapp_db",
			User:         "root",
			Password:     "P@ssw0rd",
			Volume:       "db_data",
			DataDir:      "/var/lib/mysql",
		},
		Network: NetworkSettings{
			Name:   "todoapp_network",
			Driver: "bridge",
		},
		Deploy: DeploySettings{
			Image:         "todoapp_image",
			Container:     "todoapp_container",
			Ports:         "8081:8081",
			Context:       ".",
			DBHost:        "mysqldb",
			EnsureNetwork: true,
		},
	}
}
