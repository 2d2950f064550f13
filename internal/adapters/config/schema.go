package config

import (
	"github.com/spf13/viper"
	"go.trai.ch/todostack/internal/core/domain"
)

// EnvPrefix is prepended to every environment override, e.g.
// TODOSTACK_DEPLOY_PORTS overrides deploy.ports.
const EnvPrefix = "TODOSTACK"

// setDefaults registers every settings key so that AutomaticEnv and Unmarshal
// see the full key set even when no config file is present.
func setDefaults(v *viper.Viper, s domain.Settings) {
	v.SetDefault("engine", s.Engine)

	v.SetDefault("compose.path", s.Compose.Path)
	v.SetDefault("compose.version", s.Compose.Version)
	v.SetDefault("compose.project", s.Compose.Project)

	v.SetDefault("web.service", s.Web.Service)
	v.SetDefault("web.image", s.Web.Image)
	v.SetDefault("web.ports", s.Web.Ports)

	v.SetDefault("db.service", s.DB.Service)
	v.SetDefault("db.image", s.DB.Image)
	v.SetDefault("db.root_password", s.DB.RootPassword)
	v.SetDefault("db.database", s.DB.Database)
	v.SetDefault("db.user", s.DB.User)
	v.SetDefault("db.password", s.DB.Password)
	v.SetDefault("db.volume", s.DB.Volume)
	v.SetDefault("db.data_dir", s.DB.DataDir)

	v.SetDefault("network.name", s.Network.Name)
	v.SetDefault("network.driver", s.Network.Driver)

	v.SetDefault("deploy.image", s.Deploy.Image)
	v.SetDefault("deploy.container", s.Deploy.Container)
	v.SetDefault("deploy.ports", s.Deploy.Ports)
	v.SetDefault("deploy.context", s.Deploy.Context)
	v.SetDefault("deploy.db_host", s.Deploy.DBHost)
	v.SetDefault("deploy.ensure_network", s.Deploy.EnsureNetwork)
}
