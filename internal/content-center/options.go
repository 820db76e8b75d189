// Package contentcenter provides the content-center service application.
package contentcenter

import (
	stderrors "errors"

	"github.com/spf13/pflag"

	authopts "github.com/kart-io/content-center/pkg/options/auth"
	httpopts "github.com/kart-io/content-center/pkg/options/http"
	logopts "github.com/kart-io/content-center/pkg/options/log"
	redisopts "github.com/kart-io/content-center/pkg/options/redis"
	sqliteopts "github.com/kart-io/content-center/pkg/options/sqlite"
	uploadopts "github.com/kart-io/content-center/pkg/options/upload"
)

// Options aggregates the configuration of the content-center service.
type Options struct {
	HTTP   *httpopts.Options   `json:"http" mapstructure:"http"`
	Log    *logopts.Options    `json:"log" mapstructure:"log"`
	SQLite *sqliteopts.Options `json:"sqlite" mapstructure:"sqlite"`
	Redis  *redisopts.Options  `json:"redis" mapstructure:"redis"`
	Auth   *authopts.Options   `json:"auth" mapstructure:"auth"`
	Upload *uploadopts.Options `json:"upload" mapstructure:"upload"`

	// SeedFile holds the provisioned credentials, the demo user, and the
	// channel list loaded at startup.
	SeedFile string `json:"seed-file" mapstructure:"seed-file"`
}

// NewOptions creates Options with default values.
func NewOptions() *Options {
	return &Options{
		HTTP:     httpopts.NewOptions(),
		Log:      logopts.NewOptions(),
		SQLite:   sqliteopts.NewOptions(),
		Redis:    redisopts.NewOptions(),
		Auth:     authopts.NewOptions(),
		Upload:   uploadopts.NewOptions(),
		SeedFile: "configs/seed.json",
	}
}

// AddFlags adds all service flags to the given FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.HTTP.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.SQLite.AddFlags(fs)
	o.Redis.AddFlags(fs)
	o.Auth.AddFlags(fs)
	o.Upload.AddFlags(fs)
	fs.StringVar(&o.SeedFile, "seed-file", o.SeedFile, "Path to the JSON seed file with credentials, user, and channels.")
}

// Complete fills in any fields not set that are required to have valid data.
func (o *Options) Complete() error {
	return nil
}

// Validate checks all options for errors.
func (o *Options) Validate() error {
	var errs []error

	errs = append(errs, o.HTTP.Validate()...)
	errs = append(errs, o.SQLite.Validate()...)
	errs = append(errs, o.Redis.Validate()...)
	errs = append(errs, o.Auth.Validate()...)
	errs = append(errs, o.Upload.Validate()...)
	if err := o.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.SeedFile == "" {
		errs = append(errs, stderrors.New("seed-file cannot be empty"))
	}

	return stderrors.Join(errs...)
}
