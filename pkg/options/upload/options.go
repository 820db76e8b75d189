// Package upload provides file upload configuration options.
package upload

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/kart-io/content-center/pkg/options"
)

var _ options.IOptions = (*Options)(nil)

// DefaultMaxSize is the upload size cap: 5 MiB.
const DefaultMaxSize = 5 << 20

// Options defines configuration options for the upload handler.
type Options struct {
	// Dir is the directory uploaded files are written to.
	Dir string `json:"dir" mapstructure:"dir"`
	// BaseURL is the public URL prefix for served files.
	BaseURL string `json:"base-url" mapstructure:"base-url"`
	// MaxSize caps a single uploaded file, in bytes.
	MaxSize int64 `json:"max-size" mapstructure:"max-size"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Dir:     "uploads",
		BaseURL: "http://localhost:8888/uploads",
		MaxSize: DefaultMaxSize,
	}
}

// AddFlags adds flags for upload options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet, prefixes ...string) {
	fs.StringVar(&o.Dir, options.Join(prefixes...)+"upload.dir", o.Dir, "Directory uploaded files are written to.")
	fs.StringVar(&o.BaseURL, options.Join(prefixes...)+"upload.base-url", o.BaseURL, "Public URL prefix for served files.")
	fs.Int64Var(&o.MaxSize, options.Join(prefixes...)+"upload.max-size", o.MaxSize, "Maximum uploaded file size in bytes.")
}

// Validate validates the upload options.
func (o *Options) Validate() []error {
	if o == nil {
		return nil
	}

	var errs []error

	if o.Dir == "" {
		errs = append(errs, fmt.Errorf("upload.dir cannot be empty"))
	}
	if o.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("upload.max-size must be positive"))
	}

	return errs
}
