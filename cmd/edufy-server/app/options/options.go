// Package options aggregates the server's configuration options.
package options

import (
	"github.com/spf13/pflag"

	httpopts "github.com/Sid2318/Edufy/pkg/options/http"
	logopts "github.com/Sid2318/Edufy/pkg/options/logger"
	milvusopts "github.com/Sid2318/Edufy/pkg/options/milvus"
	ollamaopts "github.com/Sid2318/Edufy/pkg/options/ollama"
	studyopts "github.com/Sid2318/Edufy/pkg/options/study"
)

// Options holds every configurable option of the server.
type Options struct {
	HTTP   *httpopts.Options   `json:"http" mapstructure:"http"`
	Log    *logopts.Options    `json:"log" mapstructure:"log"`
	Milvus *milvusopts.Options `json:"milvus" mapstructure:"milvus"`
	Ollama *ollamaopts.Options `json:"ollama" mapstructure:"ollama"`
	Study  *studyopts.Options  `json:"study" mapstructure:"study"`
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		HTTP:   httpopts.NewOptions(),
		Log:    logopts.NewOptions(),
		Milvus: milvusopts.NewOptions(),
		Ollama: ollamaopts.NewOptions(),
		Study:  studyopts.NewOptions(),
	}
}

// AddFlags registers all option flags.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.HTTP.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.Milvus.AddFlags(fs)
	o.Ollama.AddFlags(fs)
	o.Study.AddFlags(fs)
}

// Validate checks every option group.
func (o *Options) Validate() []error {
	var errs []error
	if err := o.HTTP.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := o.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, o.Milvus.Validate()...)
	errs = append(errs, o.Ollama.Validate()...)
	errs = append(errs, o.Study.Validate()...)
	return errs
}
