package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/any-sign/app"
	"github.com/anyproto/any-sign/app/logger"
	"github.com/anyproto/any-sign/config"
	"github.com/anyproto/any-sign/metric"
	"github.com/anyproto/any-sign/signingservice"
	"github.com/anyproto/any-sign/util/crypto"
)

var log = logger.NewNamed("anysign")

// ErrSignatureMismatch is returned by verify when the signature is well-formed but does not match
var ErrSignatureMismatch = errors.New("signature does not match")

type options struct {
	configPath string
	algorithm  string
	logLevel   string
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "anysign",
		Short:         "Sign and verify messages",
		Version:       app.VersionDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to yaml config")
	root.PersistentFlags().StringVar(&opts.algorithm, "algorithm", crypto.Secp256k1Name, "signing algorithm")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", `log levels, e.g. "debug" or "common.*=debug;*=warn"`)

	root.AddCommand(
		algorithmsCmd(),
		pubkeyCmd(opts),
		signCmd(opts),
		verifyCmd(opts),
		wifCmd(),
	)
	return root
}

func (o *options) loadConfig(cmd *cobra.Command) (conf *config.Config, err error) {
	if o.configPath != "" {
		if conf, err = config.NewFromFile(o.configPath); err != nil {
			return nil, err
		}
	} else {
		conf = &config.Config{}
	}
	if cmd.Flags().Changed("algorithm") || conf.Signing.Algorithm == "" {
		conf.Signing.Algorithm = o.algorithm
	}
	if conf.Log.DefaultLevel == "" {
		conf.Log.DefaultLevel = "warn"
	}
	if o.logLevel != "" {
		conf.Log.Levels = logger.LevelsFromStr(o.logLevel)
	}
	if err = conf.Log.ApplyGlobal(); err != nil {
		return nil, err
	}
	return conf, nil
}

// startService runs the app with the signing service, the returned func closes the app
func (o *options) startService(cmd *cobra.Command, edit func(c *signingservice.Config)) (signingservice.Service, func(), error) {
	conf, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if edit != nil {
		edit(&conf.Signing)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a := new(app.App)
	a.Register(conf).Register(metric.New()).Register(signingservice.New())
	if err = a.Start(ctx); err != nil {
		return nil, nil, err
	}
	a.IterateComponents(func(c app.Component) {
		log.Debug("component started", zap.String("name", c.Name()))
	})
	s := app.MustComponent[signingservice.Service](a)
	closeApp := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := a.Close(ctx); err != nil {
			log.Warn("close error", zap.Error(err))
		}
	}
	return s, closeApp, nil
}

func printLine(cmd *cobra.Command, v any) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
}
