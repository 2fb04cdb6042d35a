//go:generate mockgen -destination mock_signingservice/mock_signingservice.go github.com/anyproto/any-sign/signingservice Service
package signingservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/anyproto/any-sign/app"
	"github.com/anyproto/any-sign/app/logger"
	"github.com/anyproto/any-sign/metric"
	"github.com/anyproto/any-sign/util/crypto"
)

const CName = "common.signingservice"

var log = logger.NewNamed(CName)

var (
	ErrNoSigningKey   = errors.New("signing key is not configured")
	ErrUnknownNetwork = errors.New("unknown network")
)

type Config struct {
	Algorithm  string `yaml:"algorithm"`
	PrivateKey string `yaml:"privateKey"`
	StrictWIF  bool   `yaml:"strictWif"`
	Network    string `yaml:"network"`
}

type ConfigGetter interface {
	GetSigning() Config
}

type Service interface {
	app.Component
	Algorithm() crypto.Algorithm
	// Signer returns a signer bound to the configured key or ErrNoSigningKey
	Signer() (*crypto.Signer, error)
	ParsePrivateKey(s string) (crypto.PrivateKey, error)
	Sign(message []byte) (string, error)
	Verify(signature string, message []byte, key crypto.PublicKey) (bool, error)
}

func New() Service {
	return new(service)
}

type service struct {
	algorithm crypto.Algorithm
	factory   *crypto.CryptoFactory
	wifOpts   crypto.WIFOptions
	signer    *crypto.Signer
	log       logger.Logger
}

func (s *service) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(ConfigGetter).GetSigning()
	name := conf.Algorithm
	if name == "" {
		name = crypto.Secp256k1Name
	}
	if s.algorithm, err = crypto.NewAlgorithm(name); err != nil {
		return
	}
	if m, ok := a.Component(metric.CName).(metric.Metric); ok && m.Registry() != nil {
		if s.algorithm, err = newInstrumentedAlgorithm(s.algorithm, m.Registry()); err != nil {
			return
		}
	}
	net, err := NetworkParams(conf.Network)
	if err != nil {
		return
	}
	s.wifOpts = crypto.WIFOptions{Strict: conf.StrictWIF, Net: net}
	s.factory = crypto.NewCryptoFactory(s.algorithm)
	s.log = log.With(metric.Algorithm(name))
	s.log.Info("signing algorithm selected")

	if conf.PrivateKey == "" {
		return nil
	}
	key, err := s.ParsePrivateKey(conf.PrivateKey)
	if err != nil {
		return fmt.Errorf("can't parse signing key: %w", err)
	}
	signer := s.factory.NewSigner(key)
	pubKey, err := signer.PublicKey()
	if err != nil {
		return fmt.Errorf("can't derive public key: %w", err)
	}
	s.signer = signer
	s.log.Info("signing key loaded", metric.PublicKey(pubKey.Hex()))
	return nil
}

func (s *service) Name() (name string) {
	return CName
}

func (s *service) Algorithm() crypto.Algorithm {
	return s.algorithm
}

func (s *service) Signer() (*crypto.Signer, error) {
	if s.signer == nil {
		return nil, ErrNoSigningKey
	}
	return s.signer, nil
}

func (s *service) ParsePrivateKey(str string) (crypto.PrivateKey, error) {
	return crypto.DecodePrivateKey(s.algorithm.Name(), str, s.wifOpts)
}

func (s *service) Sign(message []byte) (string, error) {
	signer, err := s.Signer()
	if err != nil {
		return "", err
	}
	st := time.Now()
	sig, err := signer.Sign(message)
	if err != nil {
		s.log.Debug("sign failed", metric.Op(opSign), metric.TotalDur(time.Since(st)), zap.Error(err))
	}
	return sig, err
}

func (s *service) Verify(signature string, message []byte, key crypto.PublicKey) (bool, error) {
	st := time.Now()
	ok, err := s.algorithm.Verify(signature, message, key)
	if err != nil {
		s.log.Debug("verify failed", metric.Op(opVerify), metric.TotalDur(time.Since(st)), zap.Error(err))
	}
	return ok, err
}

// NetworkParams maps a network name to its chain params, empty name means mainnet
func NetworkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
}
