package signingservice

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/anyproto/any-sign/util/crypto"
)

const (
	opSign      = "sign"
	opVerify    = "verify"
	opPublicKey = "publicKey"

	resultOk    = "ok"
	resultFalse = "false"
	resultError = "error"
)

func newInstrumentedAlgorithm(a crypto.Algorithm, reg prometheus.Registerer) (crypto.Algorithm, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "anysign",
		Subsystem: "signing",
		Name:      "operations_total",
	}, []string{"algorithm", "op", "result"})
	summary := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "anysign",
		Subsystem: "signing",
		Name:      "duration_seconds",
		Objectives: map[float64]float64{
			0.5:  0.5,
			0.85: 0.01,
			0.95: 0.0005,
			0.99: 0.0001,
		},
	}, []string{"algorithm", "op"})
	if err := reg.Register(counter); err != nil {
		return nil, err
	}
	if err := reg.Register(summary); err != nil {
		return nil, err
	}
	return &instrumentedAlgorithm{Algorithm: a, counter: counter, summary: summary}, nil
}

type instrumentedAlgorithm struct {
	crypto.Algorithm
	counter *prometheus.CounterVec
	summary *prometheus.SummaryVec
}

func (i *instrumentedAlgorithm) Sign(message []byte, key crypto.PrivateKey) (sig string, err error) {
	st := time.Now()
	sig, err = i.Algorithm.Sign(message, key)
	i.observe(opSign, st, resultOf(true, err))
	return
}

func (i *instrumentedAlgorithm) Verify(signature string, message []byte, key crypto.PublicKey) (ok bool, err error) {
	st := time.Now()
	ok, err = i.Algorithm.Verify(signature, message, key)
	i.observe(opVerify, st, resultOf(ok, err))
	return
}

func (i *instrumentedAlgorithm) PublicKey(key crypto.PrivateKey) (pub crypto.PublicKey, err error) {
	st := time.Now()
	pub, err = i.Algorithm.PublicKey(key)
	i.observe(opPublicKey, st, resultOf(true, err))
	return
}

func (i *instrumentedAlgorithm) observe(op string, st time.Time, result string) {
	name := i.Algorithm.Name()
	i.summary.WithLabelValues(name, op).Observe(time.Since(st).Seconds())
	i.counter.WithLabelValues(name, op, result).Inc()
}

func resultOf(ok bool, err error) string {
	switch {
	case err != nil:
		return resultError
	case !ok:
		return resultFalse
	}
	return resultOk
}
