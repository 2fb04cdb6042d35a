package metric

import (
	"time"

	"go.uber.org/zap"
)

func Algorithm(val string) zap.Field {
	return zap.String("algorithm", val)
}

func Op(val string) zap.Field {
	return zap.String("op", val)
}

func PublicKey(val string) zap.Field {
	return zap.String("publicKey", val)
}

func TotalDur(val time.Duration) zap.Field {
	return zap.Int64("totalMs", val.Milliseconds())
}
