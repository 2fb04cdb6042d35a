package mock_signingservice

import (
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-sign/signingservice"
	"github.com/anyproto/any-sign/util/crypto"
)

func NewSigningServiceWithAlgorithm(ctrl *gomock.Controller, algorithm crypto.Algorithm) *MockService {
	mock := NewMockService(ctrl)
	mock.EXPECT().Name().Return(signingservice.CName).AnyTimes()
	mock.EXPECT().Init(gomock.Any()).AnyTimes()
	mock.EXPECT().Algorithm().Return(algorithm).AnyTimes()
	return mock
}
