package structlog

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatorInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateConfig(cfg *types.LoggingConfig) error {
	const op errors.Op = "structlog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}

func validateCapture(limits CaptureLimits, cache TemplateCacheConfig) error {
	const op errors.Op = "structlog.validateCapture"
	if err := validatorInstance().Struct(limits); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	if err := validatorInstance().Struct(cache); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}
