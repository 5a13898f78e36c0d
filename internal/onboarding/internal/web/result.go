package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/errs"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var codes = map[bizerr.Kind]errs.ErrorCode{
	bizerr.KindValidation:    errs.InvalidInput,
	bizerr.KindStateConflict: errs.StateConflict,
	bizerr.KindNotFound:      errs.NotFound,
	bizerr.KindDependency:    errs.DependencyError,
}

func errorResult(err error) (ginx.Result, error) {
	kind := bizerr.KindOf(err)
	code, ok := codes[kind]
	if !ok {
		return systemErrorResult, err
	}
	return ginx.Result{
		Code: code.Code,
		Msg:  bizerr.MessageOf(err),
		Data: ErrorVO{Kind: kind.String()},
	}, nil
}
