package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var codes = map[bizerr.Kind]errs.ErrorCode{
	bizerr.KindValidation:    errs.InvalidInput,
	bizerr.KindStateConflict: errs.StateConflict,
	bizerr.KindNotFound:      errs.NotFound,
}

// errorResult 业务错误返回给前端，error 为 nil；其余错误交给 ginx 打印日志
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
