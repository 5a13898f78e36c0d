package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/document/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidRefResult = ginx.Result{
		Code: errs.InvalidRef.Code,
		Msg:  errs.InvalidRef.Msg,
	}
)
