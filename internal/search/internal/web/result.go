package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/search/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidExprErrResult = ginx.Result{
		Code: errs.InvalidExpr.Code,
		Msg:  errs.InvalidExpr.Msg,
	}
)
