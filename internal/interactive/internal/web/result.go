package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidBizErrResult = ginx.Result{
		Code: errs.InvalidBiz.Code,
		Msg:  errs.InvalidBiz.Msg,
	}
)
