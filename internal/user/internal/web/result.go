package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInterestErrResult = ginx.Result{
		Code: errs.InvalidInterest.Code,
		Msg:  errs.InvalidInterest.Msg,
	}
)
