package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/job/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	jobNotFoundErrResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	invalidCategoryErrResult = ginx.Result{
		Code: errs.InvalidCategory.Code,
		Msg:  errs.InvalidCategory.Msg,
	}
	invalidJobErrResult = ginx.Result{
		Code: errs.InvalidJob.Code,
		Msg:  errs.InvalidJob.Msg,
	}
	invalidSkillErrResult = ginx.Result{
		Code: errs.InvalidSkill.Code,
		Msg:  errs.InvalidSkill.Msg,
	}
)
