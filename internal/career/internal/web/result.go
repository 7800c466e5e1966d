package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/career/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	roleNotFoundErrResult = ginx.Result{
		Code: errs.RoleNotFound.Code,
		Msg:  errs.RoleNotFound.Msg,
	}
	analysisNotFoundErrResult = ginx.Result{
		Code: errs.AnalysisNotFound.Code,
		Msg:  errs.AnalysisNotFound.Msg,
	}
	invalidCategoryErrResult = ginx.Result{
		Code: errs.InvalidCategory.Code,
		Msg:  errs.InvalidCategory.Msg,
	}
	invalidRequirementErrResult = ginx.Result{
		Code: errs.InvalidRequirement.Code,
		Msg:  errs.InvalidRequirement.Msg,
	}
	invalidAnswerErrResult = ginx.Result{
		Code: errs.InvalidAnswer.Code,
		Msg:  errs.InvalidAnswer.Msg,
	}
)
