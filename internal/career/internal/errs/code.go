package errs

var (
	SystemError        = ErrorCode{Code: 502001, Msg: "系统错误"}
	RoleNotFound       = ErrorCode{Code: 502002, Msg: "职业方向不存在"}
	AnalysisNotFound   = ErrorCode{Code: 502003, Msg: "分析记录不存在"}
	InvalidCategory    = ErrorCode{Code: 502004, Msg: "无效的类别"}
	InvalidRequirement = ErrorCode{Code: 502005, Msg: "无效的技能要求"}
	InvalidAnswer      = ErrorCode{Code: 502006, Msg: "无效的测评答案"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
