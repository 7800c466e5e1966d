package errs

var (
	SystemError = ErrorCode{Code: 508001, Msg: "系统错误"}
	InvalidExpr = ErrorCode{Code: 508002, Msg: "无效的搜索表达式"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
