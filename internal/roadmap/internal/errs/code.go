package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	RoadmapNotFound = ErrorCode{Code: 503002, Msg: "学习路线不存在"}
	ItemNotFound    = ErrorCode{Code: 503003, Msg: "学习项不存在"}
	InvalidState    = ErrorCode{Code: 503004, Msg: "当前状态不允许这个操作"}
	InvalidDuration = ErrorCode{Code: 503005, Msg: "实际学习周数不合法"}
	RoleNotFound    = ErrorCode{Code: 503006, Msg: "职业方向不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
