package errs

var (
	SystemError   = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidInput  = ErrorCode{Code: 502002, Msg: "参数不合法"}
	StateConflict = ErrorCode{Code: 502003, Msg: "入职记录当前状态不允许该操作"}
	NotFound      = ErrorCode{Code: 502004, Msg: "入职记录不存在"}
	// DependencyError 员工目录等外部服务不可用，可以重试
	DependencyError = ErrorCode{Code: 502005, Msg: "外部服务暂时不可用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
