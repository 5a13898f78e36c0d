package errs

var (
	SystemError   = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput  = ErrorCode{Code: 501002, Msg: "参数不合法"}
	StateConflict = ErrorCode{Code: 501003, Msg: "当前状态不允许该操作"}
	NotFound      = ErrorCode{Code: 501004, Msg: "数据不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
