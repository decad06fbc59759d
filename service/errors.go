package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 错误类型, 用 errors.Is 判断
var (
	ErrMissingParameters   = errors.New("missing parameters")
	ErrDuplicateUsername   = errors.New("duplicate username")
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoFile              = errors.New("no file")
	ErrFileTooLarge        = errors.New("file too large")
	ErrStoreFailure        = errors.New("store failure")
)

// Error 携带面向调用方的提示, Kind 为上面的错误类型之一.
// Msg 会返回给客户端, Err 只进日志
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

// Message 可以返回给客户端的提示, 不带底层错误
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func storeFailure(err error) *Error {
	return &Error{Kind: ErrStoreFailure, Msg: "store failure", Err: err}
}

// lookupErr 把 gorm 的未找到转成 ErrNotFound, 其他视为存储错误
func lookupErr(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, format, args...)
	}
	return storeFailure(err)
}
