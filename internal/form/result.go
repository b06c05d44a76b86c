package form

import (
	"sort"
	"strings"
)

// FieldErrors 字段级错误：表单字段名 → 提示信息
type FieldErrors map[string]string

// Add 记录字段错误，同一字段只保留第一条
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Get 返回字段错误信息（模板中使用）
func (e FieldErrors) Get(field string) string { return e[field] }

// String 以 "field: message" 形式按字段名排序拼接，用于 JSON 接口 details
func (e FieldErrors) String() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Result 表单校验结果：要么是可直接持久化的 Value，要么是 Errors
type Result[T any] struct {
	Value  T
	Errors FieldErrors
}

// OK 是否校验通过
func (r Result[T]) OK() bool { return len(r.Errors) == 0 }

// Valid 构造成功结果
func Valid[T any](v T) Result[T] { return Result[T]{Value: v} }

// Invalid 构造失败结果
func Invalid[T any](errs FieldErrors) Result[T] { return Result[T]{Errors: errs} }
