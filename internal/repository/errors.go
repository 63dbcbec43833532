package repository

import "errors"

var (
	// ErrNotFound 主键查询未命中，由上层映射为 404
	ErrNotFound = errors.New("record not found")
	// ErrDanglingReference 关联行指向不存在的实体（违反参照完整性）
	ErrDanglingReference = errors.New("dangling reference")
)
