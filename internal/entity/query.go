package entity

import (
	"time"
)

// Query 一次问答请求的记录, 只保存元数据, 不保存附件内容
type Query struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	RequestId   string `gorm:"index"`
	Question    string
	FileCount   int
	LinkCount   int
	AnswerKind  string `gorm:"index"` // text / chart, 失败时为空
	Error       string
	InputToken  int
	OutputToken int
	DurationMs  int64
	CreatedAt   time.Time `gorm:"index"`
}
