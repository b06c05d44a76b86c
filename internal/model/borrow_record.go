package model

import "time"

// BorrowRecord 借阅记录表 borrow_records
// 只追加：系统不处理归还，也不跟踪图书是否在借
type BorrowRecord struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"    json:"id"`
	StudentName string     `gorm:"type:varchar(100);not null"  json:"student_name"`
	StudentID   string     `gorm:"type:varchar(20);not null;index" json:"student_id"`
	Department  Department `gorm:"type:varchar(50);not null"   json:"department"`
	Year        int        `gorm:"not null"                    json:"year"`
	BookID      int64      `gorm:"not null"                    json:"book_id"`
	BorrowDate  time.Time  `gorm:"type:date;not null"          json:"borrow_date"`

	// 关联图书，查询时预加载，写入时忽略
	Book *Book `gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName 指定表名
func (BorrowRecord) TableName() string { return "borrow_records" }
