package model

// Book 图书表 books，仅新增，不修改不删除
type Book struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"                 json:"id"`
	Name         string     `gorm:"type:varchar(100);not null"               json:"name"`
	Author       string     `gorm:"type:varchar(100);not null"               json:"author"`
	SerialNumber string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_books_serial_number" json:"serial_number"`
	Department   Department `gorm:"type:varchar(50);not null"                json:"department"`
	Major        Major      `gorm:"type:varchar(50);not null"                json:"major"`
	Year         int        `gorm:"not null"                                 json:"year"`
}

// TableName 指定表名
func (Book) TableName() string { return "books" }

// Label 借阅表单中的展示文本："书名 by 作者"
func (b Book) Label() string { return b.Name + " by " + b.Author }
