package model

import "strconv"

// Choice 下拉选项：提交值 + 展示文本
type Choice struct {
	Value string
	Label string
}

// Department 院系枚举
type Department string

const (
	DepartmentCS   Department = "CS"
	DepartmentENG  Department = "ENG"
	DepartmentMATH Department = "MATH"
)

// DepartmentChoices 院系选项（顺序即页面展示顺序）
var DepartmentChoices = []Choice{
	{Value: string(DepartmentCS), Label: "Computer Science"},
	{Value: string(DepartmentENG), Label: "English"},
	{Value: string(DepartmentMATH), Label: "Mathematics"},
}

// Valid 是否为已知院系
func (d Department) Valid() bool { return hasChoice(DepartmentChoices, string(d)) }

// Major 专业枚举
type Major string

const (
	MajorSE Major = "SE"
	MajorAI Major = "AI"
	MajorDS Major = "DS"
)

// MajorChoices 专业选项
var MajorChoices = []Choice{
	{Value: string(MajorSE), Label: "Software Engineering"},
	{Value: string(MajorAI), Label: "Artificial Intelligence"},
	{Value: string(MajorDS), Label: "Data Science"},
}

// Valid 是否为已知专业
func (m Major) Valid() bool { return hasChoice(MajorChoices, string(m)) }

// 年级取值范围 1-4
const (
	MinYear = 1
	MaxYear = 4
)

// YearChoices 年级选项
var YearChoices = []Choice{
	{Value: "1", Label: "1st Year"},
	{Value: "2", Label: "2nd Year"},
	{Value: "3", Label: "3rd Year"},
	{Value: "4", Label: "4th Year"},
}

// ValidYear 年级是否在 1-4 之间
func ValidYear(year int) bool { return year >= MinYear && year <= MaxYear }

// ChoiceLabel 查找选项展示文本，未命中时返回原值
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// YearLabel 年级展示文本
func YearLabel(year int) string { return ChoiceLabel(YearChoices, strconv.Itoa(year)) }

func hasChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
