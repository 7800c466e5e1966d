package domain

import "time"

// Interest 兴趣方向，取值和职业方向的类别一致，闭集
type Interest string

const (
	InterestBackend  Interest = "backend"
	InterestFrontend Interest = "frontend"
	InterestMobile   Interest = "mobile"
	InterestData     Interest = "data"
	InterestAI       Interest = "ai"
	InterestDevOps   Interest = "devops"
	InterestSecurity Interest = "security"
	InterestProduct  Interest = "product"
)

func Interests() []Interest {
	return []Interest{
		InterestBackend,
		InterestFrontend,
		InterestMobile,
		InterestData,
		InterestAI,
		InterestDevOps,
		InterestSecurity,
		InterestProduct,
	}
}

func (i Interest) Valid() bool {
	switch i {
	case InterestBackend, InterestFrontend, InterestMobile,
		InterestData, InterestAI, InterestDevOps,
		InterestSecurity, InterestProduct:
		return true
	default:
		return false
	}
}

func (i Interest) String() string {
	return string(i)
}

type User struct {
	Id       int64
	SN       string
	Nickname string
	Avatar   string
	Bio      string
	// CurrentTitle 当前职位，比如"初级后端工程师"
	CurrentTitle string
	// ExperienceYears 工作年限
	ExperienceYears uint8
	// Interests 兴趣方向，元素是 Interest 的字符串值
	Interests []string
	// TargetRid 选定的目标职业方向，0 表示还没选
	TargetRid int64
	// TargetRole 目标职业方向的名字，选定时冗余一份
	TargetRole string
	Ctime      time.Time
	Utime      time.Time
}
