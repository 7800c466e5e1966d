package dao

import "github.com/ecodeclub/ekit/sqlx"

type Base struct {
	Ctime int64
	Utime int64 `gorm:"index"`
}

// Role 职业方向
type Role struct {
	Id    int64
	Title string `gorm:"type:varchar(512);unique"`
	// 方向的详细介绍
	Overview string `gorm:"type:text"`
	// 类别，闭集，入口处校验
	Category string `gorm:"type:varchar(32);index"`
	// 月薪范围，单位元
	SalaryMin int64
	SalaryMax int64
	// 市场需求热度 0-100，定时任务重算
	DemandScore int `gorm:"index"`
	// 年增长率，百分比
	Growth float64
	// 1-草稿 2-上架 3-下架
	Status uint8 `gorm:"type:tinyint(3);index"`
	Base
}

func (Role) TableName() string {
	return "career_role"
}

// Requirement 职业方向的技能要求，rid + sid 唯一
type Requirement struct {
	Id  int64
	Rid int64 `gorm:"uniqueIndex:uk_rid_sid"`
	Sid int64 `gorm:"uniqueIndex:uk_rid_sid"`
	// 1-low 2-medium 3-high
	Importance uint8
	// 必备还是加分项
	Required bool
	// 要求的最低等级 rank
	MinRank uint8
	Base
}

func (Requirement) TableName() string {
	return "career_requirement"
}

// Analysis 差距分析快照，id 是雪花 id，只插入不更新
type Analysis struct {
	Id  int64 `gorm:"primaryKey"`
	Uid int64 `gorm:"index:idx_uid_rid,priority:1"`
	Rid int64 `gorm:"index:idx_uid_rid,priority:2"`
	// 分析时方向名字的冗余
	RoleTitle string `gorm:"type:varchar(512)"`

	MatchPercentage   float64
	TotalRequired     int
	MatchedCount      int
	MissingCount      int
	InsufficientCount int
	// job_ready / partially_ready / not_ready
	Readiness      string `gorm:"type:varchar(32)"`
	EstimatedWeeks int
	// 缺口明细，快照的一部分
	Gaps sqlx.JsonColumn[[]AnalysisGap] `gorm:"type:json"`
	Base
}

func (Analysis) TableName() string {
	return "career_analysis"
}

// AnalysisGap 快照里的一条缺口
type AnalysisGap struct {
	Sid            int64  `json:"sid"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Difficulty     uint8  `json:"difficulty"`
	Importance     uint8  `json:"importance"`
	CurrentRank    uint8  `json:"currentRank"`
	TargetRank     uint8  `json:"targetRank"`
	Insufficient   bool   `json:"insufficient"`
	Priority       uint8  `json:"priority"`
	EstimatedWeeks int    `json:"estimatedWeeks"`
}

// Question 职业探索测评的题目
type Question struct {
	Id      int64
	Content string `gorm:"type:varchar(1024)"`
	// 展示顺序
	Sequence int `gorm:"index"`
	// 1-草稿 2-启用
	Status uint8 `gorm:"type:tinyint(3)"`
	Base
}

func (Question) TableName() string {
	return "career_question"
}

// QuestionOption 测评选项，points 是各类别的加分
type QuestionOption struct {
	Id      int64
	Qid     int64                           `gorm:"index"`
	Content string
	Points  sqlx.JsonColumn[map[string]int] `gorm:"type:json"`
	Base
}

func (QuestionOption) TableName() string {
	return "career_question_option"
}
