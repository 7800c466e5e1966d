package domain

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/matching"
)

// Analysis 一次差距分析的不可变快照。
// 技能目录和方向要求后面怎么改都不影响已经生成的快照。
type Analysis struct {
	ID  int64
	Uid int64
	Rid int64
	// RoleTitle 分析时方向的名字
	RoleTitle string

	MatchPercentage   float64
	TotalRequired     int
	MatchedCount      int
	MissingCount      int
	InsufficientCount int
	Readiness         matching.Readiness
	// EstimatedWeeks 补齐全部缺口的总周数估算
	EstimatedWeeks int
	Gaps           []matching.SkillGap

	Ctime time.Time
}

// Recommendation 一条职业方向推荐
type Recommendation struct {
	Role            Role
	Score           float64
	MatchPercentage float64
	Reasons         []string
}
